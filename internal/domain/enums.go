package domain

import "strings"

// ArtifactKind discriminates the three artifact variants.
type ArtifactKind string

const (
	ArtifactKindEnvVar  ArtifactKind = "ENV_VAR"
	ArtifactKindPrompt  ArtifactKind = "PROMPT"
	ArtifactKindDocLink ArtifactKind = "DOC_LINK"
)

func (k ArtifactKind) String() string { return string(k) }

func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactKindEnvVar, ArtifactKindPrompt, ArtifactKindDocLink:
		return true
	}
	return false
}

// Environment is a user-chosen classification tag, never a deployment target.
type Environment string

const (
	EnvironmentDev     Environment = "DEV"
	EnvironmentStaging Environment = "STAGING"
	EnvironmentProd    Environment = "PROD"
)

// AllEnvironments lists every known environment in display order.
var AllEnvironments = []Environment{EnvironmentDev, EnvironmentStaging, EnvironmentProd}

func (e Environment) String() string { return string(e) }

func (e Environment) IsValid() bool {
	switch e {
	case EnvironmentDev, EnvironmentStaging, EnvironmentProd:
		return true
	}
	return false
}

// ParseEnvironment normalizes and validates an environment slug.
// Returns "" and false for unknown values.
func ParseEnvironment(s string) (Environment, bool) {
	e := Environment(strings.ToUpper(strings.TrimSpace(s)))
	if !e.IsValid() {
		return "", false
	}
	return e, true
}

// AuditAction identifies the kind of sensitive action being recorded.
type AuditAction string

const (
	AuditActionRevealValue AuditAction = "REVEAL_VALUE"
	AuditActionCreate      AuditAction = "CREATE"
	AuditActionUpdate      AuditAction = "UPDATE"
	AuditActionDelete      AuditAction = "DELETE"
)

func (a AuditAction) String() string { return string(a) }

func (a AuditAction) IsValid() bool {
	switch a {
	case AuditActionRevealValue, AuditActionCreate, AuditActionUpdate, AuditActionDelete:
		return true
	}
	return false
}
