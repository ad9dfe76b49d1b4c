package rest

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/akorchemkin/devstash-backend/internal/transport/middleware"
)

// Handlers groups the REST handlers mounted by the router.
type Handlers struct {
	Workspaces *WorkspaceHandler
	Artifacts  *ArtifactHandler
	Tags       *TagHandler
	Search     *SearchHandler
	Health     *HealthHandler
}

// NewRouter mounts all routes. protect wraps the /api/v1 subtree and is
// expected to enforce authentication; health probes and metrics stay open.
func NewRouter(h Handlers, protect middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /api/v1/workspaces", h.Workspaces.Create)
	api.HandleFunc("GET /api/v1/workspaces", h.Workspaces.List)
	api.HandleFunc("POST /api/v1/workspaces/import", h.Workspaces.Import)
	api.HandleFunc("GET /api/v1/workspaces/{workspaceId}", h.Workspaces.Get)
	api.HandleFunc("PATCH /api/v1/workspaces/{workspaceId}", h.Workspaces.Update)
	api.HandleFunc("DELETE /api/v1/workspaces/{workspaceId}", h.Workspaces.Delete)
	api.HandleFunc("PATCH /api/v1/workspaces/{workspaceId}/enabled-environments", h.Workspaces.SetEnvironments)
	api.HandleFunc("GET /api/v1/workspaces/{workspaceId}/export", h.Workspaces.Export)

	api.HandleFunc("POST /api/v1/workspaces/{workspaceId}/artifacts", h.Artifacts.Create)
	api.HandleFunc("GET /api/v1/workspaces/{workspaceId}/artifacts", h.Artifacts.List)
	api.HandleFunc("GET /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}", h.Artifacts.Get)
	api.HandleFunc("PATCH /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}", h.Artifacts.Update)
	api.HandleFunc("DELETE /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}", h.Artifacts.Delete)
	api.HandleFunc("GET /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}/reveal-value", h.Artifacts.Reveal)
	api.HandleFunc("POST /api/v1/workspaces/{workspaceId}/artifacts/{artifactId}/duplicate", h.Artifacts.Duplicate)

	api.HandleFunc("POST /api/v1/workspaces/{workspaceId}/tags", h.Tags.Create)
	api.HandleFunc("GET /api/v1/workspaces/{workspaceId}/tags", h.Tags.List)
	api.HandleFunc("PATCH /api/v1/workspaces/{workspaceId}/tags/{tagId}", h.Tags.Update)
	api.HandleFunc("DELETE /api/v1/workspaces/{workspaceId}/tags/{tagId}", h.Tags.Delete)

	api.HandleFunc("GET /api/v1/search/artifacts", h.Search.Search)
	api.HandleFunc("GET /api/v1/docs", h.Search.ListDocs)

	root := http.NewServeMux()
	root.Handle("/api/v1/", protect(api))
	root.HandleFunc("GET /health", h.Health.Health)
	root.HandleFunc("GET /health/live", h.Health.Live)
	root.HandleFunc("GET /health/ready", h.Health.Ready)
	root.Handle("GET /metrics", promhttp.Handler())

	return root
}
