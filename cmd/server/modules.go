package main

import (
	"database/sql"
	"log/slog"

	"github.com/akilimali/parapheur/internal/archive"
	"github.com/akilimali/parapheur/internal/config"
	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/internal/notifications"
	"github.com/akilimali/parapheur/internal/profiles"
	"github.com/akilimali/parapheur/internal/storage"
	"github.com/akilimali/parapheur/internal/templates"
	"github.com/akilimali/parapheur/internal/workflow"
	"github.com/akilimali/parapheur/pkg/openapi"
	"github.com/akilimali/parapheur/pkg/routes"
)

// Modules wires every domain system to its HTTP handler.
type Modules struct {
	profiles      *profiles.Handler
	documents     *documents.Handler
	workflow      *workflow.Handler
	notifications *notifications.Handler
	templates     *templates.Handler
}

// NewModules constructs the domain systems and their handlers. The
// workflow engine receives the document repository, profile directory,
// notification sink, and archive finalizer as its collaborators.
func NewModules(db *sql.DB, store storage.System, cfg *config.Config, logger *slog.Logger) *Modules {
	profileSys := profiles.New(db, logger, cfg.Pagination)
	documentSys := documents.New(db, store, logger, cfg.Pagination)
	notificationSys := notifications.New(db, logger, cfg.Pagination)
	templateSys := templates.New(store, documentSys, logger)

	engine := workflow.NewEngine(
		documentSys,
		workflow.NewStore(db, logger),
		profileSys,
		notificationSys,
		archive.New(store, logger),
		&cfg.Workflow,
		logger,
	)

	return &Modules{
		profiles: profiles.NewHandler(profileSys, logger, cfg.Pagination),
		documents: documents.NewHandler(
			documentSys,
			profileSys,
			logger,
			cfg.Pagination,
			cfg.Storage.MaxUploadSizeBytes(),
			cfg.Workflow.DownloadRoles,
		),
		workflow:      workflow.NewHandler(engine, logger),
		notifications: notifications.NewHandler(notificationSys, logger, cfg.Pagination),
		templates:     templates.NewHandler(templateSys, logger),
	}
}

// Register mounts every module's route group on the route system.
func (m *Modules) Register(rs routes.System) {
	rs.RegisterGroup(m.profiles.Routes())
	rs.RegisterGroup(m.documents.Routes())
	rs.RegisterGroup(m.workflow.Routes())
	rs.RegisterGroup(m.notifications.Routes())
	rs.RegisterGroup(m.templates.Routes())
}

// Components aggregates every module's schemas plus the shared error
// responses referenced across operations.
func (m *Modules) Components() *openapi.Components {
	components := openapi.NewComponents()

	components.AddSchemas(profiles.Spec.Schemas())
	components.AddSchemas(documents.Spec.Schemas())
	components.AddSchemas(workflow.Spec.Schemas())
	components.AddSchemas(notifications.Spec.Schemas())
	components.AddSchemas(templates.Spec.Schemas())

	components.AddSchemas(map[string]*openapi.Schema{
		"Error": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"error": {Type: "string"},
			},
		},
		"PageRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"page":      {Type: "integer"},
				"page_size": {Type: "integer"},
				"search":    {Type: "string"},
				"sort": {Type: "array", Items: &openapi.Schema{
					Type: "object",
					Properties: map[string]*openapi.Schema{
						"field":      {Type: "string"},
						"descending": {Type: "boolean"},
					},
				}},
			},
		},
	})

	components.AddResponses(map[string]*openapi.Response{
		"NotFound":   openapi.ResponseJSON("Resource not found", "Error"),
		"BadRequest": openapi.ResponseJSON("Malformed request", "Error"),
	})

	return components
}
