package templates

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akilimali/parapheur/internal/documents"
	"github.com/akilimali/parapheur/pkg/handlers"
	"github.com/akilimali/parapheur/pkg/routes"
	"github.com/akilimali/parapheur/pkg/validation"
)

// Handler provides HTTP endpoints for template operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a template handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "templates"),
	}
}

// Routes returns the template endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/templates",
		Tags:        []string{"Templates"},
		Description: "Document template catalog and draft generation",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/{type}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "POST", Pattern: "/{type}/generate", Handler: h.Generate, OpenAPI: Spec.Generate},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	templates, err := h.sys.List(r.Context())
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, templates)
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	tmpl, err := h.sys.Find(r.Context(), documents.DocumentType(r.PathValue("type")))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, tmpl)
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	var cmd GenerateCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	cmd.DocumentType = documents.DocumentType(r.PathValue("type"))
	cmd.CreatedBy = actor

	if err := validation.Struct(cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	doc, err := h.sys.Generate(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, doc)
}
