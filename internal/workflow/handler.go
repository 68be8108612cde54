package workflow

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/akilimali/parapheur/pkg/handlers"
	"github.com/akilimali/parapheur/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for workflow operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a workflow handler.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "workflow"),
	}
}

// Routes returns the workflow endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/documents",
		Tags:        []string{"Workflow"},
		Description: "Sequential signature workflow operations",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}/workflow", Handler: h.Get, OpenAPI: Spec.Get},
			{Method: "POST", Pattern: "/{id}/workflow/init", Handler: h.Initialize, OpenAPI: Spec.Initialize},
			{Method: "POST", Pattern: "/{id}/workflow/sign", Handler: h.Sign, OpenAPI: Spec.Sign},
			{Method: "POST", Pattern: "/{id}/workflow/reject", Handler: h.Reject, OpenAPI: Spec.Reject},
			{Method: "POST", Pattern: "/{id}/workflow/finalize", Handler: h.RetryFinalize, OpenAPI: Spec.RetryFinalize},
		},
	}
}

type signRequest struct {
	Comment string `json:"comment"`
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	view, err := h.sys.Get(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Initialize(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := h.identify(w, r)
	if !ok {
		return
	}

	view, err := h.sys.Initialize(r.Context(), id, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Sign(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req signRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	view, err := h.sys.Sign(r.Context(), id, actor, req.Comment)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) Reject(w http.ResponseWriter, r *http.Request) {
	id, actor, ok := h.identify(w, r)
	if !ok {
		return
	}

	var req rejectRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
			return
		}
	}

	view, err := h.sys.Reject(r.Context(), id, actor, req.Reason)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) RetryFinalize(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	view, err := h.sys.RetryFinalize(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, view)
}

func (h *Handler) identify(w http.ResponseWriter, r *http.Request) (uuid.UUID, uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return uuid.Nil, uuid.Nil, false
	}

	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return uuid.Nil, uuid.Nil, false
	}

	return id, actor, true
}
