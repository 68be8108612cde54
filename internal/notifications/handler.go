package notifications

import (
	"log/slog"
	"net/http"

	"github.com/akilimali/parapheur/pkg/handlers"
	"github.com/akilimali/parapheur/pkg/pagination"
	"github.com/akilimali/parapheur/pkg/routes"
	"github.com/google/uuid"
)

// Handler provides HTTP endpoints for the acting user's notification inbox.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a notification handler.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "notifications"),
		pagination: pagination,
	}
}

// Routes returns the notification endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/notifications",
		Tags:        []string{"Notifications"},
		Description: "Workflow event notifications",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: Spec.List},
			{Method: "GET", Pattern: "/unread", Handler: h.UnreadCount, OpenAPI: Spec.UnreadCount},
			{Method: "POST", Pattern: "/{id}/read", Handler: h.MarkRead, OpenAPI: Spec.MarkRead},
			{Method: "POST", Pattern: "/read", Handler: h.MarkAllRead, OpenAPI: Spec.MarkAllRead},
		},
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), actor, page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	count, err := h.sys.UnreadCount(r.Context(), actor)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	notification, err := h.sys.MarkRead(r.Context(), id, actor)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, notification)
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	actor, err := handlers.ActingUser(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusUnauthorized, err)
		return
	}

	count, err := h.sys.MarkAllRead(r.Context(), actor)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]int64{"marked": count})
}
