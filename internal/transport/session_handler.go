package transport

import (
	"errors"
	"net/http"
	"strconv"

	"layers-storefront/internal/catalog"
	"layers-storefront/internal/domain"
	"layers-storefront/internal/middleware"
	"layers-storefront/internal/session"
	"layers-storefront/internal/shell"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NavigateRequest represents a view change request
type NavigateRequest struct {
	View string `json:"view" validate:"required,viewid"`
}

// FilterRequest represents a catalog filter selection
type FilterRequest struct {
	Category string `json:"category" validate:"filter"`
}

// PickImageRequest selects a gallery image on the detail page
type PickImageRequest struct {
	Image string `json:"image" validate:"required,max=500"`
}

// PickColorRequest selects a color option on the detail page
type PickColorRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

// LoginModeRequest switches the login page form
type LoginModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=login signup"`
}

// SessionResponse is the page currently on screen for a session
type SessionResponse struct {
	SessionID string     `json:"session_id"`
	Page      shell.Page `json:"page"`
}

// SelectionResponse reports whether a pick was applied
type SelectionResponse struct {
	Accepted bool       `json:"accepted"`
	Page     shell.Page `json:"page"`
}

// SessionStore is the registry the handler reads shells from
type SessionStore interface {
	Create() (string, *shell.Shell)
	Get(id string) (*shell.Shell, error)
	Delete(id string) error
}

// SessionHandler maps user input events to navigation and view operations
type SessionHandler struct {
	sessions SessionStore
	logger   *zap.Logger
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(sessions SessionStore, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
		logger:   logger,
	}
}

// RegisterRoutes registers all session routes. limiter may be nil.
func (h *SessionHandler) RegisterRoutes(r chi.Router, limiter func(http.Handler) http.Handler) {
	r.Route("/api/sessions", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter)
		}

		r.Post("/", h.CreateSession)

		r.Route("/{sessionID}", func(r chi.Router) {
			r.Get("/", h.GetSession)
			r.Delete("/", h.DeleteSession)
			r.Post("/navigate", h.Navigate)
			r.Post("/products/{id}/open", h.OpenProduct)
			r.Post("/filter", h.SetFilter)
			r.Post("/detail/image", h.PickImage)
			r.Post("/detail/color", h.PickColor)
			r.Post("/detail/cart", h.AddToCart)
			r.Post("/login/mode", h.SetLoginMode)
			r.Post("/login/password-visibility", h.TogglePasswordVisibility)
		})
	})
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, sh := h.sessions.Create()
	middleware.RespondWithJSON(w, http.StatusCreated, SessionResponse{SessionID: id, Page: sh.Render()})
}

// GetSession handles GET /api/sessions/{sessionID}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	sh, ok := h.shell(w, r)
	if !ok {
		return
	}
	h.respondPage(w, r, sh)
}

// DeleteSession handles DELETE /api/sessions/{sessionID}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "sessionID")); err != nil {
		h.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Navigate handles POST /api/sessions/{sessionID}/navigate
func (h *SessionHandler) Navigate(w http.ResponseWriter, r *http.Request) {
	var req NavigateRequest
	if !h.decode(w, r, &req) {
		return
	}

	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	sh.Navigate(domain.ViewID(req.View))
	h.respondPage(w, r, sh)
}

// OpenProduct handles POST /api/sessions/{sessionID}/products/{id}/open
func (h *SessionHandler) OpenProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithRequestError(w, r, http.StatusBadRequest, "invalid product id")
		return
	}

	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	if err := sh.OpenProduct(id); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondPage(w, r, sh)
}

// SetFilter handles POST /api/sessions/{sessionID}/filter
func (h *SessionHandler) SetFilter(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if !h.decode(w, r, &req) {
		return
	}

	filter, err := catalog.ParseFilter(req.Category)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	if err := sh.SetFilter(filter); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondPage(w, r, sh)
}

// PickImage handles POST /api/sessions/{sessionID}/detail/image
func (h *SessionHandler) PickImage(w http.ResponseWriter, r *http.Request) {
	var req PickImageRequest
	if !h.decode(w, r, &req) {
		return
	}

	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	accepted, err := sh.PickImage(req.Image)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, SelectionResponse{Accepted: accepted, Page: sh.Render()})
}

// PickColor handles POST /api/sessions/{sessionID}/detail/color
func (h *SessionHandler) PickColor(w http.ResponseWriter, r *http.Request) {
	var req PickColorRequest
	if !h.decode(w, r, &req) {
		return
	}

	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	accepted, err := sh.PickColor(req.Name)
	if err != nil {
		h.respondError(w, r, err)
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, SelectionResponse{Accepted: accepted, Page: sh.Render()})
}

// AddToCart handles POST /api/sessions/{sessionID}/detail/cart
func (h *SessionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	if err := sh.AddToCart(); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondPage(w, r, sh)
}

// SetLoginMode handles POST /api/sessions/{sessionID}/login/mode
func (h *SessionHandler) SetLoginMode(w http.ResponseWriter, r *http.Request) {
	var req LoginModeRequest
	if !h.decode(w, r, &req) {
		return
	}

	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	if err := sh.SetLoginMode(shell.LoginMode(req.Mode)); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondPage(w, r, sh)
}

// TogglePasswordVisibility handles POST /api/sessions/{sessionID}/login/password-visibility
func (h *SessionHandler) TogglePasswordVisibility(w http.ResponseWriter, r *http.Request) {
	sh, ok := h.shell(w, r)
	if !ok {
		return
	}

	if err := sh.TogglePasswordVisibility(); err != nil {
		h.respondError(w, r, err)
		return
	}
	h.respondPage(w, r, sh)
}

func (h *SessionHandler) shell(w http.ResponseWriter, r *http.Request) (*shell.Shell, bool) {
	sh, err := h.sessions.Get(chi.URLParam(r, "sessionID"))
	if err != nil {
		h.respondError(w, r, err)
		return nil, false
	}
	return sh, true
}

func (h *SessionHandler) decode(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := middleware.DecodeAndValidate(r, v); err != nil {
		h.logger.Debug("Request validation failed", zap.String("path", r.URL.Path), zap.Error(err))

		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, r, validationErrors)
			return false
		}

		middleware.RespondWithRequestError(w, r, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *SessionHandler) respondPage(w http.ResponseWriter, r *http.Request, sh *shell.Shell) {
	middleware.RespondWithJSON(w, http.StatusOK, SessionResponse{
		SessionID: chi.URLParam(r, "sessionID"),
		Page:      sh.Render(),
	})
}

func (h *SessionHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		middleware.RespondWithRequestError(w, r, http.StatusNotFound, "session not found")
	case errors.Is(err, catalog.ErrProductNotFound):
		middleware.RespondWithRequestError(w, r, http.StatusNotFound, "product not found")
	case errors.Is(err, catalog.ErrUnknownCategory), errors.Is(err, shell.ErrInvalidLoginMode):
		middleware.RespondWithRequestError(w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, shell.ErrNoDetailView),
		errors.Is(err, shell.ErrFilterUnavailable),
		errors.Is(err, shell.ErrLoginUnavailable):
		middleware.RespondWithRequestError(w, r, http.StatusConflict, err.Error())
	default:
		h.logger.Error("Session operation failed", zap.String("path", r.URL.Path), zap.Error(err))
		middleware.RespondWithRequestError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
