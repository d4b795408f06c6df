package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "conandweb/internal/delivery/http/helpers"
	"conandweb/internal/delivery/http/middleware"
	"conandweb/internal/domain"
)

// LoginRequest is the request body for POST /api/admin/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate implements Validator.
func (l LoginRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(l.Email) == "" {
		errs = append(errs, "email is required")
	}
	if l.Password == "" {
		errs = append(errs, "password is required")
	}
	return errs
}

// LoginResponse is the response body for POST /api/admin/login
type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

// PurgeResponse is the response body for POST /api/admin/cache/purge
type PurgeResponse struct {
	Purged bool `json:"purged"`
}

type AdminController struct {
	Logger *slog.Logger
	Auth   domain.AuthService
	Purger domain.CachePurger
}

func NewAdminController(logger *slog.Logger, auth domain.AuthService, purger domain.CachePurger) *AdminController {
	return &AdminController{
		Logger: logger,
		Auth:   auth,
		Purger: purger,
	}
}

// Login godoc
// @Summary Operator login
// @Description Authenticate an editor or admin with email and password. Returns a JWT carrying the operator's role.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Login credentials"
// @Success 200 {object} helpers.APIResponse "data contains token and token_type"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/login [post]
func (c *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.DecodeAndValidate(w, r, &req) {
		return
	}
	token, err := c.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "invalid credentials")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "internal error")
		return
	}

	h.WriteJSONSuccess(w, http.StatusOK, LoginResponse{Token: token, TokenType: "Bearer"})
}

// PurgeCache godoc
// @Summary Purge the content cache
// @Description Drops every cached content read so CMS edits show up on the next request. Requires the admin or editor role.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data.purged is true"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/admin/cache/purge [post]
func (c *AdminController) PurgeCache(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "unauthorized")
		return
	}
	if err := c.Purger.Purge(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		h.WriteJSONError(w, http.StatusInternalServerError, h.ErrCodeInternalError, "cache purge failed")
		return
	}
	c.Logger.InfoContext(r.Context(), "cache purged", "user_id", claims.UserID, "email", claims.Email)
	h.WriteJSONSuccess(w, http.StatusOK, PurgeResponse{Purged: true})
}
