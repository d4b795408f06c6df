package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"conandweb/internal/delivery/http/helpers"
	"conandweb/internal/domain"
)

// ContactRequest is the request body for POST /api/contact.
type ContactRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Subject        string `json:"subject"`
	Message        string `json:"message"`
	RecaptchaToken string `json:"recaptchaToken"`
}

// ContactResponse is the body of every POST /api/contact response.
// swagger:model ContactResponse
type ContactResponse struct {
	Success bool   `json:"success,omitempty"`
	Error   string `json:"error,omitempty"`
}

type ContactController struct {
	Logger  *slog.Logger
	Service domain.ContactService
}

func NewContactController(logger *slog.Logger, svc domain.ContactService) *ContactController {
	return &ContactController{
		Logger:  logger,
		Service: svc,
	}
}

// Submit godoc
// @Summary Send a contact message
// @Description Validates the form, checks the reCAPTCHA v3 token when bot verification is configured and emails the site's contact address with reply-to set to the sender.
// @Tags contact
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact form"
// @Success 200 {object} controllers.ContactResponse "success is true"
// @Failure 400 {object} controllers.ContactResponse "missing fields, invalid email or failed verification"
// @Failure 500 {object} controllers.ContactResponse "email not configured or send failure"
// @Router /api/contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := helpers.DecodeJSON(w, r, &req, false); err != nil {
		helpers.WriteJSON(w, http.StatusBadRequest, ContactResponse{Error: "Invalid request body"})
		return
	}
	err := c.Service.Submit(r.Context(), &domain.ContactMessage{
		Name:           req.Name,
		Email:          req.Email,
		Subject:        req.Subject,
		Message:        req.Message,
		RecaptchaToken: req.RecaptchaToken,
	})
	if err == nil {
		helpers.WriteJSON(w, http.StatusOK, ContactResponse{Success: true})
		return
	}

	switch {
	case errors.Is(err, domain.ErrMissingFields):
		helpers.WriteJSON(w, http.StatusBadRequest, ContactResponse{Error: "Missing required fields"})
	case errors.Is(err, domain.ErrInvalidEmail):
		helpers.WriteJSON(w, http.StatusBadRequest, ContactResponse{Error: "Invalid email"})
	case errors.Is(err, domain.ErrVerificationFailed):
		helpers.WriteJSON(w, http.StatusBadRequest, ContactResponse{Error: "reCAPTCHA verification failed"})
	case errors.Is(err, domain.ErrEmailNotConfigured):
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, ContactResponse{Error: "Email service not configured"})
	default:
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSON(w, http.StatusInternalServerError, ContactResponse{Error: "Failed to send message"})
	}
}
