package domain

import (
	"context"
	"errors"
)

// Contact relay errors. The first three are caller input problems, the rest are server faults.
var (
	ErrMissingFields      = errors.New("missing required fields")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrVerificationFailed = errors.New("verification failed")
	ErrEmailNotConfigured = errors.New("email service not configured")
	ErrSendFailed         = errors.New("failed to send message")
)

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Name           string
	Email          string
	Subject        string
	Message        string
	RecaptchaToken string
}

// BotVerification is the outcome of a bot-mitigation check.
type BotVerification struct {
	Success    bool
	Score      float64
	ErrorCodes []string
}

// BotVerifier checks a bot-mitigation token against an external scoring service.
type BotVerifier interface {
	Verify(ctx context.Context, token string) (*BotVerification, error)
}

// ContactService relays contact form submissions to the site's contact address.
type ContactService interface {
	Submit(ctx context.Context, msg *ContactMessage) error
}
