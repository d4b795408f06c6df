package services

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"conandweb/internal/domain"
)

// DefaultMinScore is the lowest bot-verification score accepted.
const DefaultMinScore = 0.5

var contactEmailRegexp = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactConfig configures the contact relay. A nil Verifier disables bot verification;
// a nil Mailer makes every valid submission fail with domain.ErrEmailNotConfigured.
type ContactConfig struct {
	SiteName     string
	ContactEmail string
	Verifier     domain.BotVerifier
	MinScore     float64
	Mailer       domain.Mailer
	Renderer     domain.ContactEmailRenderer
}

type contactService struct {
	cfg ContactConfig
}

func NewContactService(cfg ContactConfig) domain.ContactService {
	if cfg.MinScore <= 0 {
		cfg.MinScore = DefaultMinScore
	}
	return &contactService{cfg: cfg}
}

// Submit validates msg, verifies its bot token and sends exactly one email to the contact
// address with the submitter as reply-to. Checks run in order and the first failure wins.
func (s *contactService) Submit(ctx context.Context, msg *domain.ContactMessage) error {
	name := strings.TrimSpace(msg.Name)
	email := strings.TrimSpace(msg.Email)
	subject := strings.TrimSpace(msg.Subject)
	if name == "" || email == "" || strings.TrimSpace(msg.Message) == "" {
		return domain.ErrMissingFields
	}
	if !contactEmailRegexp.MatchString(email) {
		return domain.ErrInvalidEmail
	}
	if s.cfg.Verifier != nil {
		if err := s.verify(ctx, msg.RecaptchaToken); err != nil {
			return err
		}
	}
	if s.cfg.Mailer == nil {
		return domain.ErrEmailNotConfigured
	}

	data := domain.ContactEmailData{
		SiteName: s.cfg.SiteName,
		Name:     name,
		Email:    email,
		Subject:  subject,
		Message:  msg.Message,
	}
	rendered, err := s.cfg.Renderer.RenderContact(data)
	if err != nil {
		return fmt.Errorf("%w: render contact template: %v", domain.ErrSendFailed, err)
	}
	err = s.cfg.Mailer.Send(ctx, &domain.EmailMessage{
		To:      domain.EmailAddress{Email: s.cfg.ContactEmail, Name: s.cfg.SiteName},
		ReplyTo: &domain.EmailAddress{Email: email, Name: name},
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		Text:    rendered.Text,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSendFailed, err)
	}
	log.Printf("[CONTACT] Message from %s relayed to %s", email, s.cfg.ContactEmail)
	return nil
}

func (s *contactService) verify(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return domain.ErrVerificationFailed
	}
	res, err := s.cfg.Verifier.Verify(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: verify token: %v", domain.ErrSendFailed, err)
	}
	if !res.Success || res.Score < s.cfg.MinScore {
		return domain.ErrVerificationFailed
	}
	return nil
}
