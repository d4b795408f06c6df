package domain

import (
	"context"
	"strings"
)

// EmailAddress is a mailbox with an optional display name.
type EmailAddress struct {
	Email string
	Name  string
}

// EmailMessage is an outbound email.
type EmailMessage struct {
	To      EmailAddress
	ReplyTo *EmailAddress
	Subject string
	HTML    string
	Text    string
}

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// RenderedEmail is the subject and bodies of a message ready to send.
type RenderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// ContactEmailRenderer turns a contact submission into the relayed email.
type ContactEmailRenderer interface {
	RenderContact(data ContactEmailData) (*RenderedEmail, error)
}

// ContactEmailData holds data for the contact relay email.
type ContactEmailData struct {
	SiteName string
	Name     string
	Email    string
	Subject  string
	Message  string
}

// MessageLines returns Message split on newlines, for templates that render line breaks.
func (d ContactEmailData) MessageLines() []string {
	return strings.Split(strings.ReplaceAll(d.Message, "\r\n", "\n"), "\n")
}
