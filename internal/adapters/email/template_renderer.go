package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"

	"conandweb/internal/domain"
)

//go:embed templates/*
var templateFS embed.FS

var (
	htmlTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html"))
	textTemplates = texttemplate.Must(texttemplate.ParseFS(templateFS, "templates/*.txt"))
)

// contactRenderer renders the contact relay email from the embedded contact templates.
type contactRenderer struct {
	html *template.Template
	text *texttemplate.Template
}

// NewTemplateRenderer returns the renderer of the contact relay email.
func NewTemplateRenderer() domain.ContactEmailRenderer {
	return &contactRenderer{html: htmlTemplates, text: textTemplates}
}

// RenderContact fills the contact templates with data. Only the HTML body escapes the
// submitter's input; the subject and plain-text body carry it verbatim.
func (r *contactRenderer) RenderContact(data domain.ContactEmailData) (*domain.RenderedEmail, error) {
	var subject, text, html bytes.Buffer
	if err := r.text.ExecuteTemplate(&subject, "contact_subject.txt", data); err != nil {
		return nil, fmt.Errorf("render subject: %w", err)
	}
	if err := r.html.ExecuteTemplate(&html, "contact.html", data); err != nil {
		return nil, fmt.Errorf("render html: %w", err)
	}
	if err := r.text.ExecuteTemplate(&text, "contact.txt", data); err != nil {
		return nil, fmt.Errorf("render text: %w", err)
	}
	return &domain.RenderedEmail{
		// Subjects are a single header line.
		Subject: strings.Join(strings.Fields(subject.String()), " "),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}
