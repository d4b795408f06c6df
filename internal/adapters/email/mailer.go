package email

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/mailjet/mailjet-apiv3-go/v4"

	"conandweb/internal/domain"
)

// SESConfig holds configuration for AWS SES.
type SESConfig struct {
	Region             string
	AccessKeyID        string
	SecretAccessKey    string
	InsecureSkipVerify bool
}

// MailjetConfig holds the Mailjet API credentials. BaseURL overrides the API endpoint.
type MailjetConfig struct {
	APIKey    string
	APISecret string
	BaseURL   string
}

// MailerConfig holds configuration for creating a mailer.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	Mailjet     MailjetConfig
	SES         SESConfig
}

// NewMailer creates a mailer from config. Provider "mailjet" uses the Mailjet v3.1 send API,
// "ses" uses AWS SES and "noop" only logs. Missing credentials yield domain.ErrEmailNotConfigured.
func NewMailer(config MailerConfig) (domain.Mailer, error) {
	switch config.Provider {
	case "mailjet", "":
		if config.Mailjet.APIKey == "" || config.Mailjet.APISecret == "" {
			return nil, fmt.Errorf("%w: mailjet API key and secret are required", domain.ErrEmailNotConfigured)
		}
		client := mailjet.NewMailjetClient(config.Mailjet.APIKey, config.Mailjet.APISecret)
		if config.Mailjet.BaseURL != "" {
			client.SetBaseURL(config.Mailjet.BaseURL)
		}
		return &mailjetMailer{
			client:      client,
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "ses":
		sesConfig := config.SES
		if sesConfig.AccessKeyID == "" || sesConfig.SecretAccessKey == "" {
			return nil, fmt.Errorf("%w: SES credentials are required", domain.ErrEmailNotConfigured)
		}
		if sesConfig.InsecureSkipVerify {
			log.Printf("[MAILER] WARNING: TLS certificate verification is disabled for SES. Use only in development.")
		}
		httpClient := &http.Client{
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: sesConfig.InsecureSkipVerify,
					MinVersion:         tls.VersionTLS12,
				},
			},
		}
		awsCfg := aws.Config{
			Region: sesConfig.Region,
			Credentials: aws.NewCredentialsCache(
				credentials.NewStaticCredentialsProvider(
					sesConfig.AccessKeyID,
					sesConfig.SecretAccessKey,
					"",
				),
			),
			HTTPClient: httpClient,
		}
		return &sesMailer{
			client:      ses.NewFromConfig(awsCfg),
			fromAddress: config.FromAddress,
			fromName:    config.FromName,
		}, nil
	case "noop":
		return &noopMailer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown email provider %q", domain.ErrEmailNotConfigured, config.Provider)
	}
}

func formatAddress(a domain.EmailAddress) string {
	if a.Name == "" {
		return a.Email
	}
	return fmt.Sprintf("%s <%s>", a.Name, a.Email)
}

type mailjetMailer struct {
	client      *mailjet.Client
	fromAddress string
	fromName    string
}

func (m *mailjetMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	info := mailjet.InfoMessagesV31{
		From: &mailjet.RecipientV31{
			Email: m.fromAddress,
			Name:  m.fromName,
		},
		To: &mailjet.RecipientsV31{
			mailjet.RecipientV31{Email: msg.To.Email, Name: msg.To.Name},
		},
		Subject:  msg.Subject,
		TextPart: msg.Text,
		HTMLPart: msg.HTML,
	}
	if msg.ReplyTo != nil {
		info.ReplyTo = &mailjet.RecipientV31{Email: msg.ReplyTo.Email, Name: msg.ReplyTo.Name}
	}
	res, err := m.client.SendMailV31(&mailjet.MessagesV31{Info: []mailjet.InfoMessagesV31{info}})
	if err != nil {
		return fmt.Errorf("failed to send email via Mailjet: %w", err)
	}
	if len(res.ResultsV31) == 0 {
		return errors.New("failed to send email via Mailjet: empty response")
	}
	if status := res.ResultsV31[0].Status; status != "success" {
		return fmt.Errorf("failed to send email via Mailjet: status %q", status)
	}
	log.Printf("[MAILER] Email sent via Mailjet to %s", msg.To.Email)
	return nil
}

type sesMailer struct {
	client      *ses.Client
	fromAddress string
	fromName    string
}

func (s *sesMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	input := &ses.SendEmailInput{
		Source: aws.String(formatAddress(domain.EmailAddress{Email: s.fromAddress, Name: s.fromName})),
		Destination: &types.Destination{
			ToAddresses: []string{formatAddress(msg.To)},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data:    aws.String(msg.Subject),
				Charset: aws.String("UTF-8"),
			},
			Body: &types.Body{},
		},
	}
	if msg.ReplyTo != nil {
		input.ReplyToAddresses = []string{formatAddress(*msg.ReplyTo)}
	}
	if msg.HTML != "" {
		input.Message.Body.Html = &types.Content{
			Data:    aws.String(msg.HTML),
			Charset: aws.String("UTF-8"),
		}
	}
	if msg.Text != "" {
		input.Message.Body.Text = &types.Content{
			Data:    aws.String(msg.Text),
			Charset: aws.String("UTF-8"),
		}
	}
	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}
	log.Printf("[MAILER] Email sent via SES. MessageID: %s", aws.ToString(result.MessageId))
	return nil
}

type noopMailer struct{}

func (n *noopMailer) Send(ctx context.Context, msg *domain.EmailMessage) error {
	log.Println("[MAILER] Email would be sent (noop)", "to", msg.To.Email, "subject", msg.Subject)
	return nil
}
