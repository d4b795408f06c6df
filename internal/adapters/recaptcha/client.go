package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"conandweb/internal/domain"
)

// VerifyURL is the reCAPTCHA v3 token verification endpoint.
const VerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

type httpVerifier struct {
	client   *http.Client
	endpoint string
	secret   string
}

// NewVerifier returns a BotVerifier that checks tokens against endpoint with secret.
// An empty endpoint uses VerifyURL.
func NewVerifier(client *http.Client, endpoint, secret string) domain.BotVerifier {
	if client == nil {
		client = http.DefaultClient
	}
	if endpoint == "" {
		endpoint = VerifyURL
	}
	return &httpVerifier{client: client, endpoint: endpoint, secret: secret}
}

func (v *httpVerifier) Verify(ctx context.Context, token string) (*domain.BotVerification, error) {
	form := url.Values{"secret": {v.secret}, "response": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := v.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call siteverify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("siteverify returned status: %d", resp.StatusCode)
	}

	var data siteVerifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode siteverify response: %w", err)
	}
	return &domain.BotVerification{
		Success:    data.Success,
		Score:      data.Score,
		ErrorCodes: data.ErrorCodes,
	}, nil
}
