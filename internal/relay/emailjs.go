package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
)

const emailJSProvider = "emailjs"

// EmailJSOptions are the credentials issued by the EmailJS dashboard.
type EmailJSOptions struct {
	Endpoint   string
	ServiceID  string
	TemplateID string
	PublicKey  string
	PrivateKey string
}

// EmailJS sends template emails through the EmailJS REST API.
type EmailJS struct {
	opts   EmailJSOptions
	client *http.Client
}

type emailJSRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	AccessToken    string  `json:"accessToken,omitempty"`
	TemplateParams Payload `json:"template_params"`
}

// NewEmailJS validates opts and returns a client. A nil client uses http.DefaultClient.
func NewEmailJS(opts EmailJSOptions, client *http.Client) (*EmailJS, error) {
	var missing []string
	if opts.Endpoint == "" {
		missing = append(missing, "endpoint")
	}
	if opts.ServiceID == "" {
		missing = append(missing, "service id")
	}
	if opts.TemplateID == "" {
		missing = append(missing, "template id")
	}
	if opts.PublicKey == "" {
		missing = append(missing, "public key")
	}
	if len(missing) > 0 {
		return nil, &Error{Provider: emailJSProvider, Err: errors.New("missing " + strings.Join(missing, ", "))}
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &EmailJS{opts: opts, client: client}, nil
}

// Send posts p as the template parameters. Any non-200 response is a failure.
func (e *EmailJS) Send(ctx context.Context, p Payload) error {
	body, err := json.Marshal(emailJSRequest{
		ServiceID:      e.opts.ServiceID,
		TemplateID:     e.opts.TemplateID,
		UserID:         e.opts.PublicKey,
		AccessToken:    e.opts.PrivateKey,
		TemplateParams: p,
	})
	if err != nil {
		return &Error{Provider: emailJSProvider, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.opts.Endpoint, bytes.NewReader(body))
	if err != nil {
		return &Error{Provider: emailJSProvider, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return &Error{Provider: emailJSProvider, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	text, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return &Error{Provider: emailJSProvider, Status: resp.StatusCode, Body: strings.TrimSpace(string(text))}
}
