// Package relay delivers contact-form submissions through an external mail service.
package relay

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Emynado01/portfolio/internal/config"
)

// Payload is the message handed to the mail relay.
type Payload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Time    string `json:"time"`
}

// Sender delivers one payload. Implementations must honour ctx cancellation.
type Sender interface {
	Send(ctx context.Context, p Payload) error
}

// Error describes a relay rejection or transport failure.
type Error struct {
	Provider string
	Status   int
	Body     string
	Err      error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Status != 0 && e.Body != "":
		return fmt.Sprintf("%s relay: status %d: %s", e.Provider, e.Status, e.Body)
	case e.Status != 0:
		return fmt.Sprintf("%s relay: status %d", e.Provider, e.Status)
	case e.Err != nil:
		return fmt.Sprintf("%s relay: %v", e.Provider, e.Err)
	default:
		return e.Provider + " relay: failed"
	}
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FromConfig builds the Sender selected by cfg.Provider.
func FromConfig(cfg config.RelayConfig) (Sender, error) {
	switch cfg.Provider {
	case config.ProviderEmailJS:
		sender, err := NewEmailJS(EmailJSOptions{
			Endpoint:   cfg.Endpoint,
			ServiceID:  cfg.ServiceID,
			TemplateID: cfg.TemplateID,
			PublicKey:  cfg.PublicKey,
			PrivateKey: cfg.PrivateKey,
		}, http.DefaultClient)
		if err != nil {
			return nil, err
		}
		return sender, nil
	case config.ProviderSMTP:
		sender, err := NewSMTP(SMTPOptions{
			Host: cfg.SMTPHost,
			Port: cfg.SMTPPort,
			User: cfg.SMTPUser,
			Pass: cfg.SMTPPass,
			To:   cfg.ToEmail,
		})
		if err != nil {
			return nil, err
		}
		return sender, nil
	default:
		return nil, fmt.Errorf("unknown relay provider %q", cfg.Provider)
	}
}
