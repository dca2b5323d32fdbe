// Package config loads the portfolio server settings from the environment.
package config

import (
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Relay providers.
const (
	ProviderEmailJS = "emailjs"
	ProviderSMTP    = "smtp"
)

const DefaultEmailJSEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// Config holds every setting the server needs at startup.
type Config struct {
	Port            string        `env:"PORT" validate:"required,numeric"`
	GinMode         string        `env:"GIN_MODE" validate:"omitempty,oneof=debug release test"`
	LogLevel        string        `env:"LOG_LEVEL" validate:"required,oneof=trace debug info warn error"`
	LogFormat       string        `env:"LOG_FORMAT" validate:"required,oneof=console json"`
	ContentFile     string        `env:"CONTENT_FILE"`
	CVPath          string        `env:"CV_PATH" validate:"required"`
	StaticDir       string        `env:"STATIC_DIR" validate:"required"`
	SessionTTL      time.Duration `env:"SESSION_TTL" validate:"gt=0"`
	SentResetDelay  time.Duration `env:"SENT_RESET_DELAY" validate:"gt=0"`
	ErrorResetDelay time.Duration `env:"ERROR_RESET_DELAY" validate:"gt=0"`
	Relay           RelayConfig
}

// RelayConfig selects and configures the mail relay used by the contact form.
type RelayConfig struct {
	Provider string `env:"RELAY_PROVIDER" validate:"required,oneof=emailjs smtp"`

	ServiceID  string `env:"EMAILJS_SERVICE_ID" validate:"required_if=Provider emailjs"`
	TemplateID string `env:"EMAILJS_TEMPLATE_ID" validate:"required_if=Provider emailjs"`
	PublicKey  string `env:"EMAILJS_PUBLIC_KEY" validate:"required_if=Provider emailjs"`
	PrivateKey string `env:"EMAILJS_PRIVATE_KEY"`
	Endpoint   string `env:"EMAILJS_ENDPOINT" validate:"required_if=Provider emailjs,omitempty,url"`

	SMTPHost string `env:"SMTP_HOST" validate:"required_if=Provider smtp,omitempty,hostname"`
	SMTPPort string `env:"SMTP_PORT" validate:"required_if=Provider smtp,omitempty,numeric"`
	SMTPUser string `env:"SMTP_USER" validate:"required_if=Provider smtp"`
	SMTPPass string `env:"SMTP_PASS" validate:"required_if=Provider smtp"`
	ToEmail  string `env:"TO_EMAIL" validate:"required_if=Provider smtp,omitempty,email"`
}

// Default returns the settings used when no environment override is present.
func Default() *Config {
	return &Config{
		Port:            "8080",
		LogLevel:        "info",
		LogFormat:       "console",
		CVPath:          "./static/cv.pdf",
		StaticDir:       "./static",
		SessionTTL:      2 * time.Hour,
		SentResetDelay:  1500 * time.Millisecond,
		ErrorResetDelay: 3 * time.Second,
		Relay: RelayConfig{
			Provider: ProviderEmailJS,
			Endpoint: DefaultEmailJSEndpoint,
			SMTPHost: "smtp.gmail.com",
			SMTPPort: "587",
		},
	}
}

// LookupFunc resolves one environment variable.
type LookupFunc func(key string) (string, bool)

// Load reads the process environment, optionally seeded from an env file.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds a Config from defaults plus the values lookup returns, then validates it.
func LoadFrom(lookup LookupFunc) (*Config, error) {
	cfg := Default()
	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup LookupFunc) error {
	mappings := map[string]func(string) error{
		"PORT":              func(v string) error { cfg.Port = v; return nil },
		"GIN_MODE":          func(v string) error { cfg.GinMode = v; return nil },
		"LOG_LEVEL":         func(v string) error { cfg.LogLevel = strings.ToLower(v); return nil },
		"LOG_FORMAT":        func(v string) error { cfg.LogFormat = strings.ToLower(v); return nil },
		"CONTENT_FILE":      func(v string) error { cfg.ContentFile = v; return nil },
		"CV_PATH":           func(v string) error { cfg.CVPath = v; return nil },
		"STATIC_DIR":        func(v string) error { cfg.StaticDir = v; return nil },
		"SESSION_TTL":       func(v string) error { return parseDuration(v, &cfg.SessionTTL) },
		"SENT_RESET_DELAY":  func(v string) error { return parseDuration(v, &cfg.SentResetDelay) },
		"ERROR_RESET_DELAY": func(v string) error { return parseDuration(v, &cfg.ErrorResetDelay) },

		"RELAY_PROVIDER":      func(v string) error { cfg.Relay.Provider = strings.ToLower(v); return nil },
		"EMAILJS_SERVICE_ID":  func(v string) error { cfg.Relay.ServiceID = v; return nil },
		"EMAILJS_TEMPLATE_ID": func(v string) error { cfg.Relay.TemplateID = v; return nil },
		"EMAILJS_PUBLIC_KEY":  func(v string) error { cfg.Relay.PublicKey = v; return nil },
		"EMAILJS_PRIVATE_KEY": func(v string) error { cfg.Relay.PrivateKey = v; return nil },
		"EMAILJS_ENDPOINT":    func(v string) error { cfg.Relay.Endpoint = v; return nil },
		"SMTP_HOST":           func(v string) error { cfg.Relay.SMTPHost = v; return nil },
		"SMTP_PORT":           func(v string) error { cfg.Relay.SMTPPort = v; return nil },
		"SMTP_USER":           func(v string) error { cfg.Relay.SMTPUser = v; return nil },
		"SMTP_PASS":           func(v string) error { cfg.Relay.SMTPPass = v; return nil },
		"TO_EMAIL":            func(v string) error { cfg.Relay.ToEmail = v; return nil },
	}

	keys := make([]string, 0, len(mappings))
	for key := range mappings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var problems []Problem
	for _, key := range keys {
		value, ok := lookup(key)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		if err := mappings[key](strings.TrimSpace(value)); err != nil {
			problems = append(problems, Problem{Key: key, Message: err.Error()})
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

func parseDuration(value string, dest *time.Duration) error {
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("invalid duration %q", value)
	}
	*dest = d
	return nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			if name := field.Tag.Get("env"); name != "" {
				return name
			}
			return field.Name
		})
		validateInst = v
	})
	return validateInst
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	err := validatorInstance().Struct(c)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	problems := make([]Problem, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, Problem{Key: fe.Field(), Message: describe(fe)})
	}
	return &ValidationError{Problems: problems}
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "gt":
		return "must be positive"
	default:
		return fmt.Sprintf("failed %q check", fe.Tag())
	}
}

// Problem is one invalid or missing setting.
type Problem struct {
	Key     string
	Message string
}

// ValidationError lists every configuration problem found at startup.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Problems) == 0 {
		return "invalid configuration"
	}
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.Key+" "+p.Message)
	}
	return "invalid configuration: " + strings.Join(parts, "; ")
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}
