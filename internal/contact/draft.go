// Package contact implements the contact modal and its submission lifecycle.
package contact

import (
	"errors"
	"regexp"
	"strings"
)

var (
	// ErrModalClosed is returned by operations that need the modal open.
	ErrModalClosed = errors.New("contact modal is closed")
	// ErrSubmitInProgress rejects a submit while a previous one is sending or just sent.
	ErrSubmitInProgress = errors.New("submission already in progress")
	// ErrUnknownField rejects updates to anything but name, email and subject.
	ErrUnknownField = errors.New("unknown contact field")
	// ErrInvalidEmail is the local validation failure; the relay is never called.
	ErrInvalidEmail = errors.New("invalid email address")
)

// Field names one input of the contact form.
type Field string

const (
	FieldName    Field = "name"
	FieldEmail   Field = "email"
	FieldSubject Field = "subject"
)

// ParseField maps a form input name to a Field.
func ParseField(s string) (Field, error) {
	switch f := Field(strings.TrimSpace(s)); f {
	case FieldName, FieldEmail, FieldSubject:
		return f, nil
	default:
		return "", ErrUnknownField
	}
}

// Draft holds the unsent form values.
type Draft struct {
	Name    string
	Email   string
	Subject string
}

// With returns a copy of d with field set to value.
func (d Draft) With(field Field, value string) (Draft, error) {
	switch field {
	case FieldName:
		d.Name = value
	case FieldEmail:
		d.Email = value
	case FieldSubject:
		d.Subject = value
	default:
		return d, ErrUnknownField
	}
	return d, nil
}

// IsEmpty reports whether every field is blank.
func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail applies the structural local@domain.tld check.
func ValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate reports whether d may be sent to the relay.
func Validate(d Draft) bool {
	return ValidEmail(d.Email)
}
