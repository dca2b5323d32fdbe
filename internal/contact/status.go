package contact

// Status is the submission lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusSending
	StatusSent
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusSending:
		return "sending"
	case StatusSent:
		return "sent"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Busy reports whether the submit control is inert.
func (s Status) Busy() bool {
	return s == StatusSending
}

// AcceptsSubmit reports whether Submit may start from s.
func (s Status) AcceptsSubmit() bool {
	return s == StatusIdle || s == StatusError
}

// ButtonLabel is the submit button caption for s.
func (s Status) ButtonLabel() string {
	switch s {
	case StatusSending:
		return "Envoi…"
	case StatusSent:
		return "✔️ Envoyé"
	default:
		return "Envoyer"
	}
}

// Message is the status line under the form, empty when nothing is shown.
func (s Status) Message() string {
	if s == StatusError {
		return "Erreur lors de l’envoi, réessaie !"
	}
	return ""
}

// Transient reports whether s resolves on its own (relay callback or reset timer).
func (s Status) Transient() bool {
	return s != StatusIdle
}
