package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"alice@x.com", true},
		{"first.last+tag@sub.example.org", true},
		{"not-an-email", false},
		{"", false},
		{"a@b", false},
		{"@b.co", false},
		{"a b@c.de", false},
		{"a@b@c.de", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ValidEmail(tt.email), tt.email)
		assert.Equal(t, tt.want, Validate(Draft{Email: tt.email}), tt.email)
	}
}

func TestDraftWith(t *testing.T) {
	t.Parallel()

	var d Draft
	assert.True(t, d.IsEmpty())

	d, err := d.With(FieldSubject, "Mission")
	require.NoError(t, err)
	assert.Equal(t, Draft{Subject: "Mission"}, d)

	_, err = d.With(Field("message"), "x")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestParseField(t *testing.T) {
	t.Parallel()

	f, err := ParseField("email")
	require.NoError(t, err)
	assert.Equal(t, FieldEmail, f)

	_, err = ParseField("fullName")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestStatusPresentation(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Envoyer", StatusIdle.ButtonLabel())
	assert.Equal(t, "Envoi…", StatusSending.ButtonLabel())
	assert.Equal(t, "✔️ Envoyé", StatusSent.ButtonLabel())
	assert.Equal(t, "Envoyer", StatusError.ButtonLabel())
	assert.NotEmpty(t, StatusError.Message())
	assert.Empty(t, StatusSending.Message())

	assert.True(t, StatusSending.Busy())
	assert.False(t, StatusError.Busy())
	assert.True(t, StatusIdle.AcceptsSubmit())
	assert.True(t, StatusError.AcceptsSubmit())
	assert.False(t, StatusSent.AcceptsSubmit())
	assert.Equal(t, "sending", StatusSending.String())
}
