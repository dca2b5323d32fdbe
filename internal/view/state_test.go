package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Emynado01/portfolio/internal/content"
)

func TestNewState(t *testing.T) {
	t.Parallel()

	s := New(true)
	assert.Equal(t, Profile, s.View)
	assert.Equal(t, content.FilterAll, s.Filter)
	assert.True(t, s.Dark)
}

func TestSelectTabEveryView(t *testing.T) {
	t.Parallel()

	s := New(false)
	for _, v := range Views {
		s = SelectTab(s, v)
		assert.Equal(t, v, s.View)
	}
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	t.Parallel()

	s := New(false)
	_ = SelectTab(s, Contact)
	_ = SetFilter(s, content.FilterDone)
	_ = ToggleTheme(s)
	assert.Equal(t, New(false), s)
}

func TestToggleThemeTwiceIsIdentity(t *testing.T) {
	t.Parallel()

	for _, dark := range []bool{true, false} {
		s := New(dark)
		assert.Equal(t, !dark, ToggleTheme(s).Dark)
		assert.Equal(t, s, ToggleTheme(ToggleTheme(s)))
	}
}

func TestParseView(t *testing.T) {
	t.Parallel()

	v, err := ParseView("Projects")
	require.NoError(t, err)
	assert.Equal(t, Projects, v)
	assert.Equal(t, "RÉALISATIONS", v.Label())

	_, err = ParseView("blog")
	assert.Error(t, err)
}

func TestPrefersDark(t *testing.T) {
	t.Parallel()

	assert.True(t, PrefersDark("dark"))
	assert.True(t, PrefersDark(`"dark"`))
	assert.False(t, PrefersDark("light"))
	assert.False(t, PrefersDark(""))
}
