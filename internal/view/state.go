// Package view holds the per-visitor presentation state and its pure transitions.
package view

import (
	"fmt"
	"strings"

	"github.com/Emynado01/portfolio/internal/content"
)

// View names one of the five content panels.
type View string

const (
	Profile    View = "profile"
	Skills     View = "skills"
	Experience View = "experience"
	Projects   View = "projects"
	Contact    View = "contact"
)

// Views lists the panels in tab order.
var Views = []View{Profile, Skills, Experience, Projects, Contact}

// ParseView maps a tab identifier to a View.
func ParseView(s string) (View, error) {
	v := View(strings.ToLower(s))
	for _, known := range Views {
		if v == known {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// Label is the tab caption.
func (v View) Label() string {
	switch v {
	case Profile:
		return "PROFIL"
	case Skills:
		return "COMPÉTENCES"
	case Experience:
		return "EXPÉRIENCE"
	case Projects:
		return "RÉALISATIONS"
	case Contact:
		return "CONTACT"
	}
	return strings.ToUpper(string(v))
}

// State is the presentation state of one visitor. Transitions return a new State.
type State struct {
	View   View
	Filter content.Filter
	Dark   bool
}

// New returns the initial state, with the theme seeded from the platform preference.
func New(dark bool) State {
	return State{View: Profile, Filter: content.FilterAll, Dark: dark}
}

// SelectTab makes v the active view.
func SelectTab(s State, v View) State {
	s.View = v
	return s
}

// SetFilter changes the project status filter.
func SetFilter(s State, f content.Filter) State {
	s.Filter = f
	return s
}

// ToggleTheme flips the dark flag.
func ToggleTheme(s State) State {
	s.Dark = !s.Dark
	return s
}

// PrefersDark interprets a Sec-CH-Prefers-Color-Scheme client hint.
func PrefersDark(hint string) bool {
	return strings.EqualFold(strings.Trim(strings.TrimSpace(hint), `"`), "dark")
}
