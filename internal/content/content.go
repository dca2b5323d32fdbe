// Package content holds the immutable portfolio data rendered by the site.
package content

import (
	"fmt"
	"strings"
)

// ProjectStatus is the completion state of a project.
type ProjectStatus string

const (
	StatusDone       ProjectStatus = "done"
	StatusInProgress ProjectStatus = "in_progress"
)

// Valid reports whether s is a known status.
func (s ProjectStatus) Valid() bool {
	return s == StatusDone || s == StatusInProgress
}

// Label is the badge text shown on project cards.
func (s ProjectStatus) Label() string {
	switch s {
	case StatusDone:
		return "TERMINÉ"
	case StatusInProgress:
		return "EN COURS"
	default:
		return strings.ToUpper(string(s))
	}
}

type Project struct {
	Title       string        `yaml:"title"`
	Tech        string        `yaml:"tech"`
	Description string        `yaml:"description"`
	Status      ProjectStatus `yaml:"status"`
}

type Experience struct {
	Title       string `yaml:"title"`
	Company     string `yaml:"company"`
	Period      string `yaml:"period"`
	Description string `yaml:"description"`
	Level       int    `yaml:"level"`
}

// SkillGroup lists skills whose displayed level decreases by Step from Base.
type SkillGroup struct {
	Name   string   `yaml:"name"`
	Base   int      `yaml:"base"`
	Step   int      `yaml:"step"`
	Skills []string `yaml:"skills"`
}

// Skill is one rendered skill bar.
type Skill struct {
	Name  string
	Level int
}

// Levels returns the skills of the group with their computed levels, never below zero.
func (g SkillGroup) Levels() []Skill {
	out := make([]Skill, 0, len(g.Skills))
	for i, name := range g.Skills {
		level := g.Base - i*g.Step
		if level < 0 {
			level = 0
		}
		out = append(out, Skill{Name: name, Level: level})
	}
	return out
}

type Profile struct {
	Name            string `yaml:"name"`
	Title           string `yaml:"title"`
	YearsExperience int    `yaml:"years_experience"`
	About           string `yaml:"about"`
	Email           string `yaml:"email"`
	GitHub          string `yaml:"github"`
}

// GitHubHandle returns the last path segment of the GitHub URL.
func (p Profile) GitHubHandle() string {
	trimmed := strings.TrimRight(p.GitHub, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		return trimmed[i+1:]
	}
	return trimmed
}

// Content is the full set of portfolio data.
type Content struct {
	Profile     Profile      `yaml:"profile"`
	SkillGroups []SkillGroup `yaml:"skills"`
	Experiences []Experience `yaml:"experience"`
	Projects    []Project    `yaml:"projects"`
}

// Validate rejects content the templates cannot render sensibly.
func (c Content) Validate() error {
	if strings.TrimSpace(c.Profile.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: title is required", i)
		}
		if !p.Status.Valid() {
			return fmt.Errorf("project %q: unknown status %q", p.Title, p.Status)
		}
	}
	for i, g := range c.SkillGroups {
		if strings.TrimSpace(g.Name) == "" {
			return fmt.Errorf("skill group %d: name is required", i)
		}
	}
	return nil
}

// Store exposes Content read-only. Accessors return copies so callers cannot mutate it.
type Store struct {
	content Content
}

// NewStore validates c and wraps it in a Store.
func NewStore(c Content) (*Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Store{content: clone(c)}, nil
}

func (s *Store) Profile() Profile { return s.content.Profile }

func (s *Store) SkillGroups() []SkillGroup {
	out := make([]SkillGroup, len(s.content.SkillGroups))
	for i, g := range s.content.SkillGroups {
		g.Skills = append([]string(nil), g.Skills...)
		out[i] = g
	}
	return out
}

func (s *Store) Experiences() []Experience {
	return append([]Experience(nil), s.content.Experiences...)
}

func (s *Store) Projects() []Project {
	return append([]Project(nil), s.content.Projects...)
}

// ProjectCount is the number of projects shown on the profile badge.
func (s *Store) ProjectCount() int {
	return len(s.content.Projects)
}

func clone(c Content) Content {
	out := c
	out.SkillGroups = make([]SkillGroup, len(c.SkillGroups))
	for i, g := range c.SkillGroups {
		g.Skills = append([]string(nil), g.Skills...)
		out.SkillGroups[i] = g
	}
	out.Experiences = append([]Experience(nil), c.Experiences...)
	out.Projects = append([]Project(nil), c.Projects...)
	return out
}
