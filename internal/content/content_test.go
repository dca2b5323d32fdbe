package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultContentIsValid(t *testing.T) {
	t.Parallel()

	store, err := NewStore(Default())
	require.NoError(t, err)
	assert.Equal(t, 5, store.ProjectCount())
	assert.Equal(t, "Emynado01", store.Profile().GitHubHandle())
	assert.Len(t, store.SkillGroups(), 3)
}

func TestSkillGroupLevels(t *testing.T) {
	t.Parallel()

	g := SkillGroup{Name: "OUTILS", Base: 80, Step: 3, Skills: []string{"Git", "Docker", "Figma"}}
	assert.Equal(t, []Skill{{"Git", 80}, {"Docker", 77}, {"Figma", 74}}, g.Levels())

	steep := SkillGroup{Name: "X", Base: 5, Step: 10, Skills: []string{"a", "b"}}
	assert.Equal(t, 0, steep.Levels()[1].Level)
}

func TestStoreReturnsCopies(t *testing.T) {
	t.Parallel()

	store, err := NewStore(Default())
	require.NoError(t, err)

	projects := store.Projects()
	projects[0].Title = "mutated"
	groups := store.SkillGroups()
	groups[0].Skills[0] = "mutated"

	assert.NotEqual(t, "mutated", store.Projects()[0].Title)
	assert.NotEqual(t, "mutated", store.SkillGroups()[0].Skills[0])
}

func TestVisibleProjects(t *testing.T) {
	t.Parallel()

	all := Default().Projects

	assert.Equal(t, all, VisibleProjects(all, FilterAll))

	done := VisibleProjects(all, FilterDone)
	require.Len(t, done, 3)
	assert.Equal(t, []string{"Gestionnaire de vol", "Site météo provinciale", "Site festivals africains"},
		titles(done))
	for _, p := range done {
		assert.Equal(t, StatusDone, p.Status)
	}

	inProgress := VisibleProjects(all, FilterInProgress)
	assert.Equal(t, []string{"Application iOS", "Gestion des tâches innovante"}, titles(inProgress))

	assert.Empty(t, VisibleProjects(nil, FilterDone))
}

func TestParseFilter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Filter
		wantErr bool
	}{
		{"all", FilterAll, false},
		{"", FilterAll, false},
		{"done", FilterDone, false},
		{"in_progress", FilterInProgress, false},
		{"TERMINÉ", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFilter(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestStatusLabels(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TERMINÉ", StatusDone.Label())
	assert.Equal(t, "EN COURS", StatusInProgress.Label())
	assert.Equal(t, "Tous", FilterAll.Label())
}

func TestParseOverridesSections(t *testing.T) {
	t.Parallel()

	data := []byte(`
projects:
  - title: CLI
    tech: Go
    description: A tool
    status: in_progress
`)
	c, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, c.Projects, 1)
	assert.Equal(t, StatusInProgress, c.Projects[0].Status)
	assert.Equal(t, Default().Profile, c.Profile)
}

func TestParseRejectsUnknownStatus(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("projects:\n  - title: X\n    status: shipped\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "shipped")

	_, err = Parse([]byte("projects: [oops"))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile:\n  name: Jane\n  title: Dev\n"), 0o600))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane", c.Profile.Name)
	assert.Len(t, c.Projects, 5)

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func titles(ps []Project) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Title)
	}
	return out
}
