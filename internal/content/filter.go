package content

import "fmt"

// Filter narrows the project list by status.
type Filter string

const (
	FilterAll        Filter = "all"
	FilterDone       Filter = Filter(StatusDone)
	FilterInProgress Filter = Filter(StatusInProgress)
)

// Filters lists the selector options in display order.
var Filters = []Filter{FilterAll, FilterDone, FilterInProgress}

// ParseFilter maps a selector value to a Filter.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case FilterAll, FilterDone, FilterInProgress:
		return f, nil
	case "":
		return FilterAll, nil
	default:
		return "", fmt.Errorf("unknown project filter %q", s)
	}
}

// Label is the option text for the filter selector.
func (f Filter) Label() string {
	switch f {
	case FilterDone:
		return "Terminé"
	case FilterInProgress:
		return "En cours"
	default:
		return "Tous"
	}
}

// VisibleProjects returns the projects matching f in source order.
// FilterAll returns all unchanged.
func VisibleProjects(all []Project, f Filter) []Project {
	if f == FilterAll || f == "" {
		return all
	}
	out := make([]Project, 0, len(all))
	for _, p := range all {
		if Filter(p.Status) == f {
			out = append(out, p)
		}
	}
	return out
}
