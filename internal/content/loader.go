package content

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML content file. Sections the file leaves empty keep the defaults.
func LoadFile(path string) (Content, error) {
	// #nosec G304 - path comes from operator configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML content over the defaults and validates the result.
func Parse(data []byte) (Content, error) {
	var file Content
	if err := yaml.Unmarshal(data, &file); err != nil {
		return Content{}, fmt.Errorf("parse content: %w", err)
	}

	merged := Default()
	if file.Profile.Name != "" {
		merged.Profile = file.Profile
	}
	if len(file.SkillGroups) > 0 {
		merged.SkillGroups = file.SkillGroups
	}
	if len(file.Experiences) > 0 {
		merged.Experiences = file.Experiences
	}
	if len(file.Projects) > 0 {
		merged.Projects = file.Projects
	}

	if err := merged.Validate(); err != nil {
		return Content{}, fmt.Errorf("invalid content: %w", err)
	}
	return merged, nil
}
