package report

import (
	"strings"

	"github.com/agentstation/novelstat/pkg/project"
)

// Component is one expected sub-path of a project.
type Component struct {
	Path    string `json:"path" yaml:"path" mapstructure:"path"`
	Label   string `json:"label" yaml:"label" mapstructure:"label"`
	Present bool   `json:"present" yaml:"present" mapstructure:"-"`
}

// DefaultComponents returns the standard project checklist.
func DefaultComponents() []Component {
	return []Component{
		{Path: "CLAUDE.md", Label: "Master config"},
		{Path: ".claude/agents/", Label: "Sub-agents"},
		{Path: "manuscript/chapters/", Label: "Manuscript"},
		{Path: "planning/", Label: "Planning files"},
		{Path: "worldbuilding/", Label: "World data"},
		{Path: "characters/", Label: "Character data"},
	}
}

// ParseComponent parses "path=label". Without a label the path is used.
func ParseComponent(s string) Component {
	path, label, ok := strings.Cut(s, "=")
	path = strings.TrimSpace(path)
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		label = path
	}
	return Component{Path: path, Label: label}
}

func checkComponents(paths project.Paths, components []Component) []Component {
	out := make([]Component, len(components))
	for i, c := range components {
		c.Present = paths.Exists(c.Path)
		out[i] = c
	}
	return out
}
