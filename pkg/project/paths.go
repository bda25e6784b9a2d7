package project

import (
	"os"
	"path/filepath"

	"github.com/agentstation/novelstat/pkg/constants"
)

// Paths resolves the standard project layout below Root.
type Paths struct {
	Root string
}

// NewPaths returns the layout for the project rooted at root.
// An empty root means the current directory.
func NewPaths(root string) Paths {
	if root == "" {
		root = constants.DefaultProjectPath
	}
	return Paths{Root: root}
}

// Planning returns the planning directory.
func (p Paths) Planning() string {
	return filepath.Join(p.Root, constants.PlanningDir)
}

// Progress returns the declared progress record path.
func (p Paths) Progress() string {
	return filepath.Join(p.Planning(), constants.ProgressFile)
}

// Tracking returns the declared chapter tracking path.
func (p Paths) Tracking() string {
	return filepath.Join(p.Planning(), constants.TrackingFile)
}

// Chapters returns the directory holding manuscript chapter files.
func (p Paths) Chapters() string {
	return filepath.Join(p.Root, constants.ManuscriptDir, constants.ChaptersDir)
}

// Resolve joins a project-relative path onto the root.
func (p Paths) Resolve(rel string) string {
	return filepath.Join(p.Root, filepath.FromSlash(rel))
}

// Exists reports whether the project-relative path exists.
func (p Paths) Exists(rel string) bool {
	_, err := os.Stat(p.Resolve(rel))
	return err == nil
}
