package regen

import (
	"fmt"
	"path/filepath"

	"github.com/fyrsmithlabs/recreate-user-schemes/internal/xcodeproj"
)

// container is a project or a workspace of projects.
type container interface {
	// schemes returns scheme files keyed by project or workspace path.
	schemes() (map[string][]xcodeproj.SchemeFile, error)
	// projects returns the projects to regenerate and the referenced
	// project paths that do not exist.
	projects() ([]*xcodeproj.Project, []string, error)
}

type projectContainer struct {
	project *xcodeproj.Project
}

func (p projectContainer) schemes() (map[string][]xcodeproj.SchemeFile, error) {
	schemes, err := p.project.Schemes()
	if err != nil {
		return nil, fmt.Errorf("listing schemes in project %s failed: %w", p.project.Path, err)
	}
	return map[string][]xcodeproj.SchemeFile{p.project.Path: schemes}, nil
}

func (p projectContainer) projects() ([]*xcodeproj.Project, []string, error) {
	return []*xcodeproj.Project{p.project}, nil, nil
}

type workspaceContainer struct {
	workspace *xcodeproj.Workspace
}

func (w workspaceContainer) schemes() (map[string][]xcodeproj.SchemeFile, error) {
	schemes, err := w.workspace.Schemes()
	if err != nil {
		return nil, fmt.Errorf("listing schemes in workspace %s failed: %w", w.workspace.Path, err)
	}
	return schemes, nil
}

func (w workspaceContainer) projects() ([]*xcodeproj.Project, []string, error) {
	paths, missing, err := w.workspace.ExistingProjects()
	if err != nil {
		return nil, nil, fmt.Errorf("listing projects in workspace %s failed: %w", w.workspace.Path, err)
	}

	projects := make([]*xcodeproj.Project, 0, len(paths))
	for _, path := range paths {
		p, err := xcodeproj.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("opening project %s in workspace %s failed: %w", path, w.workspace.Path, err)
		}
		projects = append(projects, p)
	}

	if len(projects) == 0 {
		return nil, missing, fmt.Errorf("workspace %s references no existing project", w.workspace.Path)
	}

	return projects, missing, nil
}

// openContainer opens path as a project or a workspace by extension.
func openContainer(path string) (container, error) {
	switch {
	case xcodeproj.IsProject(path):
		p, err := xcodeproj.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open Xcode project: %w", err)
		}
		return projectContainer{project: p}, nil
	case xcodeproj.IsWorkspace(path):
		w, err := xcodeproj.OpenWorkspace(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open Xcode workspace: %w", err)
		}
		return workspaceContainer{workspace: w}, nil
	}

	return nil, fmt.Errorf("project path (%s) has an invalid extension, expected '%s' or '%s'",
		path, xcodeproj.ProjectExtension, xcodeproj.WorkspaceExtension)
}

// relativeToContainer renders path relative to the directory holding the
// container, falling back to path itself.
func relativeToContainer(path, containerPath string) string {
	rel, err := filepath.Rel(filepath.Dir(containerPath), path)
	if err != nil {
		return path
	}
	return rel
}
