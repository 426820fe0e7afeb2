package xcodeproj

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	// WorkspaceExtension is the bundle extension of an Xcode workspace.
	WorkspaceExtension = ".xcworkspace"

	workspaceContentsFile = "contents.xcworkspacedata"

	// podsProject is generated by CocoaPods and never carries app schemes.
	podsProject = "Pods/Pods.xcodeproj"
)

// IsWorkspace reports whether path has the workspace bundle extension.
func IsWorkspace(path string) bool {
	return strings.EqualFold(filepath.Ext(path), WorkspaceExtension)
}

// Workspace is an opened .xcworkspace bundle.
type Workspace struct {
	Path string
	Name string

	contents workspaceContents
}

type workspaceContents struct {
	XMLName  xml.Name         `xml:"Workspace"`
	Version  string           `xml:"version,attr"`
	FileRefs []workspaceFile  `xml:"FileRef"`
	Groups   []workspaceGroup `xml:"Group"`
}

type workspaceFile struct {
	Location string `xml:"location,attr"`
}

type workspaceGroup struct {
	Location string           `xml:"location,attr"`
	Name     string           `xml:"name,attr"`
	FileRefs []workspaceFile  `xml:"FileRef"`
	Groups   []workspaceGroup `xml:"Group"`
}

// OpenWorkspace reads the workspace bundle at path.
func OpenWorkspace(path string) (*Workspace, error) {
	if !IsWorkspace(path) {
		return nil, fmt.Errorf("%s is not an Xcode workspace: expected %s extension", path, WorkspaceExtension)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat workspace: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a workspace bundle directory", abs)
	}

	data, err := os.ReadFile(filepath.Join(abs, workspaceContentsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", workspaceContentsFile, err)
	}

	var contents workspaceContents
	if err := xml.Unmarshal(data, &contents); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", workspaceContentsFile, err)
	}

	return &Workspace{
		Path:     abs,
		Name:     strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
		contents: contents,
	}, nil
}

// ProjectPaths returns the absolute paths of the projects the workspace
// references, in document order, without the CocoaPods project.
// References to missing projects are included; see ExistingProjects.
func (w *Workspace) ProjectPaths() ([]string, error) {
	base := filepath.Dir(w.Path)

	var paths []string
	seen := map[string]bool{}
	add := func(files []workspaceFile, groupDir string) error {
		for _, f := range files {
			p, err := w.resolve(f.Location, groupDir)
			if err != nil {
				return err
			}
			if p == "" || !IsProject(p) || isPodsProject(p) || seen[p] {
				continue
			}
			seen[p] = true
			paths = append(paths, p)
		}
		return nil
	}

	if err := add(w.contents.FileRefs, base); err != nil {
		return nil, err
	}

	var walk func(groups []workspaceGroup, parent string) error
	walk = func(groups []workspaceGroup, parent string) error {
		for _, g := range groups {
			dir, err := w.resolve(g.Location, parent)
			if err != nil {
				return err
			}
			if dir == "" {
				dir = parent
			}
			if err := add(g.FileRefs, dir); err != nil {
				return err
			}
			if err := walk(g.Groups, dir); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(w.contents.Groups, base); err != nil {
		return nil, err
	}

	return paths, nil
}

// ExistingProjects splits ProjectPaths into projects present on disk and
// missing ones.
func (w *Workspace) ExistingProjects() (existing, missing []string, err error) {
	paths, err := w.ProjectPaths()
	if err != nil {
		return nil, nil, err
	}

	for _, p := range paths {
		_, statErr := os.Stat(p)
		switch {
		case statErr == nil:
			existing = append(existing, p)
		case os.IsNotExist(statErr):
			missing = append(missing, p)
		default:
			return nil, nil, fmt.Errorf("failed to check %s: %w", p, statErr)
		}
	}
	return existing, missing, nil
}

// Schemes lists scheme files of the workspace itself and of every existing
// referenced project, keyed by container path.
func (w *Workspace) Schemes() (map[string][]SchemeFile, error) {
	out := map[string][]SchemeFile{}

	own, err := ListSchemes(w.Path)
	if err != nil {
		return nil, err
	}
	out[w.Path] = own

	projects, _, err := w.ExistingProjects()
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		schemes, err := ListSchemes(p)
		if err != nil {
			return nil, err
		}
		out[p] = schemes
	}
	return out, nil
}

// resolve turns a workspace location ("group:", "container:", "absolute:",
// "self:") into an absolute path. group: locations are relative to the
// enclosing group directory. An empty result means the location does not
// point at a file.
func (w *Workspace) resolve(location, groupDir string) (string, error) {
	kind, rel, ok := strings.Cut(location, ":")
	if !ok {
		return "", fmt.Errorf("invalid workspace location %q", location)
	}

	switch kind {
	case "group":
		if rel == "" {
			return groupDir, nil
		}
		return filepath.Join(groupDir, rel), nil
	case "container":
		if rel == "" {
			return filepath.Dir(w.Path), nil
		}
		return filepath.Join(filepath.Dir(w.Path), rel), nil
	case "absolute":
		return filepath.Clean(rel), nil
	case "self":
		return "", nil
	default:
		return "", fmt.Errorf("unsupported workspace location %q", location)
	}
}

func isPodsProject(path string) bool {
	return strings.HasSuffix(filepath.ToSlash(path), podsProject)
}
