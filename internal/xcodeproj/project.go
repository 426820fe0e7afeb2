package xcodeproj

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	// ProjectExtension is the bundle extension of an Xcode project.
	ProjectExtension = ".xcodeproj"

	pbxprojFile     = "project.pbxproj"
	managementFile  = "xcschememanagement.plist"
	schemeExtension = ".xcscheme"
)

// Target is a buildable target of a project.
type Target struct {
	ID          string
	ISA         string
	Name        string
	ProductType string
	// ProductName is the file name of the built product, or the target name
	// for targets without a product reference.
	ProductName string
}

// Launchable reports whether the target gets a runnable in its scheme.
func (t Target) Launchable() bool {
	return IsLaunchable(t.ProductType)
}

// Testable reports whether the target is a test bundle.
func (t Target) Testable() bool {
	return IsTest(t.ProductType)
}

// Project is an opened .xcodeproj bundle.
type Project struct {
	// Path is the absolute path of the bundle.
	Path string
	// Name is the bundle name without extension.
	Name string

	doc *pbxproj

	user    string
	visible bool
	schemes []*Scheme
}

// IsProject reports whether path has the project bundle extension.
func IsProject(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ProjectExtension)
}

// Open reads the project bundle at path. It fails when path does not exist,
// is not a directory with the .xcodeproj extension, or does not contain a
// parseable project.pbxproj.
func Open(path string) (*Project, error) {
	if !IsProject(path) {
		return nil, fmt.Errorf("%s is not an Xcode project: expected %s extension", path, ProjectExtension)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to stat project: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a project bundle directory", abs)
	}

	data, err := os.ReadFile(filepath.Join(abs, pbxprojFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", pbxprojFile, err)
	}

	doc, err := decodePBXProj(data)
	if err != nil {
		return nil, err
	}

	return &Project{
		Path: abs,
		Name: strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
		doc:  doc,
	}, nil
}

// Targets returns the project's targets sorted by name.
func (p *Project) Targets() ([]Target, error) {
	return p.doc.targets()
}

// RecreateUserSchemes rebuilds the user scheme set in memory: one scheme
// per target, named after it. Nothing is written until Save.
func (p *Project) RecreateUserSchemes(user string, visible bool) error {
	if user == "" {
		return fmt.Errorf("user cannot be empty")
	}

	targets, err := p.Targets()
	if err != nil {
		return err
	}

	container := "container:" + filepath.Base(p.Path)
	schemes := make([]*Scheme, 0, len(targets))
	for _, t := range targets {
		schemes = append(schemes, NewScheme(t, container))
	}

	p.user = user
	p.visible = visible
	p.schemes = schemes
	return nil
}

// UserSchemes returns the schemes built by the last RecreateUserSchemes.
func (p *Project) UserSchemes() []*Scheme {
	return p.schemes
}

// UserSchemesDir returns xcuserdata/<user>.xcuserdatad/xcschemes inside the bundle.
func (p *Project) UserSchemesDir(user string) string {
	return UserSchemesDir(p.Path, user)
}

// SharedSchemesDir returns xcshareddata/xcschemes inside the bundle.
func (p *Project) SharedSchemesDir() string {
	return SharedSchemesDir(p.Path)
}

// Save replaces the user scheme directory with the schemes built by
// RecreateUserSchemes. The directory is removed first, so a failure part
// way through leaves it incomplete.
func (p *Project) Save() error {
	if p.user == "" {
		return fmt.Errorf("no user schemes to save: RecreateUserSchemes was not called")
	}

	dir := p.UserSchemesDir(p.user)
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", dir, err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	mgmt := newSchemeManagement()
	for _, s := range p.schemes {
		data, err := s.Encode()
		if err != nil {
			return fmt.Errorf("failed to encode scheme %s: %w", s.Name, err)
		}
		file := filepath.Join(dir, s.Name+schemeExtension)
		if err := os.WriteFile(file, data, 0644); err != nil {
			return fmt.Errorf("failed to write scheme %s: %w", s.Name, err)
		}
		mgmt.add(s.Name, p.visible)
	}

	data, err := mgmt.encode()
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", managementFile, err)
	}
	if err := os.WriteFile(filepath.Join(dir, managementFile), data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", managementFile, err)
	}

	return nil
}

// Schemes lists the shared and user scheme files of the bundle.
func (p *Project) Schemes() ([]SchemeFile, error) {
	return ListSchemes(p.Path)
}

// ShareScheme moves the saved user scheme name into xcshareddata.
func (p *Project) ShareScheme(name string) error {
	if p.user == "" {
		return fmt.Errorf("no user schemes to share: RecreateUserSchemes was not called")
	}

	src := filepath.Join(p.UserSchemesDir(p.user), name+schemeExtension)
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("user scheme %s: %w", name, err)
	}

	dstDir := p.SharedSchemesDir()
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dstDir, err)
	}

	if err := os.Rename(src, filepath.Join(dstDir, name+schemeExtension)); err != nil {
		return fmt.Errorf("failed to share scheme %s: %w", name, err)
	}
	return nil
}

// SchemeFile is a scheme found on disk.
type SchemeFile struct {
	Name   string
	Path   string
	Shared bool
}

// UserSchemesDir returns the user scheme directory of a project or workspace bundle.
func UserSchemesDir(container, user string) string {
	return filepath.Join(container, "xcuserdata", user+".xcuserdatad", "xcschemes")
}

// SharedSchemesDir returns the shared scheme directory of a project or workspace bundle.
func SharedSchemesDir(container string) string {
	return filepath.Join(container, "xcshareddata", "xcschemes")
}

// ListSchemes returns the scheme files of a project or workspace bundle,
// shared ones first, each group sorted by name. Missing directories are
// not an error.
func ListSchemes(container string) ([]SchemeFile, error) {
	shared, err := schemeFilesIn(SharedSchemesDir(container), true)
	if err != nil {
		return nil, err
	}

	userDirs, err := filepath.Glob(filepath.Join(container, "xcuserdata", "*.xcuserdatad", "xcschemes"))
	if err != nil {
		return nil, fmt.Errorf("failed to list user data: %w", err)
	}
	sort.Strings(userDirs)

	var user []SchemeFile
	for _, dir := range userDirs {
		files, err := schemeFilesIn(dir, false)
		if err != nil {
			return nil, err
		}
		user = append(user, files...)
	}
	sort.SliceStable(user, func(i, j int) bool { return user[i].Name < user[j].Name })

	return append(shared, user...), nil
}

func schemeFilesIn(dir string, shared bool) ([]SchemeFile, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", dir, err)
	}

	var files []SchemeFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != schemeExtension {
			continue
		}
		files = append(files, SchemeFile{
			Name:   strings.TrimSuffix(e.Name(), schemeExtension),
			Path:   filepath.Join(dir, e.Name()),
			Shared: shared,
		})
	}
	return files, nil
}
