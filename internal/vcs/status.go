// Package vcs reports how regenerated scheme files show up in the
// enclosing git worktree.
package vcs

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
)

// ErrNotRepository is returned when the path is not inside a git worktree.
var ErrNotRepository = errors.New("not a git repository")

// Change is a worktree entry that differs from HEAD.
type Change struct {
	// Path is relative to the repository root, slash separated.
	Path     string
	Staging  git.StatusCode
	Worktree git.StatusCode
}

// String renders the change in `git status --porcelain` form.
func (c Change) String() string {
	return fmt.Sprintf("%c%c %s", c.Staging, c.Worktree, c.Path)
}

// Detector reads git status with go-git, without a git binary.
type Detector struct{}

// NewDetector returns a Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Changes returns the changed and untracked files under dir, sorted by path.
// The repository is found by walking up from dir.
func (d *Detector) Changes(dir string) ([]Change, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", dir, err)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		if errors.Is(err, git.ErrIsBareRepository) {
			return nil, ErrNotRepository
		}
		return nil, fmt.Errorf("failed to open worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read worktree status: %w", err)
	}

	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return nil, fmt.Errorf("failed to relate %s to worktree: %w", abs, err)
	}
	prefix := filepath.ToSlash(rel)

	var changes []Change
	for file, st := range status {
		if st.Staging == git.Unmodified && st.Worktree == git.Unmodified {
			continue
		}
		if prefix != "." && file != prefix && !strings.HasPrefix(file, prefix+"/") {
			continue
		}
		changes = append(changes, Change{Path: file, Staging: st.Staging, Worktree: st.Worktree})
	}

	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}
