package config

import (
	"errors"

	"github.com/fyrsmithlabs/recreate-user-schemes/internal/failure"
)

// ErrEmptyPath indicates that the resolved project path is empty.
var ErrEmptyPath = errors.New("empty path")

// Override is an environment-style override. Set distinguishes an override
// that is present but empty from one that is absent.
type Override struct {
	Value string
	Set   bool
}

// ResolveProjectPath returns the override value when it is set, else
// defaultPath. An empty result is a configuration error; nothing on disk is
// touched.
func ResolveProjectPath(override Override, defaultPath string) (string, error) {
	path := defaultPath
	if override.Set {
		path = override.Value
	}

	if path == "" {
		return "", failure.Configuration(ErrEmptyPath)
	}

	return path, nil
}
