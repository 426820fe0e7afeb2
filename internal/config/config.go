// Package config provides configuration loading for recreate-user-schemes.
//
// Configuration is layered (lowest to highest precedence): compiled defaults,
// an optional YAML or TOML file, then environment variables. The project path
// is resolved separately by ResolveProjectPath so that an explicitly empty
// override is reported instead of silently falling back to a default.
package config

import (
	"fmt"
	"strings"
)

// Run modes.
const (
	// ModeRecreate always regenerates user schemes.
	ModeRecreate = "recreate"

	// ModeEnsureShared leaves containers with shared schemes untouched and
	// otherwise regenerates user schemes and shares them.
	ModeEnsureShared = "ensure-shared"
)

// Log output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// DefaultProjectPath is the compiled-in fallback project path. It is empty
// unless set at build time:
//
//	go build -ldflags "-X github.com/fyrsmithlabs/recreate-user-schemes/internal/config.DefaultProjectPath=/path/App.xcodeproj"
var DefaultProjectPath = ""

var validLogLevels = []string{"trace", "debug", "info", "warn", "error"}

// Config holds the complete recreate-user-schemes configuration.
type Config struct {
	// DefaultProjectPath is the project path used when no override is set:
	// the config file value, else the compiled-in DefaultProjectPath.
	DefaultProjectPath string `koanf:"project_path"`

	Mode      string        `koanf:"mode"`
	User      string        `koanf:"user"`    // owner of the xcuserdata scheme directory
	Visible   bool          `koanf:"visible"` // isShown flag written to xcschememanagement.plist
	GitStatus bool          `koanf:"git_status"`
	Logging   LoggingConfig `koanf:"logging"`

	// Override is the project_path environment override as read by Load.
	Override Override `koanf:"-"`

	// Source is the config file that was loaded, empty if none.
	Source string `koanf:"-"`
}

// LoggingConfig holds log output settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"` // annotate entries with file:line
}

// Validate checks the configuration for invalid values.
// It does not check the project path; see ResolveProjectPath.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeRecreate, ModeEnsureShared:
	default:
		return fmt.Errorf("mode must be %q or %q, got %q", ModeRecreate, ModeEnsureShared, c.Mode)
	}

	if strings.TrimSpace(c.User) == "" {
		return fmt.Errorf("user cannot be empty")
	}
	if strings.ContainsAny(c.User, `/\`) {
		return fmt.Errorf("user %q cannot contain path separators", c.User)
	}

	if c.Logging.Format != FormatConsole && c.Logging.Format != FormatJSON {
		return fmt.Errorf("logging format must be %q or %q, got %q", FormatConsole, FormatJSON, c.Logging.Format)
	}

	validLevel := false
	for _, l := range validLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("logging level must be one of %v, got %q", validLogLevels, c.Logging.Level)
	}

	return nil
}
