package config

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/fyrsmithlabs/recreate-user-schemes/internal/failure"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

const (
	maxConfigFileSize = 1024 * 1024 // 1MB

	// EnvPrefix prefixes every environment variable except the project_path override.
	EnvPrefix = "RECREATE_SCHEMES_"

	// EnvProjectPath is the environment override for the project path.
	EnvProjectPath = "project_path"
)

const defaultsYAML = `
mode: recreate
visible: true
git_status: true
logging:
  level: warn
  format: console
  caller: false
`

// DefaultConfigPath returns ~/.config/recreate-user-schemes/config.yaml.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "recreate-user-schemes", "config.yaml"), nil
}

// Load builds the configuration from defaults, a config file and the environment.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (RECREATE_SCHEMES_MODE, RECREATE_SCHEMES_LOGGING_LEVEL, etc.)
//  2. Config file (configPath, or ~/.config/recreate-user-schemes/config.yaml if it exists)
//  3. Hardcoded defaults
//
// An explicit configPath must exist. Files ending in .toml are parsed as TOML,
// everything else as YAML.
//
// The project_path environment variable is not merged into the config; it is
// returned in Config.Override so that ResolveProjectPath can tell an empty
// override from an absent one.
//
// Environment variables map to keys by stripping the prefix and lowercasing:
//
//	RECREATE_SCHEMES_MODE          -> mode
//	RECREATE_SCHEMES_GIT_STATUS    -> git_status
//	RECREATE_SCHEMES_LOGGING_LEVEL -> logging.level
//
// All returned errors are configuration errors.
func Load(configPath string) (*Config, error) {
	cfg, err := load(configPath)
	if err != nil {
		return nil, failure.Configuration(err)
	}
	return cfg, nil
}

func load(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider([]byte(defaultsYAML)), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	explicit := configPath != ""
	if !explicit {
		if p, err := DefaultConfigPath(); err == nil {
			configPath = p
		}
	}

	var source string
	if configPath != "" {
		loaded, err := loadFile(k, configPath, explicit)
		if err != nil {
			return nil, err
		}
		if loaded {
			source = configPath
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	override, err := loadOverride()
	if err != nil {
		return nil, err
	}
	cfg.Override = override
	cfg.Source = source

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// loadFile loads the config file into k. A missing file is an error only
// when the path was given explicitly.
func loadFile(k *koanf.Koanf, path string, explicit bool) (bool, error) {
	// Open once and validate the descriptor to avoid a TOCTOU race
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return false, nil
		}
		return false, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return false, fmt.Errorf("failed to stat config file: %w", err)
	}
	if err := validateConfigFileProperties(info); err != nil {
		return false, fmt.Errorf("config file validation failed: %w", err)
	}

	content, err := io.ReadAll(f)
	if err != nil {
		return false, fmt.Errorf("failed to read config file: %w", err)
	}

	var parser koanf.Parser = yaml.Parser()
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		parser = TOMLParser{}
	}

	if err := k.Load(rawbytes.Provider(content), parser); err != nil {
		return false, fmt.Errorf("failed to load config file %s: %w", path, err)
	}

	return true, nil
}

// validateConfigFileProperties checks file type and size.
// Takes FileInfo from an already-opened file descriptor.
func validateConfigFileProperties(info os.FileInfo) error {
	if !info.Mode().IsRegular() {
		return fmt.Errorf("config file is not a regular file")
	}
	if info.Size() > maxConfigFileSize {
		return fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxConfigFileSize)
	}
	return nil
}

// envKey maps RECREATE_SCHEMES_* variables to config keys.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	if key == "" || key == EnvProjectPath {
		// project_path only comes from the dedicated override variable
		return ""
	}
	if rest, ok := strings.CutPrefix(key, "logging_"); ok {
		return "logging." + rest
	}
	return key
}

// loadOverride reads the project_path variable, keeping an empty value.
func loadOverride() (Override, error) {
	k := koanf.New(".")
	if err := k.Load(env.Provider(EnvProjectPath, ".", func(s string) string {
		if s != EnvProjectPath {
			return ""
		}
		return s
	}), nil); err != nil {
		return Override{}, fmt.Errorf("failed to load %s: %w", EnvProjectPath, err)
	}

	if !k.Exists(EnvProjectPath) {
		return Override{}, nil
	}
	return Override{Value: k.String(EnvProjectPath), Set: true}, nil
}

// applyDefaults sets values that cannot be expressed in defaultsYAML.
func applyDefaults(cfg *Config) {
	if cfg.DefaultProjectPath == "" {
		cfg.DefaultProjectPath = DefaultProjectPath
	}
	if cfg.User == "" {
		cfg.User = defaultUser()
	}
}

// defaultUser returns the name Xcode uses for the xcuserdata directory.
func defaultUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "default"
}
