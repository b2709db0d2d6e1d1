package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/lerenn/orphans/pkg/fs"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:generate mockgen -source=manager.go -destination=mocks/manager.gen.go -package=mocks

// Manager interface provides configuration management functionality with an embedded config path.
type Manager interface {
	GetConfig() (Config, error)
	GetConfigWithFallback() (Config, error)
	SaveConfig(cfg Config) error
	GetConfigPath() string
	SetConfigPath(configPath string)
	DefaultConfig() Config
}

// realManager manages configuration with an embedded config path.
type realManager struct {
	fs         fs.FS
	configPath string
}

// NewManager creates a new Manager instance with the specified config path.
func NewManager(fs fs.FS, configPath string) Manager {
	return &realManager{
		fs:         fs,
		configPath: configPath,
	}
}

// GetConfig loads configuration from the embedded config path.
// Keys missing from the file keep their default values.
func (c *realManager) GetConfig() (Config, error) {
	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return Config{}, fmt.Errorf("failed to expand config path: %w", err)
	}

	exists, err := c.fs.Exists(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to check config file: %w", err)
	}
	if !exists {
		return Config{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := decode(path, data, &config); err != nil {
		return Config{}, err
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return config, nil
}

// GetConfigWithFallback loads the configuration, falling back to defaults when the file does not exist.
// Any other failure, such as a malformed file, is returned.
func (c *realManager) GetConfigWithFallback() (Config, error) {
	config, err := c.GetConfig()
	if errors.Is(err, ErrConfigNotFound) {
		return c.DefaultConfig(), nil
	}
	return config, err
}

// SaveConfig saves configuration to the embedded config path.
func (c *realManager) SaveConfig(config Config) error {
	if err := config.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	path, err := c.fs.ExpandPath(c.configPath)
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := encode(path, config)
	if err != nil {
		return err
	}

	if err := c.fs.WriteFileAtomic(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	return nil
}

// GetConfigPath returns the embedded config path.
func (c *realManager) GetConfigPath() string {
	return c.configPath
}

// SetConfigPath updates the embedded config path.
func (c *realManager) SetConfigPath(configPath string) {
	c.configPath = configPath
}

// DefaultConfig returns the default configuration.
func (c *realManager) DefaultConfig() Config {
	return DefaultConfig()
}

// IsTOML reports whether the path selects the TOML encoding.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// IsYAML reports whether the path selects the YAML encoding.
func IsYAML(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

// CheckFormat returns ErrUnsupportedFormat unless the path selects YAML or TOML.
func CheckFormat(path string) error {
	if !IsYAML(path) && !IsTOML(path) {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	return nil
}

func decode(path string, data []byte, config *Config) error {
	var err error
	switch {
	case IsYAML(path):
		err = yaml.Unmarshal(data, config)
	case IsTOML(path):
		err = toml.Unmarshal(data, config)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrConfigFileParse, err)
	}
	return nil
}

func encode(path string, config Config) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case IsYAML(path):
		data, err = yaml.Marshal(config)
	case IsTOML(path):
		data, err = toml.Marshal(config)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return data, nil
}
