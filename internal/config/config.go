package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultMaxResults is the number of rows shown for a query
	DefaultMaxResults = 5

	// DefaultInputDelay is the pause before typing into the focused window
	DefaultInputDelay = 350 * time.Millisecond

	// MaxInputDelay is the largest accepted input delay
	MaxInputDelay = 2000 * time.Millisecond

	configRelPath = "quickpick/config.toml"
)

var (
	ErrInvalidDelay      = errors.New("delay must be 2000ms or less")
	ErrInvalidMaxResults = errors.New("max_results must be at least 1")
	ErrNoSinks           = errors.New("at least one sink is required")
)

// Config represents the application configuration
type Config struct {
	Version    int         `toml:"version"`
	MaxResults int         `toml:"max_results"`
	InputDelay int         `toml:"input_delay"` // milliseconds
	CorpusPath string      `toml:"corpus_path,omitempty"`
	Matcher    string      `toml:"matcher"`
	Sinks      []string    `toml:"sinks"`
	Keys       KeyBindings `toml:"keys"`
	UISettings UISettings  `toml:"ui"`
}

// KeyBindings lists the terminal keys for each navigation intent
type KeyBindings struct {
	Up     []string `toml:"up"`
	Down   []string `toml:"down"`
	Tab    []string `toml:"tab"`
	Commit []string `toml:"commit"`
	Cancel []string `toml:"cancel"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ShowScores  bool   `toml:"show_scores"`
	Placeholder string `toml:"placeholder"`
}

// Delay returns the input delay as a duration
func (c *Config) Delay() time.Duration {
	return time.Duration(c.InputDelay) * time.Millisecond
}

// Validate checks the configured limits
func (c *Config) Validate() error {
	if c.InputDelay < 0 || c.Delay() > MaxInputDelay {
		return fmt.Errorf("%w: got %dms", ErrInvalidDelay, c.InputDelay)
	}
	if c.MaxResults < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxResults, c.MaxResults)
	}
	if len(c.Sinks) == 0 {
		return ErrNoSinks
	}
	return nil
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a config service backed by the XDG config file
func NewConfigService() ConfigService {
	path, err := xdg.ConfigFile(configRelPath)
	if err != nil {
		// Fallback to the working directory
		path = filepath.Join(".", "quickpick.toml")
	}
	return &configService{filePath: path}
}

// NewConfigServiceAt creates a config service for a specific file
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

// Path returns the config file location
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, or defaults if there is none
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path.
// Keys missing from the file keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:    1,
		MaxResults: DefaultMaxResults,
		InputDelay: int(DefaultInputDelay / time.Millisecond),
		Matcher:    "subsequence",
		Sinks:      []string{"stdout"},
		Keys:       DefaultKeyBindings(),
		UISettings: UISettings{
			Placeholder: "type to search emoji",
		},
	}
}

// DefaultKeyBindings returns the default terminal keys
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Up:     []string{"up", "ctrl+p", "ctrl+k"},
		Down:   []string{"down", "ctrl+n", "ctrl+j"},
		Tab:    []string{"tab", "shift+tab"},
		Commit: []string{"enter"},
		Cancel: []string{"esc", "ctrl+c"},
	}
}

// LogPath returns the location of the log file
func LogPath() (string, error) {
	return xdg.StateFile("quickpick/quickpick.log")
}
