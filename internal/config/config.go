package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/pelletier/go-toml"

	"github.com/MinaswanNakamoto/pipetext/pkg/log"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/emoji"
	"github.com/MinaswanNakamoto/pipetext/pkg/pipetext/variables"
)

// EnvConfigPath overrides the default config location
const EnvConfigPath = "PIPETEXT_CONFIG"

// ErrNoConfig is returned when a config file does not exist
var ErrNoConfig = errors.New("config file does not exist")

// Config is the main config struct
type Config struct {
	OriginalPath string `toml:"-"`

	Render    Render            `toml:"render"`
	Log       Log               `toml:"log"`
	Variables map[string]string `toml:"variables"`
	Emoji     []emoji.Entry     `toml:"emoji"`
}

// Render holds the settings that become pipetext.Options
type Render struct {
	BoxMode            bool `toml:"box_mode"`
	AmpersandMode      bool `toml:"ampersand_mode"`
	Sleep              bool `toml:"sleep"`
	MaxDepth           int  `toml:"max_depth"`
	MaxRepeat          int  `toml:"max_repeat"`
	MaxNested          int  `toml:"max_nested"`
	CaseSensitiveEmoji bool `toml:"case_sensitive_emoji"`
}

// Log configures the logger
type Log struct {
	Level      string `toml:"level"`
	Timestamps bool   `toml:"timestamps"`
}

// Default returns the config used when there is no config file
func Default() *Config {
	return &Config{
		Render: Render{
			BoxMode:   true,
			Sleep:     true,
			MaxDepth:  pipetext.DefaultMaxDepth,
			MaxRepeat: pipetext.DefaultMaxRepeat,
			MaxNested: pipetext.DefaultMaxNested,
		},
		Log:    Log{Level: "info"},
	}
}

// DefaultPath is where the config is looked for when no path is given
func DefaultPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	return filepath.Join(xdg.ConfigHome, "pipetext", "config.toml")
}

// GetConfig fetches the config located at the given path
func GetConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoConfig, path)
	}

	tree, err := toml.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read or parse config file: %w", err)
	}

	out, err := fromTree(tree)
	if err != nil {
		return nil, err
	}

	out.OriginalPath = path

	return out, nil
}

// FromString parses a config from TOML source
func FromString(data string) (*Config, error) {
	tree, err := toml.Load(data)
	if err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}

	return fromTree(tree)
}

// Find loads the config at path. An empty path means DefaultPath, and there a missing file just gives the defaults
func Find(path string) (*Config, error) {
	if path != "" {
		return GetConfig(path)
	}

	out, err := GetConfig(DefaultPath())
	if errors.Is(err, ErrNoConfig) {
		return Default(), nil
	}

	return out, err
}

func fromTree(tree *toml.Tree) (*Config, error) {
	out, err := makeConfig(tree)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := validateConfig(out); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return out, nil
}

// makeConfig unmarshals tree, then fills in defaults for anything the tree does not set. Unmarshal cannot tell an
// unset bool from false
func makeConfig(tree *toml.Tree) (*Config, error) {
	out := new(Config)
	if err := tree.Unmarshal(out); err != nil {
		return nil, err
	}

	def := Default()

	if !tree.Has("render.box_mode") {
		out.Render.BoxMode = def.Render.BoxMode
	}

	if !tree.Has("render.sleep") {
		out.Render.Sleep = def.Render.Sleep
	}

	if !tree.Has("render.max_depth") {
		out.Render.MaxDepth = def.Render.MaxDepth
	}

	if !tree.Has("render.max_repeat") {
		out.Render.MaxRepeat = def.Render.MaxRepeat
	}

	if !tree.Has("render.max_nested") {
		out.Render.MaxNested = def.Render.MaxNested
	}

	if !tree.Has("log.level") {
		out.Log.Level = def.Log.Level
	}

	return out, nil
}

func validateConfig(inConf *Config) error {
	if _, err := log.ParseLevel(inConf.Log.Level); err != nil {
		return err
	}

	if inConf.Render.MaxDepth < 1 {
		return fmt.Errorf("max_depth must be at least 1, not %d", inConf.Render.MaxDepth)
	}

	if inConf.Render.MaxRepeat < 1 {
		return fmt.Errorf("max_repeat must be at least 1, not %d", inConf.Render.MaxRepeat)
	}

	if inConf.Render.MaxNested < 1 {
		return fmt.Errorf("max_nested must be at least 1, not %d", inConf.Render.MaxNested)
	}

	for name := range inConf.Variables {
		if name == "" || strings.ContainsAny(name, "=)") {
			return fmt.Errorf("invalid variable name %q", name)
		}
	}

	for i, e := range inConf.Emoji {
		if e.Name == "" || e.Replacement == "" {
			return fmt.Errorf("emoji entry %d needs both a name and a replacement", i)
		}
	}

	return nil
}

// LogLevel returns the configured minimum log level
func (c *Config) LogLevel() int {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.INFO
	}

	return level
}

// LogFlags returns the pkg/log flags the config asks for
func (c *Config) LogFlags() int {
	if c.Log.Timestamps {
		return log.FTimestamp
	}

	return 0
}

// Apply copies the render settings onto opts. Disabling sleep removes opts.Sleep entirely
func (c *Config) Apply(opts *pipetext.Options) {
	opts.BoxMode = c.Render.BoxMode
	opts.AmpersandMode = c.Render.AmpersandMode
	opts.MaxDepth = c.Render.MaxDepth
	opts.MaxRepeat = c.Render.MaxRepeat
	opts.MaxNested = c.Render.MaxNested
	opts.CaseSensitiveEmoji = c.Render.CaseSensitiveEmoji

	if !c.Render.Sleep {
		opts.Sleep = nil
	}

	if len(c.Emoji) > 0 {
		opts.Emoji = opts.Emoji.Extend(c.Emoji...)
	}
}

// Preset sets the configured variables on store
func (c *Config) Preset(store *variables.Store) {
	for name, value := range c.Variables {
		store.Set(name, value)
	}
}
