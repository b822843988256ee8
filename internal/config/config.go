// Package config loads the settings of the demo program.
//
// Settings are layered: built-in defaults, then a TOML or YAML file chosen
// by extension, then SDLDEMO_* environment variables (optionally read from
// a .env file), and the result is validated as a whole.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "SDLDEMO_"

type Config struct {
	Window  WindowConfig  `toml:"window" yaml:"window"`
	Video   VideoConfig   `toml:"video" yaml:"video"`
	Run     RunConfig     `toml:"run" yaml:"run"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
}

type WindowConfig struct {
	Title      string `toml:"title" yaml:"title"`
	Width      uint32 `toml:"width" yaml:"width"`
	Height     uint32 `toml:"height" yaml:"height"`
	Fullscreen bool   `toml:"fullscreen" yaml:"fullscreen"`
	Resizable  bool   `toml:"resizable" yaml:"resizable"`
	Borderless bool   `toml:"borderless" yaml:"borderless"`
	DoubleBuf  bool   `toml:"double_buffer" yaml:"double_buffer"`
}

// VideoConfig holds hints read by the native library from its environment.
type VideoConfig struct {
	Driver   string `toml:"driver" yaml:"driver"`
	Centered bool   `toml:"centered" yaml:"centered"`
}

type RunConfig struct {
	Framerate uint32 `toml:"framerate" yaml:"framerate"`
	// Seconds stops the event loop after that long; 0 runs until Quit.
	Seconds int `toml:"seconds" yaml:"seconds"`
}

type LoggingConfig struct {
	Level       string `toml:"level" yaml:"level"`
	FilePath    string `toml:"file" yaml:"file"`
	Development bool   `toml:"development" yaml:"development"`
}

// Default returns the settings used when nothing else is given.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "sdldemo",
			Width:  800,
			Height: 600,
		},
		Run: RunConfig{
			Framerate: 30,
			Seconds:   5,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads path on top of the defaults, applies environment overrides and
// validates. An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := loadFile(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validation failed")
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, errors.Wrap(err, "read config")
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.Wrap(err, "decode TOML")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(err, "decode YAML")
		}
	default:
		return nil, errors.Errorf("unsupported config format %q", ext)
	}
	return cfg, nil
}

// LoadEnvFile adds the variables of a .env file to the process environment
// without overriding ones already set. A missing file is not an error.
func LoadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return errors.Wrap(godotenv.Load(path), "load env file")
}

// ApplyEnvOverrides copies SDLDEMO_* variables over the loaded values.
func (c *Config) ApplyEnvOverrides() error {
	if v := os.Getenv(EnvPrefix + "TITLE"); v != "" {
		c.Window.Title = v
	}
	if err := envUint(EnvPrefix+"WIDTH", &c.Window.Width); err != nil {
		return err
	}
	if err := envUint(EnvPrefix+"HEIGHT", &c.Window.Height); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"FULLSCREEN", &c.Window.Fullscreen); err != nil {
		return err
	}
	if err := envBool(EnvPrefix+"RESIZABLE", &c.Window.Resizable); err != nil {
		return err
	}
	if v := os.Getenv(EnvPrefix + "VIDEO_DRIVER"); v != "" {
		c.Video.Driver = v
	}
	if err := envUint(EnvPrefix+"FRAMERATE", &c.Run.Framerate); err != nil {
		return err
	}
	if v := os.Getenv(EnvPrefix + "SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.Wrapf(err, "%sSECONDS", EnvPrefix)
		}
		c.Run.Seconds = n
	}
	if v := os.Getenv(EnvPrefix + "LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvPrefix + "LOG_FILE"); v != "" {
		c.Logging.FilePath = v
	}
	return nil
}

func envUint(name string, dst *uint32) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseUint(v, 10, 32)
	if err != nil {
		return errors.Wrap(err, name)
	}
	*dst = uint32(n)
	return nil
}

func envBool(name string, dst *bool) error {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return errors.Wrap(err, name)
	}
	*dst = b
	return nil
}

var levels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks values the library would otherwise reject later.
func (c *Config) Validate() error {
	if c.Window.Title == "" {
		return errors.New("window.title is empty")
	}
	if strings.ContainsRune(c.Window.Title, 0) {
		return errors.New("window.title contains a NUL byte")
	}
	if c.Window.Width == 0 || c.Window.Height == 0 {
		return errors.Errorf("window size %dx%d has a zero side", c.Window.Width, c.Window.Height)
	}
	if c.Run.Framerate < 1 || c.Run.Framerate > 200 {
		return errors.Errorf("run.framerate %d outside [1,200]", c.Run.Framerate)
	}
	if c.Run.Seconds < 0 {
		return errors.Errorf("run.seconds %d is negative", c.Run.Seconds)
	}
	if !levels[strings.ToLower(c.Logging.Level)] {
		return errors.Errorf("unknown logging.level %q", c.Logging.Level)
	}
	return nil
}

// ExportHints publishes the video settings as the SDL_* environment
// variables the native library reads during video initialization.
func (c *Config) ExportHints() error {
	if c.Video.Driver != "" {
		if err := os.Setenv("SDL_VIDEODRIVER", c.Video.Driver); err != nil {
			return errors.Wrap(err, "set SDL_VIDEODRIVER")
		}
	}
	if c.Video.Centered {
		if err := os.Setenv("SDL_VIDEO_CENTERED", "1"); err != nil {
			return errors.Wrap(err, "set SDL_VIDEO_CENTERED")
		}
	}
	return nil
}
