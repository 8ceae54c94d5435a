package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/panyam/forest/runtime"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigFile = "forest.yaml"
	ConfigEnvVar      = "FOREST_CONFIG"
	ColorEnvVar       = "FOREST_COLOR"
	StrictEnvVar      = "FOREST_STRICT"
)

// Color modes accepted by --color and the `color` config key.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the settings shared by all commands.  Later sources
// override earlier ones: defaults, environment, config file, flags.
type Config struct {
	LogLevel string `yaml:"log_level"`
	Color    string `yaml:"color"`
	Strict   bool   `yaml:"strict"`
}

// fileConfig tells apart keys that are absent from keys set to their
// zero value.
type fileConfig struct {
	LogLevel *string `yaml:"log_level"`
	Color    *string `yaml:"color"`
	Strict   *bool   `yaml:"strict"`
}

func DefaultConfig() Config {
	return Config{LogLevel: "warn", Color: ColorAuto}
}

// FromEnv overlays FOREST_LOG_LEVEL, FOREST_COLOR and FOREST_STRICT.
func (c *Config) FromEnv() error {
	if v := os.Getenv(runtime.LogLevelEnvVar); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(ColorEnvVar); v != "" {
		c.Color = v
	}
	if v := os.Getenv(StrictEnvVar); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", StrictEnvVar, v, err)
		}
		c.Strict = strict
	}
	return nil
}

// LoadFile overlays the keys present in a YAML config file.  A missing
// file is only an error when required is set.  Unknown keys are rejected.
func (c *Config) LoadFile(path string, required bool) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("opening config file: %w", err)
	}
	defer f.Close()
	return c.decode(f, path)
}

func (c *Config) decode(r io.Reader, name string) error {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("parsing config file %s: %w", name, err)
	}
	if fc.LogLevel != nil {
		c.LogLevel = *fc.LogLevel
	}
	if fc.Color != nil {
		c.Color = *fc.Color
	}
	if fc.Strict != nil {
		c.Strict = *fc.Strict
	}
	return nil
}

// Validate checks that every setting holds an accepted value.
func (c *Config) Validate() error {
	if _, err := runtime.ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	switch strings.ToLower(c.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color mode %q, expected one of auto, always, never", c.Color)
	}
	return nil
}

// Level returns the parsed log level.  Call Validate first.
func (c *Config) Level() runtime.LogLevel {
	level, _ := runtime.ParseLogLevel(c.LogLevel)
	return level
}

// UseColor decides whether output written to w should be colored.  In auto
// mode only terminals get color, and NO_COLOR turns it off.
func (c *Config) UseColor(w io.Writer) bool {
	switch strings.ToLower(c.Color) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
