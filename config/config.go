// Package config loads pathtrace settings from defaults, a YAML file, a
// .env file and the process environment, and turns them into walker options.
//
// Precedence, lowest first: Default(), Load(path), ApplyEnv(...). Command
// line flags are applied by the caller on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/asciipath/walker"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Environment variables read by ApplyEnv.
const (
	EnvMaxSteps       = "PATHTRACE_MAX_STEPS"
	EnvCycleDetection = "PATHTRACE_CYCLE_DETECTION"
	EnvFormat         = "PATHTRACE_FORMAT"
	EnvParallel       = "PATHTRACE_PARALLEL"
)

var (
	// ErrUnknownFormat indicates an output format other than text or json.
	ErrUnknownFormat = errors.New("config: unknown output format")
	// ErrInvalidMarker indicates a marker that is not exactly one character.
	ErrInvalidMarker = errors.New("config: marker must be a single character")
	// ErrInvalidValue indicates a numeric or boolean setting that does not parse
	// or is out of range.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Markers holds the marker characters as one-character strings.
type Markers struct {
	Entry    string `yaml:"entry"`
	Stop     string `yaml:"stop"`
	Junction string `yaml:"junction"`
	Blank    string `yaml:"blank"`
}

// Config is the full pathtrace configuration.
type Config struct {
	MaxSteps       int     `yaml:"max_steps"`
	CycleDetection bool    `yaml:"cycle_detection"`
	Format         string  `yaml:"format"`
	Parallel       int     `yaml:"parallel"`
	Markers        Markers `yaml:"markers"`
}

// Default returns the built-in settings: unlimited steps, cycle detection
// on, text output, no limit on parallel walks and the default vocabulary.
func Default() Config {
	v := walker.DefaultVocabulary()

	return Config{
		MaxSteps:       -1,
		CycleDetection: true,
		Format:         FormatText,
		Parallel:       0,
		Markers: Markers{
			Entry:    string(v.Entry),
			Stop:     string(v.Stop),
			Junction: string(v.Junction),
			Blank:    string(v.Blank),
		},
	}
}

// Load reads the YAML file at path over Default(). Unknown keys are errors.
func Load(path string) (Config, error) {
	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		return cfg, fmt.Errorf("config: open %s: %w", path, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("config: decode %s: %w", path, err)
	}

	return cfg, cfg.Validate()
}

// LoadDotEnv loads KEY=VALUE pairs from each existing file into the process
// environment. Missing files are skipped; variables already set win.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("config: load %s: %w", p, err)
		}
	}

	return nil
}

// ApplyEnv overrides fields from variables found by lookup (os.LookupEnv in
// production).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvMaxSteps); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvMaxSteps, v, ErrInvalidValue)
		}
		c.MaxSteps = n
	}
	if v, ok := lookup(EnvCycleDetection); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvCycleDetection, v, ErrInvalidValue)
		}
		c.CycleDetection = b
	}
	if v, ok := lookup(EnvFormat); ok {
		c.Format = v
	}
	if v, ok := lookup(EnvParallel); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", EnvParallel, v, ErrInvalidValue)
		}
		c.Parallel = n
	}

	return c.Validate()
}

// Validate checks format, step bound and markers.
func (c Config) Validate() error {
	if c.Format != FormatText && c.Format != FormatJSON {
		return fmt.Errorf("%q: %w", c.Format, ErrUnknownFormat)
	}
	if c.MaxSteps < -1 {
		return fmt.Errorf("max_steps=%d (must be >= -1): %w", c.MaxSteps, ErrInvalidValue)
	}
	_, err := c.Vocabulary()

	return err
}

// Vocabulary converts the markers into a walker.Vocabulary.
func (c Config) Vocabulary() (walker.Vocabulary, error) {
	var v walker.Vocabulary
	fields := [...]struct {
		name string
		s    string
		dst  *rune
	}{
		{"entry", c.Markers.Entry, &v.Entry},
		{"stop", c.Markers.Stop, &v.Stop},
		{"junction", c.Markers.Junction, &v.Junction},
		{"blank", c.Markers.Blank, &v.Blank},
	}
	for _, f := range fields {
		if utf8.RuneCountInString(f.s) != 1 {
			return v, fmt.Errorf("%s marker %q: %w", f.name, f.s, ErrInvalidMarker)
		}
		r, _ := utf8.DecodeRuneInString(f.s)
		*f.dst = r
	}
	if err := v.Validate(); err != nil {
		return v, fmt.Errorf("config: %w", err)
	}

	return v, nil
}

// Options checks the markers and step bound, then translates c into walker
// options.
func (c Config) Options() ([]walker.Option, error) {
	v, err := c.Vocabulary()
	if err != nil {
		return nil, err
	}
	if c.MaxSteps < -1 {
		return nil, fmt.Errorf("max_steps=%d (must be >= -1): %w", c.MaxSteps, ErrInvalidValue)
	}

	return []walker.Option{
		walker.WithMaxSteps(c.MaxSteps),
		walker.WithCycleDetection(c.CycleDetection),
		walker.WithVocabulary(v),
	}, nil
}
