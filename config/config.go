// Package config loads the hillclimb YAML configuration: the marker table
// used to parse maps, the named queries the CLI can run, and the locale used
// for user-facing messages.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sort"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/hillclimb"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/traverse"
)

// EnvPath names the environment variable holding the default config path.
const EnvPath = "HILLCLIMB_CONFIG"

// ErrInvalidConfig indicates a config file that parses but cannot be used.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all CLI configuration.
type Config struct {
	Markers       map[string]string `yaml:"markers"`
	Locale        Locale            `yaml:"locale"`
	MaxExpansions int               `yaml:"max_expansions"`
	Queries       []QuerySpec       `yaml:"queries"`
}

// Locale selects a gettext catalogue for CLI messages. An empty Dir keeps the
// built-in English strings.
type Locale struct {
	Dir    string `yaml:"dir"`
	Lang   string `yaml:"lang"`
	Domain string `yaml:"domain"`
}

// QuerySpec is the YAML form of a hillclimb.Query.
type QuerySpec struct {
	Name    string     `yaml:"name"`
	Mode    string     `yaml:"mode"`
	Start   string     `yaml:"start"`
	Target  TargetSpec `yaml:"target"`
	Uniform bool       `yaml:"uniform"`
}

// TargetSpec sets exactly one of Marker or Elevation.
type TargetSpec struct {
	Marker    string `yaml:"marker,omitempty"`
	Elevation string `yaml:"elevation,omitempty"`
}

// Default returns the configuration matching the built-in presets:
// "summit" (part 1) and "trailhead" (part 2).
func Default() *Config {
	return &Config{
		Markers: map[string]string{"S": "a", "E": "z"},
		Locale:  Locale{Lang: "en_US", Domain: "hillclimb"},
		Queries: defaultQueries(),
	}
}

func defaultQueries() []QuerySpec {
	return []QuerySpec{
		{Name: "summit", Mode: "ascent", Start: "S", Target: TargetSpec{Marker: "E"}},
		{Name: "trailhead", Mode: "descent", Start: "E", Target: TargetSpec{Elevation: "a"}},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// LoadEnv loads the file named by EnvPath, or returns Default when unset.
func LoadEnv() (*Config, error) {
	path := os.Getenv(EnvPath)
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// Parse decodes YAML on top of Default. Unknown fields are rejected.
// Sections left out keep their defaults; an empty document yields Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if len(bytes.TrimSpace(data)) == 0 {
		return cfg, nil
	}

	// decode into a blank value so explicit lists replace, not extend, the defaults
	var raw Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}

	if raw.Markers != nil {
		cfg.Markers = raw.Markers
	}
	if raw.Locale.Dir != "" {
		cfg.Locale.Dir = raw.Locale.Dir
	}
	if raw.Locale.Lang != "" {
		cfg.Locale.Lang = raw.Locale.Lang
	}
	if raw.Locale.Domain != "" {
		cfg.Locale.Domain = raw.Locale.Domain
	}
	if raw.Queries != nil {
		cfg.Queries = raw.Queries
	}
	cfg.MaxExpansions = raw.MaxExpansions

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every marker and query.
func (c *Config) Validate() error {
	if _, err := c.markerTable(); err != nil {
		return err
	}
	if c.MaxExpansions < 0 {
		return fmt.Errorf("%w: max_expansions %d", ErrInvalidConfig, c.MaxExpansions)
	}
	if len(c.Queries) == 0 {
		return fmt.Errorf("%w: no queries", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Queries))
	for i, qs := range c.Queries {
		if qs.Name == "" {
			return fmt.Errorf("%w: queries[%d]: empty name", ErrInvalidConfig, i)
		}
		if seen[qs.Name] {
			return fmt.Errorf("%w: queries[%d]: duplicate name %q", ErrInvalidConfig, i, qs.Name)
		}
		seen[qs.Name] = true
		if _, err := qs.query(); err != nil {
			return fmt.Errorf("%w: queries[%d] %q: %v", ErrInvalidConfig, i, qs.Name, err)
		}
	}

	return nil
}

// Query returns the named query with the config-wide expansion cap applied.
func (c *Config) Query(name string) (hillclimb.Query, error) {
	for _, qs := range c.Queries {
		if qs.Name != name {
			continue
		}
		q, err := qs.query()
		if err != nil {
			return hillclimb.Query{}, fmt.Errorf("%w: query %q: %v", ErrInvalidConfig, name, err)
		}
		q.MaxExpansions = c.MaxExpansions

		return q, nil
	}

	return hillclimb.Query{}, fmt.Errorf("%w: unknown query %q (have %v)", ErrInvalidConfig, name, c.QueryNames())
}

// QueryNames lists the configured query names in file order.
func (c *Config) QueryNames() []string {
	names := make([]string, len(c.Queries))
	for i, qs := range c.Queries {
		names[i] = qs.Name
	}

	return names
}

// HeightmapOptions returns the Parse options that install the marker table.
func (c *Config) HeightmapOptions() ([]heightmap.Option, error) {
	table, err := c.markerTable()
	if err != nil {
		return nil, err
	}

	return []heightmap.Option{heightmap.WithMarkers(table)}, nil
}

func (c *Config) markerTable() (map[rune]heightmap.Elevation, error) {
	keys := make([]string, 0, len(c.Markers))
	for k := range c.Markers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := make(map[rune]heightmap.Elevation, len(keys))
	for _, k := range keys {
		r, err := single(k)
		if err != nil {
			return nil, fmt.Errorf("%w: marker %q: %v", ErrInvalidConfig, k, err)
		}
		if _, letter := heightmap.ElevationOf(r); letter {
			return nil, fmt.Errorf("%w: marker %q is an elevation letter", ErrInvalidConfig, k)
		}
		e, err := elevation(c.Markers[k])
		if err != nil {
			return nil, fmt.Errorf("%w: marker %q: %v", ErrInvalidConfig, k, err)
		}
		table[r] = e
	}

	return table, nil
}

func (qs QuerySpec) query() (hillclimb.Query, error) {
	mode, err := traverse.ParseMode(qs.Mode)
	if err != nil {
		return hillclimb.Query{}, err
	}
	start, err := single(qs.Start)
	if err != nil {
		return hillclimb.Query{}, fmt.Errorf("start: %v", err)
	}

	q := hillclimb.Query{Mode: mode, Start: start, Uniform: qs.Uniform}
	switch {
	case qs.Target.Marker != "" && qs.Target.Elevation != "":
		return hillclimb.Query{}, errors.New("target: set marker or elevation, not both")
	case qs.Target.Marker != "":
		r, err := single(qs.Target.Marker)
		if err != nil {
			return hillclimb.Query{}, fmt.Errorf("target marker: %v", err)
		}
		q.Target = hillclimb.AtMarker(r)
	case qs.Target.Elevation != "":
		e, err := elevation(qs.Target.Elevation)
		if err != nil {
			return hillclimb.Query{}, fmt.Errorf("target elevation: %v", err)
		}
		q.Target = hillclimb.AtElevation(e)
	default:
		return hillclimb.Query{}, errors.New("target: missing")
	}

	return q, q.Validate()
}

// single decodes a string holding exactly one rune.
func single(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)

	return r, nil
}

// elevation decodes a letter 'a'…'z'.
func elevation(s string) (heightmap.Elevation, error) {
	r, err := single(s)
	if err != nil {
		return 0, err
	}
	e, ok := heightmap.ElevationOf(r)
	if !ok {
		return 0, fmt.Errorf("elevation %q is not a letter a-z", s)
	}

	return e, nil
}
