package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/backend"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/core"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/formatter"
	"github.com/RIT-Landsat-Field-Radiometers/shared-utils/sink"
)

// Config is the logging pipeline description. Zero values mean "use
// the default"; Validate fills them in.
type Config struct {
	// Default is the fallback minimum level name for categories
	// without an override (default: "info").
	Default string `yaml:"default"`
	// Categories maps category names to minimum level names.
	Categories map[string]string `yaml:"categories"`
	// Sinks lists the output destinations (default: one console sink).
	Sinks []SinkConfig `yaml:"sinks"`
}

// SinkConfig describes one output destination.
type SinkConfig struct {
	// Type is "console" or "file" (default: "console").
	Type string `yaml:"type"`
	// Format is "text" or "json" (default: "text").
	Format string `yaml:"format"`
	// TimestampFormat overrides the formatter's time layout.
	TimestampFormat string `yaml:"timestamp_format"`
	// Path is the log file path. Required for file sinks.
	Path string `yaml:"path"`
	// Color is "auto", "always" or "never" (console only, default:
	// "auto").
	Color string `yaml:"color"`
	// Async enables the buffered queue.
	Async bool `yaml:"async"`
	// BufferSize is the async queue capacity.
	BufferSize int `yaml:"buffer_size"`
	// BlockTimeout bounds blocking enqueues, as a duration string.
	BlockTimeout string `yaml:"block_timeout"`
	// MaxSize rotates the file after this many bytes (file only).
	MaxSize int64 `yaml:"max_size"`
	// MaxBackups prunes rotated files beyond this count (file only).
	MaxBackups int `yaml:"max_backups"`
	// RotateInterval rotates on a schedule, as a duration string
	// (file only).
	RotateInterval string `yaml:"rotate_interval"`
	// MaxAge rotates when the file outlives this duration (file only).
	MaxAge string `yaml:"max_age"`
}

// DefaultConfig returns the configuration used when no document is
// given: everything at info, one text console sink.
func DefaultConfig() Config {
	return Config{
		Default:    core.DefaultLevel.String(),
		Categories: make(map[string]string),
		Sinks: []SinkConfig{
			{Type: "console", Format: "text", Color: "auto"},
		},
	}
}

// Load reads a YAML document, applies environment overrides and
// validates the result. A missing file is not an error; the defaults
// plus environment are used instead.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if path = strings.TrimSpace(path); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		} else {
			// A document that names sinks replaces the default set
			cfg.Sinks = nil
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal config: %w", err)
			}
			if len(cfg.Sinks) == 0 {
				cfg.Sinks = DefaultConfig().Sinks
			}
		}
	}

	cfg.FromEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// FromEnv applies environment variable overrides: LOG_DEFAULT_LEVEL
// for the fallback minimum, LOG_LEVELS as a comma list of
// category=level pairs, and LOG_FORMAT for every sink's format.
// Values are validated later by Validate.
func (c *Config) FromEnv() {
	if v := strings.TrimSpace(os.Getenv("LOG_DEFAULT_LEVEL")); v != "" {
		c.Default = v
	}
	if v := strings.TrimSpace(os.Getenv("LOG_LEVELS")); v != "" {
		if c.Categories == nil {
			c.Categories = make(map[string]string)
		}
		for _, pair := range strings.Split(v, ",") {
			pair = strings.TrimSpace(pair)
			if pair == "" {
				continue
			}
			// A pair without '=' keeps its empty level so Validate
			// reports the typo instead of dropping it
			name, level, _ := strings.Cut(pair, "=")
			c.Categories[strings.TrimSpace(name)] = strings.TrimSpace(level)
		}
	}
	if v := strings.TrimSpace(os.Getenv("LOG_FORMAT")); v != "" {
		for i := range c.Sinks {
			c.Sinks[i].Format = v
		}
	}
}

// Validate checks the configuration semantically and fills defaulted
// fields in place.
func (c *Config) Validate() error {
	if c.Default == "" {
		c.Default = core.DefaultLevel.String()
	}
	if _, ok := core.ParseLevel(c.Default); !ok {
		return fmt.Errorf("unknown default level %q", c.Default)
	}

	for category, level := range c.Categories {
		if strings.TrimSpace(category) == "" {
			return fmt.Errorf("empty category name")
		}
		if _, ok := core.ParseLevel(level); !ok {
			return fmt.Errorf("category %q: unknown level %q", category, level)
		}
	}

	if len(c.Sinks) == 0 {
		c.Sinks = DefaultConfig().Sinks
	}
	for i := range c.Sinks {
		if err := c.Sinks[i].validate(); err != nil {
			return fmt.Errorf("sink %d: %w", i, err)
		}
	}
	return nil
}

func (s *SinkConfig) validate() error {
	switch s.Type {
	case "":
		s.Type = "console"
	case "console", "file":
	default:
		return fmt.Errorf("unknown sink type %q", s.Type)
	}

	switch s.Format {
	case "":
		s.Format = "text"
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", s.Format)
	}

	if s.Type == "file" && strings.TrimSpace(s.Path) == "" {
		return fmt.Errorf("file sink requires a path")
	}

	if s.Type == "console" {
		switch s.Color {
		case "":
			s.Color = "auto"
		case "auto", "always", "never":
		default:
			return fmt.Errorf("unknown color mode %q", s.Color)
		}
	}

	if s.BufferSize < 0 {
		return fmt.Errorf("negative buffer_size %d", s.BufferSize)
	}
	if s.MaxSize < 0 {
		return fmt.Errorf("negative max_size %d", s.MaxSize)
	}
	if s.MaxBackups < 0 {
		return fmt.Errorf("negative max_backups %d", s.MaxBackups)
	}

	for _, d := range []struct {
		name  string
		value string
	}{
		{"block_timeout", s.BlockTimeout},
		{"rotate_interval", s.RotateInterval},
		{"max_age", s.MaxAge},
	} {
		if d.value == "" {
			continue
		}
		parsed, err := time.ParseDuration(d.value)
		if err != nil {
			return fmt.Errorf("%s: %w", d.name, err)
		}
		if parsed < 0 {
			return fmt.Errorf("negative %s %q", d.name, d.value)
		}
	}
	return nil
}

// Build assembles the configured pipeline. It returns the backend
// ready for backend.SetDefault, plus a close function that flushes
// and closes every sink it created. The configuration must have been
// validated; Load does this.
func (c Config) Build() (backend.Backend, func() error, error) {
	levels := c.buildLevels()

	backends := make([]backend.Backend, 0, len(c.Sinks))
	for i, sc := range c.Sinks {
		b, err := sc.build(levels)
		if err != nil {
			// Unwind sinks already opened
			for _, prev := range backends {
				if closer, ok := prev.(backend.Closer); ok {
					closer.Close()
				}
			}
			return nil, nil, fmt.Errorf("sink %d: %w", i, err)
		}
		backends = append(backends, b)
	}

	var built backend.Backend
	if len(backends) == 1 {
		built = backends[0]
	} else {
		built = sink.NewMulti(backends...)
	}

	closeFn := func() error {
		if closer, ok := built.(backend.Closer); ok {
			return closer.Close()
		}
		return nil
	}
	return built, closeFn, nil
}

// buildLevels converts the level names into the policy store shared
// by every sink. Names were checked by Validate; unknown ones fall
// back rather than fail here.
func (c Config) buildLevels() *backend.LevelMap {
	def, _ := core.ParseLevel(c.Default)
	levels := backend.NewLevelMap(def)
	for category, name := range c.Categories {
		level, ok := core.ParseLevel(name)
		if !ok {
			continue
		}
		levels.SetCategory(category, level)
	}
	return levels
}

func (s SinkConfig) build(levels *backend.LevelMap) (backend.Backend, error) {
	var f formatter.Formatter
	switch s.Format {
	case "json":
		f = formatter.NewJSONFormatter(formatter.Config{TimestampFormat: s.TimestampFormat})
	default:
		f = formatter.NewTextFormatter(formatter.Config{TimestampFormat: s.TimestampFormat})
	}

	blockTimeout, _ := time.ParseDuration(s.BlockTimeout)

	if s.Type == "file" {
		rotateInterval, _ := time.ParseDuration(s.RotateInterval)
		maxAge, _ := time.ParseDuration(s.MaxAge)
		return sink.NewFile(sink.FileConfig{
			Filename:       s.Path,
			Formatter:      f,
			Levels:         levels,
			Async:          s.Async,
			BufferSize:     s.BufferSize,
			BlockTimeout:   blockTimeout,
			MaxSize:        s.MaxSize,
			MaxAge:         maxAge,
			MaxBackups:     s.MaxBackups,
			RotateInterval: rotateInterval,
		})
	}

	var color sink.ColorMode
	switch s.Color {
	case "always":
		color = sink.ColorAlways
	case "never":
		color = sink.ColorNever
	default:
		color = sink.ColorAuto
	}
	return sink.NewStream(sink.StreamConfig{
		Formatter:    f,
		Levels:       levels,
		Async:        s.Async,
		BufferSize:   s.BufferSize,
		BlockTimeout: blockTimeout,
		Color:        color,
	}), nil
}
