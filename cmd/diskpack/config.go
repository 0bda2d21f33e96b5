package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/hupe1980/diskpack"
	"github.com/hupe1980/diskpack/codec"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration shared by all subcommands.
type Config struct {
	Search SearchConfig `yaml:"search"`
	Log    LogConfig    `yaml:"log"`
	Render RenderConfig `yaml:"render"`
	Minio  MinioConfig  `yaml:"minio"`
	S3     S3Config     `yaml:"s3"`
}

type SearchConfig struct {
	Angles      int `yaml:"angles"`
	Parallelism int `yaml:"parallelism"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type RenderConfig struct {
	ImageSize int `yaml:"image_size"`
	// Codec names the JSON codec for solution documents.
	Codec string `yaml:"codec"`
	// Indent is the number of spaces per nesting level in solution
	// documents; 0 writes compact JSON.
	Indent int `yaml:"indent"`
}

type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Secure    bool   `yaml:"secure"`
}

type S3Config struct {
	Region string `yaml:"region"`
}

func defaultConfig() Config {
	return Config{
		Search: SearchConfig{
			Angles:      diskpack.DefaultAngleCount,
			Parallelism: runtime.GOMAXPROCS(0),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Render: RenderConfig{
			ImageSize: 1000,
			Codec:     codec.GoJSONName,
		},
	}
}

// loadConfig reads path over the defaults. An empty path yields the
// defaults. MINIO_* variables fill minio settings the file leaves empty.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	}
	cfg.applyEnv(os.Getenv)
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) {
	setIfEmpty := func(dst *string, key string) {
		if *dst == "" {
			*dst = getenv(key)
		}
	}
	setIfEmpty(&c.Minio.Endpoint, "MINIO_ENDPOINT")
	setIfEmpty(&c.Minio.AccessKey, "MINIO_ACCESS_KEY")
	setIfEmpty(&c.Minio.SecretKey, "MINIO_SECRET_KEY")
	if getenv("MINIO_SECURE") == "true" {
		c.Minio.Secure = true
	}
}

func (c *Config) validate() error {
	if c.Search.Angles < 1 {
		return fmt.Errorf("search.angles must be at least 1, got %d", c.Search.Angles)
	}
	if c.Search.Parallelism < 1 {
		return fmt.Errorf("search.parallelism must be at least 1, got %d", c.Search.Parallelism)
	}
	if c.Render.ImageSize < 1 {
		return fmt.Errorf("render.image_size must be positive, got %d", c.Render.ImageSize)
	}
	if c.Render.Indent < 0 || c.Render.Indent > 8 {
		return fmt.Errorf("render.indent must be between 0 and 8, got %d", c.Render.Indent)
	}
	if _, err := c.documentCodec(); err != nil {
		return fmt.Errorf("render.codec: %w", err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// documentCodec returns the codec solution documents are written with.
func (c *Config) documentCodec() (codec.Codec, error) {
	return codec.New(c.Render.Codec, strings.Repeat(" ", c.Render.Indent))
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// newLogger builds the logger described by c writing to w.
func (c *Config) newLogger(w io.Writer) *diskpack.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.ToLower(c.Log.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return diskpack.NewLogger(h)
}
