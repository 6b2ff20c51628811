package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Server contains the HTTP listener configuration.
type Server struct {
	Bind           string `toml:"bind"`
	MaxUploadBytes int64  `toml:"max_upload_bytes"`
}

// Processing contains pipeline defaults applied when a request does not
// choose its own.
type Processing struct {
	TailSeconds       int    `toml:"tail_seconds"`
	DefaultOutputName string `toml:"default_output_name"`
}

// Config is the root configuration document.
type Config struct {
	Server     Server     `toml:"server"`
	Processing Processing `toml:"processing"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Server: Server{
			Bind:           "0.0.0.0:5000",
			MaxUploadBytes: 8 << 20,
		},
		Processing: Processing{
			TailSeconds:       2,
			DefaultOutputName: "processed_subtitles.srt",
		},
	}
}

// Load reads the TOML file at path, layered over the defaults. A missing
// file is not an error; the defaults are returned unchanged.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the server cannot run with.
func (c Config) Validate() error {
	if c.Server.Bind == "" {
		return errors.New("server.bind must not be empty")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return errors.New("server.max_upload_bytes must be positive")
	}
	if c.Processing.TailSeconds < 0 {
		return errors.New("processing.tail_seconds must not be negative")
	}
	if c.Processing.DefaultOutputName == "" {
		return errors.New("processing.default_output_name must not be empty")
	}
	return nil
}

// Sample returns the annotated sample configuration file.
func Sample() string {
	return sampleConfig
}
