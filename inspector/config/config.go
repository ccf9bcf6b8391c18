package config

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Compression values
const (
	CompressionNone = "none"
	CompressionGzip = "gzip"
	CompressionZstd = "zstd"
)

// Config represents rptxml configuration
type Config struct {
	Log     Log     `yaml:"log"`
	Embed   Embed   `yaml:"embed"`
	Output  Output  `yaml:"output"`
	Metrics Metrics `yaml:"metrics"`
}

// Log represents logging settings
type Log struct {
	Level  string `yaml:"level"`  // debug, info, warn or error; default info
	Pretty bool   `yaml:"pretty"` // console writer instead of JSON lines
}

// Embed represents embedded object detection settings
type Embed struct {
	Marker string `yaml:"marker"` // Substring of compound file entry names; default Ole
}

// Output represents document settings
type Output struct {
	Indent      string `yaml:"indent"`      // default two spaces
	Compression string `yaml:"compression"` // none, gzip or zstd; derived from output extension when empty
}

// Metrics represents metrics settings
type Metrics struct {
	File string `yaml:"file"` // Prometheus textfile path, disabled when empty
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Log:    Log{Level: "info"},
		Embed:  Embed{Marker: "Ole"},
		Output: Output{Indent: "  "},
	}
}

// Load loads configuration over defaults
func Load(ctx context.Context, URL string) (*Config, error) {
	data, err := afs.New().DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to download config %v: %w", URL, err)
	}
	ret := Default()
	if err = yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
	}
	return ret, ret.Validate()
}

// Validate checks configuration values
func (c *Config) Validate() error {
	switch c.Output.Compression {
	case "", CompressionNone, CompressionGzip, CompressionZstd:
	default:
		return fmt.Errorf("unsupported output compression: %v", c.Output.Compression)
	}
	if c.Embed.Marker == "" {
		return fmt.Errorf("embed marker was empty")
	}
	return nil
}

// Compression returns output compression, derived from output extension unless configured
func (c *Config) Compression(outputURL string) string {
	if c.Output.Compression != "" {
		return c.Output.Compression
	}
	switch strings.ToLower(path.Ext(outputURL)) {
	case ".gz":
		return CompressionGzip
	case ".zst":
		return CompressionZstd
	}
	return CompressionNone
}
