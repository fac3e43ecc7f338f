package config

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mandelsoft/vfs/pkg/vfs"

	"go.hackfix.me/genfile/xsize"
)

// Config represents the application configuration, backed by a filesystem for
// persistence.
type Config struct {
	Output Output

	fs   vfs.FileSystem
	path string
}

// New creates a new Config instance with the specified filesystem and
// configuration file path.
func New(fs vfs.FileSystem, path string) *Config {
	return &Config{fs: fs, path: path}
}

// Load reads and parses the configuration file from the filesystem.
// If the file doesn't exist, it initializes with an empty configuration.
func (c *Config) Load() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}

	configJSON, err := vfs.ReadFile(c.fs, c.path)
	if err != nil && !vfs.IsErrNotExist(err) {
		return fmt.Errorf("failed reading configuration file: %w", err)
	}

	// Ensure that unmarshalling JSON doesn't fail if the file doesn't exist or is empty.
	if len(configJSON) == 0 {
		configJSON = []byte("{}")
	}

	if err = json.Unmarshal(configJSON, c); err != nil {
		return fmt.Errorf("failed parsing configuration file: %w", err)
	}

	return nil
}

// Path returns the filesystem path where the configuration is stored.
func (c *Config) Path() string {
	return c.path
}

// Save writes the current configuration to the filesystem as JSON.
func (c *Config) Save() error {
	if err := c.fs.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("failed creating configuration directory: %w", err)
	}
	configJSON, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed serializing configuration data: %w", err)
	}
	if err = vfs.WriteFile(c.fs, c.path, configJSON, 0o644); err != nil {
		return fmt.Errorf("failed writing configuration file: %w", err)
	}

	return nil
}

// Output defines configuration options for generated files.
type Output struct {
	// Dir is the directory generated files are written to, relative to the
	// working directory unless absolute. It must already exist; genfile never
	// creates it.
	Dir sql.Null[string]
	// ChunkSize is the number of bytes written per I/O operation.
	// It serializes from/to xsize string values. Must be greater than 0.
	ChunkSize sql.Null[int64]
	// ProgressThreshold is the minimum requested file size for which
	// incremental progress is reported during generation.
	// It serializes from/to xsize string values.
	ProgressThreshold sql.Null[int64]
}

type cfgWrapper struct {
	Output outCfgWrapper `json:"output"`
}
type outCfgWrapper struct {
	Dir               string `json:"dir,omitempty"`
	ChunkSize         string `json:"chunk_size,omitempty"`
	ProgressThreshold string `json:"progress_threshold,omitempty"`
}

// MarshalJSON implements custom JSON marshaling to convert sql.Null values
// to their underlying types, omitting invalid/null fields from the output.
func (c Config) MarshalJSON() ([]byte, error) {
	w := cfgWrapper{}

	if c.Output.Dir.Valid {
		w.Output.Dir = c.Output.Dir.V
	}
	if c.Output.ChunkSize.Valid {
		w.Output.ChunkSize = xsize.Format(c.Output.ChunkSize.V)
	}
	if c.Output.ProgressThreshold.Valid {
		w.Output.ProgressThreshold = xsize.Format(c.Output.ProgressThreshold.V)
	}

	//nolint:wrapcheck // This is fine.
	return json.Marshal(w)
}

// UnmarshalJSON implements custom JSON unmarshaling to convert plain values
// into sql.Null types and parse size strings into byte counts.
func (c *Config) UnmarshalJSON(data []byte) error {
	var w cfgWrapper
	if err := json.Unmarshal(data, &w); err != nil {
		//nolint:wrapcheck // This is fine.
		return err
	}

	if w.Output.Dir != "" {
		c.Output.Dir = sql.Null[string]{V: w.Output.Dir, Valid: true}
	}
	if w.Output.ChunkSize != "" {
		size, err := xsize.Parse(w.Output.ChunkSize)
		if err != nil {
			return fmt.Errorf("failed parsing chunk size: %w", err)
		}
		if size <= 0 {
			return errors.New("chunk size must be greater than 0")
		}
		c.Output.ChunkSize = sql.Null[int64]{V: size, Valid: true}
	}
	if w.Output.ProgressThreshold != "" {
		size, err := xsize.Parse(w.Output.ProgressThreshold)
		if err != nil {
			return fmt.Errorf("failed parsing progress threshold: %w", err)
		}
		c.Output.ProgressThreshold = sql.Null[int64]{V: size, Valid: true}
	}

	return nil
}

// SetDefaults sets default configuration values if they weren't set already.
func (c *Config) SetDefaults() {
	if !c.Output.Dir.Valid {
		c.Output.Dir = sql.Null[string]{V: "test_files", Valid: true}
	}
	if !c.Output.ChunkSize.Valid {
		c.Output.ChunkSize = sql.Null[int64]{V: xsize.MB, Valid: true}
	}
	if !c.Output.ProgressThreshold.Valid {
		c.Output.ProgressThreshold = sql.Null[int64]{V: xsize.GB, Valid: true}
	}
}
