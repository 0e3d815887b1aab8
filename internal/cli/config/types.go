// Package config provides configuration management for the minic CLI.
//
// Values are layered, highest precedence first: command-line flags,
// MINIC_* environment variables, the minic.yaml project file, then the
// defaults below.
package config

import (
	"log/slog"
	"reflect"

	"github.com/leapstack-labs/minic/pkg/compiler"
)

// Config holds all CLI configuration options.
type Config struct {
	// Strict reports grammar mismatches instead of consuming tokens silently.
	Strict bool `koanf:"strict"`
	// Recover continues after errors at statement boundaries (with strict).
	Recover bool `koanf:"recover"`
	// Program compiles every statement instead of only the first.
	Program      bool   `koanf:"program"`
	Verbose      bool   `koanf:"verbose"`
	OutputFormat string `koanf:"output"`
	Jobs         int    `koanf:"jobs"`
	HistoryFile  string `koanf:"history_file"`

	// ProjectRoot is the directory relative paths are resolved against.
	ProjectRoot string `koanf:"-"`
}

// Default configuration values.
const (
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultJobs        = 4
	DefaultHistoryFile = ".minic_history"
)

// CompilerConfig returns the compiler settings carried by c.
func (c *Config) CompilerConfig(logger *slog.Logger) compiler.Config {
	return compiler.Config{
		Strict:  c.Strict,
		Recover: c.Recover,
		Program: c.Program,
		Jobs:    c.Jobs,
		Logger:  logger,
	}
}

// Keys returns every key a config file may set, in field order.
func Keys() []string {
	t := reflect.TypeOf(Config{})
	keys := make([]string, 0, t.NumField())
	for i := range t.NumField() {
		if tag := t.Field(i).Tag.Get("koanf"); tag != "" && tag != "-" {
			keys = append(keys, tag)
		}
	}
	return keys
}
