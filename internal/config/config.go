// Package config reads the optional .cfgtoolkitrc.toml file that supplies
// defaults for the cfgtoolkit CLI: which grammar file to use when none is
// given on the command line, how wide to render tables, whether to color
// output, and whether to keep a table cache next to grammar files.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the config file cfgtoolkit looks for in the current
// working directory when no --config flag is given.
const DefaultFileName = ".cfgtoolkitrc.toml"

// Config holds the CLI defaults read from a config file. Zero value is
// usable: no default grammar file, unlimited table width, color off, cache
// off. Default gives the built-in values instead.
type Config struct {
	Format string `toml:"format"`

	DefaultGrammarFile string `toml:"default_grammar_file"`
	TableWidth         int    `toml:"table_width"`
	Color              bool   `toml:"color"`
	Cache              bool   `toml:"cache"`
}

// Default returns the built-in defaults used when no config file is present.
func Default() Config {
	return Config{
		Format:     "CFGTOOLKIT",
		TableWidth: 100,
		Color:      true,
		Cache:      false,
	}
}

// Load reads and unmarshals the TOML config file at path; fields the file
// does not set keep their Default values. Beyond what toml.Unmarshal itself
// enforces, the only field checked is format, which must be empty or
// "CFGTOOLKIT".
func Load(path string) (Config, error) {
	fileData, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%q: reading from disk: %w", path, err)
	}

	cfg := Default()
	if tomlErr := toml.Unmarshal(fileData, &cfg); tomlErr != nil {
		return Config{}, fmt.Errorf("%q: parsing config: %w", path, tomlErr)
	}

	if cfg.Format != "" && cfg.Format != "CFGTOOLKIT" {
		return Config{}, fmt.Errorf("%q: unsupported config format %q", path, cfg.Format)
	}

	return cfg, nil
}

// LoadDefaultOrFallback tries to load DefaultFileName from the current
// directory, returning the built-in defaults (and a nil error) if no such
// file exists.
func LoadDefaultOrFallback() (Config, error) {
	if _, err := os.Stat(DefaultFileName); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(DefaultFileName)
}
