// Package config loads formatter defaults from a .cssfmt.yaml file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/css-format/cssfmt"
	"github.com/css-format/cssfmt/nodeparse"

	"github.com/goccy/go-yaml"
)

const FileName = ".cssfmt.yaml"

// Config mirrors the command line suppression flags plus the parser
// selection. The zero value formats with everything enabled using the
// native parser.
type Config struct {
	IgnoreCharset    bool   `yaml:"ignore-charset,omitempty"`
	IgnoreComments   bool   `yaml:"ignore-comments,omitempty"`
	IgnoreEmptyRules bool   `yaml:"ignore-empty-rules,omitempty"`
	Parser           string `yaml:"parser,omitempty"`
}

// Load looks for .cssfmt.yaml in dir and then in the user's home
// directory. A missing file is not an error and yields the zero Config.
func Load(dir string) (*Config, error) {
	paths := []string{filepath.Join(dir, FileName)}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, FileName))
	}
	for _, p := range paths {
		d, err := os.ReadFile(p)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("could not read %q: %w", p, err)
		}
		cfg := &Config{}
		if err := yaml.Unmarshal(d, cfg); err != nil {
			return nil, fmt.Errorf("could not decode %q: %w", p, err)
		}
		if err := cfg.validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}
		return cfg, nil
	}
	return &Config{}, nil
}

func (c *Config) validate() error {
	switch c.Parser {
	case "", "native", "node":
		return nil
	}
	return fmt.Errorf("unknown parser %q (want \"native\" or \"node\")", c.Parser)
}

// Options translates the config into formatting options.
func (c *Config) Options() []cssfmt.Option {
	opts := []cssfmt.Option{
		cssfmt.IgnoreCharset(c.IgnoreCharset),
		cssfmt.IgnoreComments(c.IgnoreComments),
		cssfmt.IgnoreEmptyRules(c.IgnoreEmptyRules),
	}
	if c.Parser == "node" {
		opts = append(opts, cssfmt.WithParser(nodeparse.New(nil, "")))
	}
	return opts
}
