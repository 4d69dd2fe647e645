// Package config loads fdwarf's optional YAML configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls which sections fdwarf reads and where it finds the two
// template documents.
type Config struct {
	Sections struct {
		Functions string `yaml:"functions"`
		Data      string `yaml:"data"`
	} `yaml:"sections"`
	Templates struct {
		Header string `yaml:"header"`
		Source string `yaml:"source"`
	} `yaml:"templates"`
	OutDir string `yaml:"out_dir"`
}

// Default returns the configuration fdwarf ships with.
func Default() Config {
	var c Config
	c.Sections.Functions = ".lf.funcs"
	c.Sections.Data = ".lf.vars"
	c.Templates.Header = "template.h"
	c.Templates.Source = "template.c"
	c.OutDir = "."
	return c
}

// Load reads a YAML config file over the defaults. An empty path returns
// the defaults untouched.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: read: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}
