package config

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the file name searched for in the XDG config dirs.
const DefaultConfigFile = "config.yaml"

// File is the on-disk defaults file. Unset keys leave the built-in
// defaults alone.
type File struct {
	Octal  *bool  `yaml:"octal"`
	Guides *bool  `yaml:"guides"`
	Colors *bool  `yaml:"colors"`
	ASCII  *bool  `yaml:"ascii"`
	Level  string `yaml:"level"`
}

// LoadFile reads a defaults file. A missing file yields ErrConfigNotFound.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the user
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, errors.Wrapf(err, "ReadFile failed for %s", path)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "invalid configuration file %s", path)
	}
	return &f, nil
}

// FindFile returns configPath when it is set, otherwise the first
// hexed/config.yaml found in the XDG config directories. It returns ""
// when nothing is found.
func FindFile(configPath string) string {
	if configPath != "" {
		return configPath
	}
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, DefaultConfigFile))
	if err != nil {
		return ""
	}
	return path
}

// Apply copies the keys present in f onto c.
func (f *File) Apply(c *Config) {
	if f.Octal != nil {
		if *f.Octal {
			c.Base = Octal
		} else {
			c.Base = Hex
		}
	}
	if f.Guides != nil {
		c.Guides = *f.Guides
	}
	if f.Colors != nil {
		c.Colors = *f.Colors
	}
	if f.ASCII != nil {
		c.ASCII = *f.ASCII
	}
	if f.Level != "" {
		c.LogLevel = f.Level
	}
}
