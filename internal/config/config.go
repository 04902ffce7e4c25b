// Package config resolves where days keeps its data and loads the optional
// config.yaml that lives next to the events file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DirName is the data directory created by the user under their home.
	DirName = ".days"

	// DefaultFile is the events file name inside the data directory.
	DefaultFile = "events.csv"

	// FileName is the optional configuration file inside the data directory.
	FileName = "config.yaml"

	// EnvDir overrides the data directory.
	EnvDir = "DAYS_DIR"
)

// ErrNoHome is returned when neither HOME nor USERPROFILE is set.
var ErrNoHome = errors.New("unable to determine home directory")

// Config is the content of config.yaml plus the directory it was read from.
type Config struct {
	// Dir is the data directory. Not part of the file.
	Dir string `yaml:"-"`

	// File is the events file name, relative to Dir.
	File string `yaml:"file,omitempty"`

	// Timezone is the IANA zone used to decide what "today" is.
	// Empty means the system local zone.
	Timezone string `yaml:"timezone,omitempty"`

	// Format is the default output format ("text" or "json").
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration used when dir has no config.yaml.
func Default(dir string) *Config {
	return &Config{Dir: dir, File: DefaultFile}
}

// Normalize fills in missing values with defaults.
func (c *Config) Normalize() {
	if c.File == "" {
		c.File = DefaultFile
	}
}

// EventsPath returns the absolute or dir-relative path of the events file.
func (c *Config) EventsPath() string {
	return filepath.Join(c.Dir, c.File)
}

// Location returns the configured timezone, or time.Local when unset.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// LoadEnv loads a .env file from the working directory if there is one.
// A missing file is not an error; an unreadable or malformed one is.
func LoadEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// ResolveDir picks the data directory: flagDir if set, then $DAYS_DIR,
// then $HOME/.days, then $USERPROFILE/.days.
func ResolveDir(flagDir string) (string, error) {
	if flagDir != "" {
		return flagDir, nil
	}
	if dir, ok := os.LookupEnv(EnvDir); ok && dir != "" {
		return dir, nil
	}
	for _, key := range []string{"HOME", "USERPROFILE"} {
		if home, ok := os.LookupEnv(key); ok && home != "" {
			return filepath.Join(home, DirName), nil
		}
	}
	return "", ErrNoHome
}

// Load reads dir/config.yaml. A missing file (or missing dir) yields
// Default(dir); the file is never created.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(dir), nil
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := Validate(data); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Dir = dir
	cfg.Normalize()

	if _, err := cfg.Location(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}
