// (c) Siemens AG 2023
//
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/d42-tools/d42"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	log "github.com/sirupsen/logrus"
)

// DefaultEnvPrefix is the prefix of the environment variables configuring
// the API access.
const DefaultEnvPrefix = "D42_API_"

// DefaultFile is the configuration file looked for in the user's home
// directory, unless told otherwise.
var DefaultFile = filepath.Join(".d42", "config.yaml")

// Config is the API access configuration.
type Config struct {
	URL      string `koanf:"url"`
	User     string `koanf:"user"`
	Password string `koanf:"pass"`
	Version  string `koanf:"version"`
	Output   string `koanf:"output"`
	Insecure bool   `koanf:"insecure"`
}

// Loader loads the configuration from its defaults, a YAML file and the
// environment, with later sources overriding earlier ones.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	explicit  bool
}

// Option configures a Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file, which then must exist. An
// empty path keeps the default file.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		if path == "" {
			return
		}
		l.filePath = path
		l.explicit = true
	}
}

// WithDefaultFile sets the optional configuration file used in absence of an
// explicit one.
func WithDefaultFile(path string) Option {
	return func(l *Loader) {
		if l.explicit {
			return
		}
		l.filePath = path
	}
}

// NewLoader returns a configuration loader; by default it reads the optional
// ~/.d42/config.yaml and D42_API_* environment variables.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}
	if home, err := os.UserHomeDir(); err == nil {
		l.filePath = filepath.Join(home, DefaultFile)
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load the configuration from all sources.
func (l *Loader) Load() (*Config, error) {
	defaults := mapProvider{
		"url":     d42.DefaultAPIURL,
		"version": d42.DefaultAPIVersion,
	}
	if err := l.k.Load(defaults, nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}
	if err := l.loadFile(); err != nil {
		return nil, err
	}
	if err := l.loadEnv(); err != nil {
		return nil, err
	}
	var cfg Config
	if err := l.k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) loadFile() error {
	if l.filePath == "" {
		return nil
	}
	if !l.explicit {
		if _, err := os.Stat(l.filePath); errors.Is(err, fs.ErrNotExist) {
			log.Debugf("no configuration file %s", l.filePath)
			return nil
		}
	}
	if err := l.k.Load(file.Provider(l.filePath), yaml.Parser()); err != nil {
		return fmt.Errorf("load config file %s: %w", l.filePath, err)
	}
	log.Debugf("loaded configuration file %s", l.filePath)
	return nil
}

// loadEnv loads the environment variables with the configured prefix, such as
// D42_API_URL into "url".
func (l *Loader) loadEnv() error {
	transform := func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, l.envPrefix))
	}
	if err := l.k.Load(env.Provider(l.envPrefix, ".", transform), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// mapProvider is a koanf provider serving a fixed map.
type mapProvider map[string]any

func (m mapProvider) ReadBytes() ([]byte, error) {
	return nil, errors.New("mapProvider does not support ReadBytes")
}

func (m mapProvider) Read() (map[string]any, error) {
	return m, nil
}
