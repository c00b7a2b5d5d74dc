// Package config handles configuration loading and saving.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/tesso57/readmode/internal/application/settings"
	"github.com/tesso57/readmode/internal/application/usecase"
	"github.com/tesso57/readmode/internal/domain/browsing"
	"gopkg.in/yaml.v3"
)

// Store manages persisted application settings.
type Store struct {
	Settings   settings.Settings
	configPath string
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "readmode", "config.yaml"), nil
}

// Load loads the configuration from the specified path or default location.
func Load(customPath ...string) (*Store, error) {
	var configPath string
	if len(customPath) > 0 && customPath[0] != "" {
		configPath = customPath[0]
	} else {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		configPath = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	cfg := settings.Settings{}
	store := &Store{Settings: cfg, configPath: configPath}

	var options []kong.Option

	// Only add configuration loader if file exists
	if _, err := os.Stat(configPath); err == nil {
		options = append(options, kong.Configuration(yamlKongLoader, configPath))
	}

	parser, err := kong.New(&cfg, options...)
	if err != nil {
		return nil, err
	}

	_, err = parser.Parse([]string{})
	if err != nil {
		return nil, err
	}

	store.Settings = cfg
	store.Settings.HomePage = normalizeHomePage(store.Settings.HomePage)
	store.Settings.Reader.Style = normalizeReaderStyle(store.Settings.Reader.Style)
	store.Settings.Reader.Width = settings.ClampReaderWidth(store.Settings.Reader.Width)
	store.Settings.DataFile = strings.TrimSpace(store.Settings.DataFile)
	if store.Settings.DataFile == "" {
		store.Settings.DataFile = filepath.Join(defaultDataHome(), "readmode", "readmode.db")
	}

	// Save defaults if new file
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := store.Save(); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
	}

	return store, nil
}

func normalizeReaderStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	for _, s := range settings.ReaderStyles {
		if s == style {
			return s
		}
	}
	return settings.ReaderStyles[0]
}

// normalizeHomePage falls back to the built-in start page when raw is not a usable URL.
func normalizeHomePage(raw string) string {
	u, err := usecase.NormalizeURL(raw)
	if err != nil {
		return browsing.HomeURL
	}
	return u
}

func defaultDataHome() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome != "" {
		return dataHome
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// yamlKongLoader resolves kong flags from a YAML document. Embedded sections
// such as "reader.width" are looked up as nested maps; dashes match underscores.
func yamlKongLoader(r io.Reader) (kong.Resolver, error) {
	doc := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse config: %w", err)
	}

	var resolver kong.ResolverFunc = func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, name := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := lookup(doc, strings.Split(name, ".")); ok {
				return v, nil
			}
		}
		return nil, nil
	}
	return resolver, nil
}

func lookup(section map[string]any, path []string) (any, bool) {
	v, ok := section[path[0]]
	if !ok {
		// Flat keys may themselves contain dots.
		v, ok = section[strings.Join(path, ".")]
		return v, ok
	}
	if len(path) == 1 {
		return v, true
	}
	next, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	return lookup(next, path[1:])
}

// Path returns the config file location.
func (s *Store) Path() string {
	return s.configPath
}

// SetReader updates reader display settings and saves the configuration.
func (s *Store) SetReader(reader settings.ReaderConfig) error {
	reader.Style = normalizeReaderStyle(reader.Style)
	reader.Width = settings.ClampReaderWidth(reader.Width)
	s.Settings.Reader = reader
	return s.Save()
}

// Save writes the current settings to the config file.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.Settings)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(s.configPath, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
