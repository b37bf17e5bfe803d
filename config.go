package main

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/atomic"
	"gopkg.in/yaml.v3"
)

const (
	configDir           = ".animals"
	defaultTemplatePath = "animals_template.html"
	defaultDataPath     = "animals_data.json"
	defaultOutputPath   = "animals.html"
)

// Embedded defaults
//
//go:embed defaults/animals_template.html
var defaultTemplate string

//go:embed defaults/settings.yaml
var defaultSettings string

// Settings represents the YAML settings file
type Settings struct {
	APIURL         string        `yaml:"api_url"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
	Placeholder    string        `yaml:"placeholder"`
	TemplatePath   string        `yaml:"template_path"`
	DataPath       string        `yaml:"data_path"`
	OutputPath     string        `yaml:"output_path"`
	EmptyMessage   string        `yaml:"empty_message"`
}

// ConfigOverrides carries values given explicitly on the command line
type ConfigOverrides struct {
	SettingsPath *string
	TemplatePath *string
	DataPath     *string
	OutputPath   *string
}

// Config is the run configuration, built once at startup
type Config struct {
	Credential   string
	UseLocalFile bool
	TemplatePath string
	DataPath     string
	OutputPath   string

	APIURL         string
	RequestTimeout time.Duration
	Placeholder    string
	EmptyMessage   string
	Markdown       bool

	// templateRequired is set when the template path was chosen by the user;
	// otherwise a missing file falls back to the embedded template.
	templateRequired bool
}

// NewConfig merges built-in defaults, the settings file and overrides
func NewConfig(credential string, useLocalFile bool, overrides *ConfigOverrides) (*Config, error) {
	if overrides == nil {
		overrides = &ConfigOverrides{}
	}

	var settings *Settings
	var err error
	if overrides.SettingsPath != nil {
		// Explicit settings file must exist
		settings, err = loadSettingsRequired(*overrides.SettingsPath)
	} else {
		settings, err = loadSettings(getConfigPath("settings.yaml"))
	}
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Credential:     credential,
		UseLocalFile:   useLocalFile,
		TemplatePath:   firstNonEmpty(settings.TemplatePath, defaultTemplatePath),
		DataPath:       firstNonEmpty(settings.DataPath, defaultDataPath),
		OutputPath:     firstNonEmpty(settings.OutputPath, defaultOutputPath),
		APIURL:         firstNonEmpty(settings.APIURL, DefaultAPIURL),
		RequestTimeout: settings.RequestTimeout,
		Placeholder:    firstNonEmpty(settings.Placeholder, DefaultPlaceholder),
		EmptyMessage:   firstNonEmpty(settings.EmptyMessage, defaultEmptyMessage),
	}
	cfg.templateRequired = settings.TemplatePath != ""

	if overrides.TemplatePath != nil {
		cfg.TemplatePath = *overrides.TemplatePath
		cfg.templateRequired = true
	}
	if overrides.DataPath != nil {
		cfg.DataPath = *overrides.DataPath
	}
	if overrides.OutputPath != nil {
		cfg.OutputPath = *overrides.OutputPath
	}

	return cfg, nil
}

// LoadTemplate returns the HTML template (from file or embedded)
func (c *Config) LoadTemplate() (string, error) {
	content, err := os.ReadFile(c.TemplatePath)
	if err == nil {
		return string(content), nil
	}

	if errors.Is(err, os.ErrNotExist) {
		if !c.templateRequired {
			debugLog("template not found, using embedded default", "path", c.TemplatePath)
			return defaultTemplate, nil
		}
		return "", newError("load template", KindFile, c.TemplatePath, errors.New("template file not found"))
	}
	return "", newError("load template", KindFile, c.TemplatePath, err)
}

// loadSettings reads settings, returning empty settings when the file is missing
func loadSettings(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if errors.Is(err, os.ErrNotExist) {
		debugLog("settings file not found, using defaults", "path", settingsPath)
		return &Settings{}, nil
	}
	if err != nil {
		return nil, newError("load settings", KindFile, settingsPath, err)
	}
	return parseSettings(settingsPath, data)
}

// loadSettingsRequired reads settings that must exist
func loadSettingsRequired(settingsPath string) (*Settings, error) {
	data, err := os.ReadFile(settingsPath)
	if err != nil {
		return nil, newError("load settings", KindFile, settingsPath, err)
	}
	return parseSettings(settingsPath, data)
}

func parseSettings(settingsPath string, data []byte) (*Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, newError("load settings", KindDataFormat, settingsPath, fmt.Errorf("parsing settings YAML: %w", err))
	}
	return &settings, nil
}

// getConfigPath returns the path to a file in the .animals directory
func getConfigPath(filename string) string {
	return filepath.Join(configDir, filename)
}

// ensureConfigExists writes the default settings and template if they don't exist.
// It returns the paths it created.
func ensureConfigExists(root string) ([]string, error) {
	dir := filepath.Join(root, configDir)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, newError("init", KindFile, dir, fmt.Errorf("creating config directory: %w", err))
	}

	files := []struct {
		path    string
		content string
	}{
		{filepath.Join(dir, "settings.yaml"), defaultSettings},
		{filepath.Join(root, defaultTemplatePath), defaultTemplate},
	}

	var created []string
	for _, f := range files {
		if _, err := os.Stat(f.path); err == nil {
			continue
		}
		if err := atomic.WriteFile(f.path, bytes.NewReader([]byte(f.content))); err != nil {
			return created, newError("init", KindFile, f.path, err)
		}
		created = append(created, f.path)
	}
	return created, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
