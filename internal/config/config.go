// Package config loads and persists hitsbatch settings: lookup credentials,
// search locale and batch defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/rotisserie/eris"
)

// FileName is the settings file looked up beside the executable.
const FileName = "hitsbatch.toml"

// Environment variables that override file settings.
const (
	EnvAPIKey   = "SERPAPI_API_KEY"
	EnvDomain   = "GOOGLE_DOMAIN"
	EnvLanguage = "HL"
	EnvCountry  = "GL"
)

// ErrUnknownKey indicates Set was given a key it does not manage.
var ErrUnknownKey = errors.New("unknown setting")

// Settings is the full configuration.
type Settings struct {
	SerpAPI SerpAPIConfig `toml:"serpapi"`
	Batch   BatchConfig   `toml:"batch"`
}

// SerpAPIConfig configures live lookups.
type SerpAPIConfig struct {
	APIKey       string   `toml:"api_key"`
	Domain       string   `toml:"domain"`
	Language     string   `toml:"language"`
	Country      string   `toml:"country"`
	Endpoint     string   `toml:"endpoint"`
	Timeout      Duration `toml:"timeout"`
	RequestDelay Duration `toml:"request_delay"`
}

// BatchConfig holds defaults for batch runs.
type BatchConfig struct {
	ScanRows            int    `toml:"scan_rows"`
	MaxConsecutiveEmpty int    `toml:"max_consecutive_empty"`
	DefaultOutput       string `toml:"default_output"`
}

// Duration is a time.Duration stored as a string such as "500ms".
type Duration struct {
	time.Duration
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		SerpAPI: SerpAPIConfig{
			Domain:   "google.dk",
			Language: "da",
			Country:  "dk",
			Endpoint: "https://serpapi.com/search.json",
			Timeout:  Duration{30 * time.Second},
		},
		Batch: BatchConfig{
			ScanRows:            8,
			MaxConsecutiveEmpty: 2,
			DefaultOutput:       "output.xlsx",
		},
	}
}

// DefaultPath returns the settings file beside the executable, falling back
// to the working directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		return FileName
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Load reads settings from path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (*Settings, error) {
	cfg, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

// LoadFile is Load without environment overrides, for rewriting the file.
func LoadFile(path string) (*Settings, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, eris.Wrapf(err, "parse %s", path)
		}
	case os.IsNotExist(err):
	default:
		return nil, eris.Wrapf(err, "read %s", path)
	}

	cfg.fillBlanks()
	return cfg, nil
}

// Save writes settings to path. The file holds the API key, so it is
// created readable by the owner only.
func Save(path string, cfg *Settings) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return eris.Wrap(err, "encode settings")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return eris.Wrapf(err, "create %s", dir)
		}
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

// Keys lists the settings that Set accepts.
func Keys() []string {
	return []string{"api_key", "domain", "language", "country", "endpoint", "timeout", "request_delay", "scan_rows", "max_consecutive_empty", "default_output"}
}

// Set assigns a single setting by key.
func (s *Settings) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "api_key":
		s.SerpAPI.APIKey = value
	case "domain":
		s.SerpAPI.Domain = value
	case "language":
		s.SerpAPI.Language = value
	case "country":
		s.SerpAPI.Country = value
	case "endpoint":
		s.SerpAPI.Endpoint = value
	case "timeout":
		return s.SerpAPI.Timeout.UnmarshalText([]byte(value))
	case "request_delay":
		return s.SerpAPI.RequestDelay.UnmarshalText([]byte(value))
	case "scan_rows":
		return setPositive(&s.Batch.ScanRows, key, value)
	case "max_consecutive_empty":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s: %q is not a non-negative integer", key, value)
		}
		s.Batch.MaxConsecutiveEmpty = n
	case "default_output":
		s.Batch.DefaultOutput = value
	default:
		return fmt.Errorf("%q: %w (known: %s)", key, ErrUnknownKey, strings.Join(Keys(), ", "))
	}
	return nil
}

// MaskedAPIKey returns the API key with all but the last four characters hidden.
func (s *Settings) MaskedAPIKey() string {
	key := s.SerpAPI.APIKey
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}

func setPositive(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fmt.Errorf("%s: %q is not a positive integer", key, value)
	}
	*dst = n
	return nil
}

func (s *Settings) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		s.SerpAPI.APIKey = v
	}
	if v := os.Getenv(EnvDomain); v != "" {
		s.SerpAPI.Domain = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		s.SerpAPI.Language = v
	}
	if v := os.Getenv(EnvCountry); v != "" {
		s.SerpAPI.Country = v
	}
}

// fillBlanks restores defaults for locale fields left empty in the file.
func (s *Settings) fillBlanks() {
	def := Default()
	if strings.TrimSpace(s.SerpAPI.Domain) == "" {
		s.SerpAPI.Domain = def.SerpAPI.Domain
	}
	if strings.TrimSpace(s.SerpAPI.Language) == "" {
		s.SerpAPI.Language = def.SerpAPI.Language
	}
	if strings.TrimSpace(s.SerpAPI.Country) == "" {
		s.SerpAPI.Country = def.SerpAPI.Country
	}
	if strings.TrimSpace(s.SerpAPI.Endpoint) == "" {
		s.SerpAPI.Endpoint = def.SerpAPI.Endpoint
	}
	if s.Batch.ScanRows <= 0 {
		s.Batch.ScanRows = def.Batch.ScanRows
	}
	if s.Batch.DefaultOutput == "" {
		s.Batch.DefaultOutput = def.Batch.DefaultOutput
	}
}
