package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigFile is the configuration file name searched in the
	// current and home directories.
	DefaultConfigFile = ".phoneosint"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File represents the structure of the configuration file.
type File struct {
	// NumVerify configures the remote lookup.
	NumVerify NumVerifySection `yaml:"numverify,omitempty"`

	// Aadhaar configures the identity lookup.
	Aadhaar AadhaarSection `yaml:"aadhaar,omitempty"`

	// Language is a BCP 47 tag for geocoding and carrier names.
	Language string `yaml:"language,omitempty"`

	// Timeout is a Go duration string such as "10s".
	Timeout string `yaml:"timeout,omitempty"`

	// Tor configures routing of the remote lookup through Tor.
	Tor TorSection `yaml:"tor,omitempty"`
}

// NumVerifySection holds the NumVerify settings of a configuration file.
type NumVerifySection struct {
	APIKey  string `yaml:"apiKey,omitempty"`
	BaseURL string `yaml:"baseURL,omitempty"`
}

// AadhaarSection holds the identity provider settings of a configuration file.
type AadhaarSection struct {
	APIKey string `yaml:"apiKey,omitempty"`
}

// TorSection holds the Tor settings of a configuration file.
type TorSection struct {
	Enabled bool   `yaml:"enabled,omitempty"`
	Proxy   string `yaml:"proxy,omitempty"`
}

// LoadConfigFile loads a configuration file.
// If the file does not exist, it returns ErrConfigNotFound.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cf, nil
}

// ApplyFile overlays the non-empty values of f onto c.
func (c *Config) ApplyFile(f *File) error {
	if f == nil {
		return nil
	}

	if f.NumVerify.APIKey != "" {
		c.NumVerifyAPIKey = f.NumVerify.APIKey
	}
	if f.NumVerify.BaseURL != "" {
		c.NumVerifyURL = f.NumVerify.BaseURL
	}
	if f.Aadhaar.APIKey != "" {
		c.AadhaarAPIKey = f.Aadhaar.APIKey
	}
	if f.Language != "" {
		c.Language = f.Language
	}
	if f.Timeout != "" {
		d, err := time.ParseDuration(f.Timeout)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidTimeout, f.Timeout)
		}
		c.Timeout = d
	}
	if f.Tor.Enabled {
		c.UseTor = true
	}
	// A proxy address implies Tor routing, as with --tor-proxy.
	if f.Tor.Proxy != "" {
		c.TorProxyAddress = f.Tor.Proxy
		c.UseTor = true
	}
	return nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .phoneosint in the current directory
// 3. Look for .phoneosint in the user's home directory
// 4. Look for config.yaml in XDGConfigDir
//
// Returns the path to the configuration file if found, or empty string if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	var candidates []string
	if cwd, err := os.Getwd(); err == nil {
		candidates = append(candidates, filepath.Join(cwd, DefaultConfigFile))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, DefaultConfigFile))
	}
	candidates = append(candidates, filepath.Join(XDGConfigDir(), XDGConfigFile))

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}
