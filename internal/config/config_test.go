package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected default values.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default NumVerifyURL is the apilayer endpoint", func(t *testing.T) {
		t.Parallel()
		if cfg.NumVerifyURL != "http://apilayer.net/api/validate" {
			t.Errorf("expected NumVerifyURL to be the apilayer endpoint, got '%s'", cfg.NumVerifyURL)
		}
	})

	t.Run("default Timeout is 10 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 10*time.Second {
			t.Errorf("expected Timeout to be 10s, got %v", cfg.Timeout)
		}
	})

	t.Run("default Language is en", func(t *testing.T) {
		t.Parallel()
		if cfg.Language != "en" {
			t.Errorf("expected Language to be 'en', got '%s'", cfg.Language)
		}
	})

	t.Run("credentials are empty by default", func(t *testing.T) {
		t.Parallel()
		if cfg.NumVerifyAPIKey != "" || cfg.AadhaarAPIKey != "" {
			t.Error("expected no credentials by default")
		}
	})

	t.Run("Tor is disabled by default", func(t *testing.T) {
		t.Parallel()
		if cfg.UseTor || cfg.TorProxyAddress != "" {
			t.Error("expected Tor to be disabled")
		}
		if cfg.TorStartupTimeout != 3*time.Minute {
			t.Errorf("expected TorStartupTimeout to be 3m, got %v", cfg.TorStartupTimeout)
		}
	})

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()
		if err := cfg.Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})
}

// TestConfigValidate tests the Validate method. Each case breaks one rule.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr error
	}{
		{
			name:   "json only is valid",
			modify: func(c *Config) { c.JSONReport = true },
		},
		{
			name:   "text only is valid",
			modify: func(c *Config) { c.TextReport = true },
		},
		{
			name:   "tor with external proxy is valid",
			modify: func(c *Config) { c.UseTor = true; c.TorProxyAddress = "127.0.0.1:9050" },
		},
		{
			name:   "regional language tag is valid",
			modify: func(c *Config) { c.Language = "en-GB" },
		},
		{
			name:    "zero timeout returns ErrInvalidTimeout",
			modify:  func(c *Config) { c.Timeout = 0 },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "negative timeout returns ErrInvalidTimeout",
			modify:  func(c *Config) { c.Timeout = -time.Second },
			wantErr: ErrInvalidTimeout,
		},
		{
			name:    "json and text both enabled returns ErrConflictingReportFormats",
			modify:  func(c *Config) { c.JSONReport = true; c.TextReport = true },
			wantErr: ErrConflictingReportFormats,
		},
		{
			name:    "malformed language returns ErrInvalidLanguage",
			modify:  func(c *Config) { c.Language = "not a tag!" },
			wantErr: ErrInvalidLanguage,
		},
		{
			name:    "empty language returns ErrInvalidLanguage",
			modify:  func(c *Config) { c.Language = "" },
			wantErr: ErrInvalidLanguage,
		},
		{
			name:    "endpoint without scheme returns ErrInvalidEndpoint",
			modify:  func(c *Config) { c.NumVerifyURL = "apilayer.net/api/validate" },
			wantErr: ErrInvalidEndpoint,
		},
		{
			name:    "empty endpoint returns ErrInvalidEndpoint",
			modify:  func(c *Config) { c.NumVerifyURL = "" },
			wantErr: ErrInvalidEndpoint,
		},
		{
			name:    "proxy without tor returns ErrTorProxyWithoutTor",
			modify:  func(c *Config) { c.TorProxyAddress = "127.0.0.1:9050" },
			wantErr: ErrTorProxyWithoutTor,
		},
		{
			name:    "embedded tor with zero startup timeout returns ErrInvalidTorStartupTimeout",
			modify:  func(c *Config) { c.UseTor = true; c.TorStartupTimeout = 0 },
			wantErr: ErrInvalidTorStartupTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("expected no error, got %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLanguageBase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		lang string
		want string
	}{
		{lang: "en", want: "en"},
		{lang: "en-GB", want: "en"},
		{lang: "ja-JP", want: "ja"},
		{lang: "not a tag!", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.lang, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			cfg.Language = tt.lang
			if got := cfg.LanguageBase(); got != tt.want {
				t.Errorf("LanguageBase() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestLoadConfigFile tests loading configuration from YAML files.
func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrConfigNotFound for non-existent file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadConfigFile(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("expected ErrConfigNotFound, got %v", err)
		}
	})

	t.Run("loads valid YAML config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		content := `numverify:
  apiKey: nv-key
  baseURL: http://localhost:8080/validate
aadhaar:
  apiKey: id-key
language: ja
timeout: 5s
tor:
  enabled: true
  proxy: 127.0.0.1:9150
`
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := LoadConfigFile(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := &File{
			NumVerify: NumVerifySection{APIKey: "nv-key", BaseURL: "http://localhost:8080/validate"},
			Aadhaar:   AadhaarSection{APIKey: "id-key"},
			Language:  "ja",
			Timeout:   "5s",
			Tor:       TorSection{Enabled: true, Proxy: "127.0.0.1:9150"},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("LoadConfigFile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), DefaultConfigFile)
		if err := os.WriteFile(path, []byte("numverify: [unclosed"), 0o600); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfigFile(path); err == nil {
			t.Error("expected error for invalid YAML")
		}
	})
}

func TestApplyFile(t *testing.T) {
	t.Parallel()

	t.Run("file values override defaults", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		err := cfg.ApplyFile(&File{
			NumVerify: NumVerifySection{APIKey: "nv-key"},
			Language:  "fr",
			Timeout:   "30s",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.NumVerifyAPIKey != "nv-key" {
			t.Errorf("expected NumVerifyAPIKey to be 'nv-key', got %q", cfg.NumVerifyAPIKey)
		}
		if cfg.Language != "fr" {
			t.Errorf("expected Language to be 'fr', got %q", cfg.Language)
		}
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected Timeout to be 30s, got %v", cfg.Timeout)
		}
		if cfg.NumVerifyURL != DefaultNumVerifyURL {
			t.Errorf("empty file values must not clear defaults, got %q", cfg.NumVerifyURL)
		}
	})

	t.Run("nil file is a no-op", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if err := cfg.ApplyFile(nil); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(NewConfig(), cfg); diff != "" {
			t.Errorf("config changed (-want +got):\n%s", diff)
		}
	})

	t.Run("tor proxy enables tor without the enabled key", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		if err := cfg.ApplyFile(&File{Tor: TorSection{Proxy: "127.0.0.1:9050"}}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !cfg.UseTor {
			t.Error("expected UseTor to be true")
		}
		if cfg.TorProxyAddress != "127.0.0.1:9050" {
			t.Errorf("expected TorProxyAddress to be '127.0.0.1:9050', got %q", cfg.TorProxyAddress)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("Validate() error = %v", err)
		}
	})

	t.Run("bad duration returns ErrInvalidTimeout", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		err := cfg.ApplyFile(&File{Timeout: "soon"})
		if !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})
}

func TestEnv(t *testing.T) {
	t.Parallel()

	t.Run("process environment wins over dotenv", func(t *testing.T) {
		t.Parallel()
		lookup := func(key string) (string, bool) {
			if key == EnvNumVerifyAPIKey {
				return "from-env", true
			}
			return "", false
		}
		getenv := envLookup(lookup, map[string]string{
			EnvNumVerifyAPIKey: "from-file",
			EnvAadhaarAPIKey:   "id-from-file",
		})

		cfg := NewConfig()
		cfg.ApplyEnv(getenv)
		if cfg.NumVerifyAPIKey != "from-env" {
			t.Errorf("expected 'from-env', got %q", cfg.NumVerifyAPIKey)
		}
		if cfg.AadhaarAPIKey != "id-from-file" {
			t.Errorf("expected 'id-from-file', got %q", cfg.AadhaarAPIKey)
		}
	})

	t.Run("empty values keep earlier configuration", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.NumVerifyAPIKey = "from-yaml"
		cfg.ApplyEnv(func(string) string { return "" })
		if cfg.NumVerifyAPIKey != "from-yaml" {
			t.Errorf("expected 'from-yaml', got %q", cfg.NumVerifyAPIKey)
		}
	})

	t.Run("LoadEnv reads dotenv files and skips missing ones", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, DefaultEnvFile)
		if err := os.WriteFile(path, []byte("PHONEOSINT_TEST_ONLY_KEY=dotenv-value\n"), 0o600); err != nil {
			t.Fatal(err)
		}

		getenv, err := LoadEnv(filepath.Join(dir, "missing.env"), path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := getenv("PHONEOSINT_TEST_ONLY_KEY"); got != "dotenv-value" {
			t.Errorf("expected 'dotenv-value', got %q", got)
		}
	})
}

// TestFindConfigFile tests the config file search.
func TestFindConfigFile(t *testing.T) {
	t.Parallel()

	t.Run("returns explicit path if exists", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("language: en\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := FindConfigFile(path); got != path {
			t.Errorf("expected %s, got %s", path, got)
		}
	})

	t.Run("returns empty for non-existent explicit path", func(t *testing.T) {
		t.Parallel()
		if got := FindConfigFile(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty path, got %s", got)
		}
	})
}

func TestXDGConfigDir(t *testing.T) {
	t.Parallel()

	dir := XDGConfigDir()
	if filepath.Base(dir) != AppName {
		t.Errorf("expected XDGConfigDir to end with %s, got %s", AppName, dir)
	}
}
