package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read from the current directory.
const DefaultEnvFile = ".env"

// Getenv looks up an environment variable. Empty means unset.
type Getenv func(key string) string

// LoadEnv returns a Getenv that reads the process environment first and
// falls back to the given dotenv files. Missing files are skipped; the
// process environment is not modified.
func LoadEnv(paths ...string) (Getenv, error) {
	values := make(map[string]string)
	for _, path := range paths {
		read, err := godotenv.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		for k, v := range read {
			if _, ok := values[k]; !ok {
				values[k] = v
			}
		}
	}
	return envLookup(os.LookupEnv, values), nil
}

// envLookup combines a process environment lookup with dotenv values.
func envLookup(lookup func(string) (string, bool), dotenv map[string]string) Getenv {
	return func(key string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}
}

// ApplyEnv overlays the credentials found through getenv onto c.
func (c *Config) ApplyEnv(getenv Getenv) {
	if getenv == nil {
		return
	}
	if v := getenv(EnvNumVerifyAPIKey); v != "" {
		c.NumVerifyAPIKey = v
	}
	if v := getenv(EnvAadhaarAPIKey); v != "" {
		c.AadhaarAPIKey = v
	}
}
