package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "phoneosint"

	// DefaultNumVerifyURL is the NumVerify validation endpoint.
	DefaultNumVerifyURL = "http://apilayer.net/api/validate"

	// DefaultTimeout bounds the remote lookup. One request is made per run,
	// so there is no separate connect timeout.
	DefaultTimeout = 10 * time.Second

	// DefaultLanguage is used for geocoding and carrier names.
	DefaultLanguage = "en"

	// DefaultTorStartupTimeout is the maximum time to wait for the embedded
	// Tor daemon to bootstrap.
	DefaultTorStartupTimeout = 3 * time.Minute
)

// Environment variables holding credentials.
const (
	// EnvNumVerifyAPIKey holds the NumVerify access key.
	EnvNumVerifyAPIKey = "NUMVERIFY_API_KEY"

	// EnvAadhaarAPIKey holds the identity provider credential.
	// The variable name keeps the historical spelling.
	EnvAadhaarAPIKey = "AADHAR_API_KEY"
)

// Config holds all configuration options for a phoneosint run.
type Config struct {
	// NumVerifyAPIKey is the NumVerify access key.
	// Empty disables the remote lookup.
	NumVerifyAPIKey string

	// AadhaarAPIKey is the identity provider credential.
	// Empty disables the identity lookup.
	AadhaarAPIKey string

	// NumVerifyURL is the NumVerify endpoint. Override it to point at a
	// compatible mirror or a local test server.
	NumVerifyURL string

	// Timeout bounds the remote lookup.
	Timeout time.Duration

	// Language is a BCP 47 tag selecting the language of geocoding and
	// carrier names. Only the base language is used.
	Language string

	// JSONReport writes the report as JSON. Mutually exclusive with TextReport.
	JSONReport bool

	// TextReport writes the report as plain text. Mutually exclusive with JSONReport.
	// When neither is set the report is Markdown.
	TextReport bool

	// ReportFile is the output file path for the report.
	// When empty the report is written to stdout.
	ReportFile string

	// EscapeLinks percent-encodes the number in the generated search links.
	EscapeLinks bool

	// UseTor routes the remote lookup through Tor.
	UseTor bool

	// TorProxyAddress is an external Tor SOCKS5 proxy in "host:port" format.
	// When empty and UseTor is set, an embedded Tor daemon is started.
	TorProxyAddress string

	// TorStartupTimeout is the maximum time to wait for the embedded Tor daemon.
	TorStartupTimeout time.Duration

	// Verbose enables debug logging.
	Verbose bool

	// ConfigFilePath is an explicit configuration file path.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		NumVerifyURL:      DefaultNumVerifyURL,
		Timeout:           DefaultTimeout,
		Language:          DefaultLanguage,
		TorStartupTimeout: DefaultTorStartupTimeout,
	}
}

// XDGConfigDir returns the XDG config directory for phoneosint.
// On Linux: ~/.config/phoneosint
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid and returns the first
// problem found.
func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.JSONReport && c.TextReport {
		return ErrConflictingReportFormats
	}

	if _, err := language.Parse(c.Language); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidLanguage, c.Language)
	}

	if err := validator.New().Var(c.NumVerifyURL, "required,url"); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidEndpoint, c.NumVerifyURL)
	}

	if c.TorProxyAddress != "" && !c.UseTor {
		return ErrTorProxyWithoutTor
	}

	if c.UseTor && c.TorProxyAddress == "" && c.TorStartupTimeout <= 0 {
		return ErrInvalidTorStartupTimeout
	}

	return nil
}

// LanguageBase returns the base language of c.Language ("en-GB" becomes
// "en"). It falls back to DefaultLanguage when the tag does not parse.
func (c *Config) LanguageBase() string {
	tag, err := language.Parse(c.Language)
	if err != nil {
		return DefaultLanguage
	}
	base, _ := tag.Base()
	return base.String()
}
