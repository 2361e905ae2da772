package config

import "errors"

// Configuration validation errors returned by Config.Validate.
var (
	// ErrInvalidTimeout is returned when the timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --text
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --text cannot be used together")

	// ErrInvalidLanguage is returned when the language is not a valid BCP 47 tag.
	ErrInvalidLanguage = errors.New("invalid language tag")

	// ErrInvalidEndpoint is returned when the NumVerify endpoint is not an absolute URL.
	ErrInvalidEndpoint = errors.New("invalid numverify endpoint: must be an absolute URL")

	// ErrTorProxyWithoutTor is returned when a Tor proxy address is given
	// without enabling Tor.
	ErrTorProxyWithoutTor = errors.New("tor proxy specified without --tor")

	// ErrInvalidTorStartupTimeout is returned when the embedded Tor daemon
	// would be started with a non-positive startup timeout.
	ErrInvalidTorStartupTimeout = errors.New("invalid tor startup timeout: must be positive")
)
