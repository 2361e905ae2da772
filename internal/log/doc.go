// Package log provides secure logging built on the standard slog package.
//
// SecureHandler wraps another slog.Handler and masks credentials before
// they are written:
//   - attributes whose key names a credential (access_key, api_key, token, ...)
//   - values that look like credentials (bearer tokens, JWTs, long keys)
//   - access_key and similar query parameters inside URLs and error texts
//
// The NumVerify API takes its key as a query parameter, so request URLs are
// the main way a credential could leak into a log line. Even in verbose
// mode these values are masked.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	logger.Debug("numverify lookup", "url", "http://apilayer.net/api/validate?access_key=abc&number=%2B1")
//	// url=http://apilayer.net/api/validate?access_key=***REDACTED***&number=%2B1
package log
