package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/nao1215/phoneosint/internal/model"
)

const (
	// DefaultNumVerifyURL is the NumVerify validation endpoint. The free
	// plan only serves plain HTTP.
	DefaultNumVerifyURL = "http://apilayer.net/api/validate"

	// DefaultTimeout bounds the single request made per lookup.
	DefaultTimeout = 10 * time.Second

	// maxResponseSize caps how much of the response body is read.
	maxResponseSize = 1 << 20

	// fallbackErrorInfo is reported when the upstream error object has no info text.
	fallbackErrorInfo = "API Error"

	// redactedKey replaces the access key in URLs that reach logs or reports.
	redactedKey = "REDACTED"
)

// Enricher looks up a number in a remote validation service.
// Implementations return nil when the lookup is not configured and never
// return a Go error: failures are reported through RemoteMetadata.Error.
type Enricher interface {
	Lookup(ctx context.Context, e164 string) *model.RemoteMetadata
}

// NumVerifyClient is the Enricher backed by the NumVerify API.
type NumVerifyClient struct {
	// apiKey is the access_key query parameter. Empty disables the client.
	apiKey string

	// baseURL is the validation endpoint.
	baseURL string

	// client performs the HTTP request.
	client *http.Client

	// timeout bounds the request, including reading the body.
	timeout time.Duration

	// logger for structured logging.
	logger *slog.Logger
}

// NumVerifyOption configures a NumVerifyClient.
type NumVerifyOption func(*NumVerifyClient)

// WithBaseURL overrides the validation endpoint.
func WithBaseURL(baseURL string) NumVerifyOption {
	return func(c *NumVerifyClient) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithHTTPClient sets the HTTP client, e.g. one that dials through Tor.
func WithHTTPClient(client *http.Client) NumVerifyOption {
	return func(c *NumVerifyClient) {
		if client != nil {
			c.client = client
		}
	}
}

// WithTimeout sets the request timeout.
func WithTimeout(timeout time.Duration) NumVerifyOption {
	return func(c *NumVerifyClient) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) NumVerifyOption {
	return func(c *NumVerifyClient) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewNumVerifyClient creates a client for the given access key.
func NewNumVerifyClient(apiKey string, opts ...NumVerifyOption) *NumVerifyClient {
	c := &NumVerifyClient{
		apiKey:  apiKey,
		baseURL: DefaultNumVerifyURL,
		client:  &http.Client{},
		timeout: DefaultTimeout,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Enabled returns true if the client has a credential.
func (c *NumVerifyClient) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Lookup validates e164 against NumVerify with exactly one request.
//
// Without a credential it returns nil and performs no I/O. Transport
// errors, timeouts and undecodable bodies come back as an error record, as
// does an "error" object in the response body.
func (c *NumVerifyClient) Lookup(ctx context.Context, e164 string) *model.RemoteMetadata {
	if !c.Enabled() {
		return nil
	}

	endpoint, err := c.endpoint(e164, c.apiKey)
	if err != nil {
		return model.NewRemoteError(err.Error())
	}
	redacted, _ := c.endpoint(e164, redactedKey) //nolint:errcheck // same base URL already parsed above

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return model.NewRemoteError(redactURLError(err, redacted).Error())
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("numverify lookup", "number", e164, "url", redacted)

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("numverify request failed", "number", e164, "error", redactURLError(err, redacted))
		return model.NewRemoteError(redactURLError(err, redacted).Error())
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return model.NewRemoteError(fmt.Sprintf("failed to read response: %v", err))
	}

	return decodeNumVerify(resp.StatusCode, body)
}

// endpoint builds the request URL with the given key.
func (c *NumVerifyClient) endpoint(e164, key string) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid numverify URL: %w", err)
	}
	q := u.Query()
	q.Set("access_key", key)
	q.Set("number", e164)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// redactURLError rewrites the URL inside a *url.Error so the access key
// never reaches logs or the report.
func redactURLError(err error, redacted string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: redacted, Err: urlErr.Err}
	}
	return err
}

// decodeNumVerify maps a response body to RemoteMetadata.
// Fields missing from the payload stay nil.
func decodeNumVerify(status int, body []byte) *model.RemoteMetadata {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.NewRemoteError(fmt.Sprintf("failed to decode response (HTTP %d): %v", status, err))
	}

	if raw, ok := payload["error"]; ok {
		return model.NewRemoteError(errorInfo(raw))
	}

	return &model.RemoteMetadata{
		Valid:               boolField(payload, "valid"),
		Number:              stringField(payload, "number"),
		LocalFormat:         stringField(payload, "local_format"),
		InternationalFormat: stringField(payload, "international_format"),
		CountryCode:         stringField(payload, "country_code"),
		CountryName:         stringField(payload, "country_name"),
		Location:            stringField(payload, "location"),
		Carrier:             stringField(payload, "carrier"),
		LineType:            stringField(payload, "line_type"),
	}
}

// errorInfo extracts error.info from an upstream error object.
func errorInfo(raw json.RawMessage) string {
	var obj struct {
		Info string `json:"info"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil || obj.Info == "" {
		return fallbackErrorInfo
	}
	return obj.Info
}

// boolField returns the boolean at key, or nil if absent, null or not a bool.
func boolField(payload map[string]json.RawMessage, key string) *bool {
	raw, ok := payload[key]
	if !ok {
		return nil
	}
	var v *bool
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

// stringField returns the value at key as a string, or nil if absent or null.
// Non-string scalars keep their JSON text, so a numeric country_code of 91
// becomes "91".
func stringField(payload map[string]json.RawMessage, key string) *string {
	raw, ok := payload[key]
	if !ok {
		return nil
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	text := string(raw)
	return &text
}
