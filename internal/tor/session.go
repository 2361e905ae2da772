package tor

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// SessionConfig configures Open.
type SessionConfig struct {
	// ProxyAddress is an external SOCKS5 proxy. When empty an embedded
	// daemon is started.
	ProxyAddress string

	// StartupTimeout bounds the bootstrap of the embedded daemon.
	StartupTimeout time.Duration

	// Timeout is set on the HTTP client.
	Timeout time.Duration

	// Logger receives progress messages.
	Logger *slog.Logger
}

// Session is a verified Tor proxy for one run.
type Session struct {
	client   *Client
	embedded *EmbeddedTor
}

// Open connects to the configured proxy, starting an embedded daemon if
// none is given, and verifies that it speaks SOCKS5.
func Open(ctx context.Context, cfg SessionConfig) (*Session, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{}
	var (
		client *Client
		err    error
	)
	if cfg.ProxyAddress == "" {
		logger.Warn("starting embedded Tor daemon, this may take a few minutes")
		s.embedded = NewEmbeddedTor(WithStartupTimeout(cfg.StartupTimeout))
		if err := s.embedded.Start(ctx); err != nil {
			return nil, err
		}
		logger.Info("embedded Tor daemon started", "socks", s.embedded.SocksAddr())
		client, err = s.embedded.NewClient(cfg.Timeout)
	} else {
		client, err = NewClient(cfg.ProxyAddress, cfg.Timeout)
	}
	if err != nil {
		_ = s.Close() //nolint:errcheck // already failing
		return nil, err
	}

	if status := client.CheckConnection(ctx); status != ProxyStatusOK {
		_ = s.Close() //nolint:errcheck // already failing
		return nil, fmt.Errorf("tor proxy %s: %w", client.ProxyAddress(), status.Err())
	}
	logger.Debug("tor proxy verified", "proxy", client.ProxyAddress())

	s.client = client
	return s, nil
}

// HTTPClient returns an HTTP client that routes through the session's proxy.
func (s *Session) HTTPClient() *http.Client {
	return s.client.NewHTTPClient()
}

// Close stops the embedded daemon, if any.
func (s *Session) Close() error {
	if s == nil || s.embedded == nil {
		return nil
	}
	return s.embedded.Stop()
}
