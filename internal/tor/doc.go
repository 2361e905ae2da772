// Package tor routes the remote lookup through the Tor network.
//
// A Client wraps a SOCKS5 dialer from golang.org/x/net/proxy and hands out
// HTTP clients that dial through it. The proxy is either an external Tor
// daemon or one started on demand with tornago (EmbeddedTor). Session ties
// both together for a single run.
//
// The destination is a clearnet API, so TLS certificates are verified as
// usual; Tor only hides the origin of the request.
package tor
