// Package enrich provides the optional network-backed lookups that add to
// the offline metadata of a phone number.
//
// Two lookups are available:
//   - NumVerifyClient: queries the NumVerify validation API (apilayer)
//   - IdentityLookup: a third-party identity provider with no live integration
//
// Both are keyed by a credential. When the credential is empty the lookup
// returns nil without any I/O, and the report marks the section as skipped.
// Failures never escape as errors: they are folded into the returned record
// so the report can show them next to the data that did resolve.
//
// All network access goes through an injected *http.Client, which lets the
// CLI route requests through Tor and lets tests use fake transports.
package enrich
