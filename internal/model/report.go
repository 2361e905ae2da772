package model

import "time"

// Report is the assembled result of one lookup.
// Sections are rendered in a fixed order: header, local metadata, remote
// enrichment, identity lookup, links.
type Report struct {
	// Input is the original candidate string, e.g. "+919876543210".
	Input string `json:"input"`

	// GeneratedAt is the report timestamp in UTC. It is the only
	// non-deterministic part of a report.
	GeneratedAt time.Time `json:"generated_at"`

	// Number is the canonical number the other sections were derived from.
	Number CanonicalNumber `json:"number"`

	// Local holds the offline numbering-plan facts.
	Local LocalMetadata `json:"local"`

	// Remote is nil when the remote lookup was skipped.
	Remote *RemoteMetadata `json:"remote"`

	// Identity is nil when the identity lookup was skipped.
	Identity *IdentityRecord `json:"identity"`

	// Links holds the search links for manual review.
	Links LinkPack `json:"links"`
}

// RemoteSkipped returns true if no remote lookup was attempted.
func (r *Report) RemoteSkipped() bool {
	return r.Remote == nil
}

// IdentitySkipped returns true if no identity lookup was attempted.
func (r *Report) IdentitySkipped() bool {
	return r.Identity == nil
}
