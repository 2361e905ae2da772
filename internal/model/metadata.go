package model

// LocalMetadata holds everything the numbering-plan database knows about a
// number without touching the network.
//
// The database does not short-circuit on invalid numbers: when Valid is
// false the remaining fields may still be populated, and consumers must not
// assume they are empty.
type LocalMetadata struct {
	// Valid reports whether the number matches a known, assigned range.
	Valid bool `json:"valid"`

	// Possible reports whether the number has a plausible length for its region.
	Possible bool `json:"possible"`

	// NumberType is the line type; NumberTypeUnknown when undetermined.
	NumberType NumberType `json:"number_type"`

	// RegionCode is the ISO 3166-1 alpha-2 region of the number.
	RegionCode string `json:"region_code"`

	// CountryName is the geographic description (country or area).
	CountryName string `json:"country_name"`

	// CarrierName is the original carrier the number range was assigned to.
	// Numbers may have been ported, so this is a guess.
	CarrierName string `json:"carrier_name"`

	// Timezones lists the IANA time zones the number may belong to.
	Timezones []string `json:"timezones"`
}

// RemoteMetadata is the normalized answer of the remote validation API.
//
// A nil *RemoteMetadata means the lookup was skipped because no credential
// is configured. A non-empty Error means the lookup failed. Otherwise each
// pointer field is nil when the upstream payload did not contain it.
type RemoteMetadata struct {
	// Error describes why the lookup failed. Empty on success.
	Error string `json:"error,omitempty"`

	Valid               *bool   `json:"valid,omitempty"`
	Number              *string `json:"number,omitempty"`
	LocalFormat         *string `json:"local_format,omitempty"`
	InternationalFormat *string `json:"international_format,omitempty"`
	CountryCode         *string `json:"country_code,omitempty"`
	CountryName         *string `json:"country_name,omitempty"`
	Location            *string `json:"location,omitempty"`
	Carrier             *string `json:"carrier,omitempty"`
	LineType            *string `json:"line_type,omitempty"`
}

// NewRemoteError returns a RemoteMetadata that carries only an error message.
func NewRemoteError(msg string) *RemoteMetadata {
	return &RemoteMetadata{Error: msg}
}

// Failed returns true if the remote lookup did not produce data.
func (r *RemoteMetadata) Failed() bool {
	return r != nil && r.Error != ""
}

// IdentityStatus is the outcome of a third-party identity lookup.
type IdentityStatus string

// IdentityStatusNotImplemented marks a provider that is configured but has
// no live integration. Reports show this status instead of placeholder data.
const IdentityStatusNotImplemented IdentityStatus = "not_implemented"

// String returns a human-readable description of the status.
func (s IdentityStatus) String() string {
	switch s {
	case IdentityStatusNotImplemented:
		return "not implemented"
	default:
		return "unknown"
	}
}

// IdentityRecord is the result of a third-party identity lookup.
// A nil *IdentityRecord means the lookup was skipped.
type IdentityRecord struct {
	// Provider names the identity service, e.g. "Aadhaar".
	Provider string `json:"provider"`

	// Status is the lookup outcome.
	Status IdentityStatus `json:"status"`

	// Note is a free-form explanation shown next to the status.
	Note string `json:"note,omitempty"`
}
