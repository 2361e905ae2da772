package model

// RawInput is the user-supplied pair that starts a lookup.
// CountryCode holds digits only (no leading '+'); LocalNumber is free text.
type RawInput struct {
	// CountryCode is the international calling code, e.g. "91".
	CountryCode string `json:"country_code"`

	// LocalNumber is the subscriber number without the country code.
	LocalNumber string `json:"local_number"`
}

// Candidate returns the string handed to the numbering-plan parser.
func (in RawInput) Candidate() string {
	return "+" + in.CountryCode + in.LocalNumber
}

// CanonicalNumber is the normalized representation of a parsed number.
// All formatted variants are derived from the same library parse, so the
// value is stable for a pinned library version.
type CanonicalNumber struct {
	// E164 is the number in E.164 format, e.g. "+919876543210".
	E164 string `json:"e164"`

	// International is the number in international format, e.g. "+91 98765 43210".
	International string `json:"international"`

	// National is the number in national format, e.g. "098765 43210".
	National string `json:"national"`

	// RegionCode is the ISO 3166-1 alpha-2 region, or empty when it cannot be determined.
	RegionCode string `json:"region_code,omitempty"`
}

// NumberType classifies a number by the kind of line it belongs to.
type NumberType string

// Number types reported by the numbering-plan database.
const (
	NumberTypeFixedLine         NumberType = "FIXED_LINE"
	NumberTypeMobile            NumberType = "MOBILE"
	NumberTypeFixedLineOrMobile NumberType = "FIXED_LINE_OR_MOBILE"
	NumberTypeTollFree          NumberType = "TOLL_FREE"
	NumberTypePremiumRate       NumberType = "PREMIUM_RATE"
	NumberTypeSharedCost        NumberType = "SHARED_COST"
	NumberTypeVoIP              NumberType = "VOIP"
	NumberTypePersonalNumber    NumberType = "PERSONAL_NUMBER"
	NumberTypePager             NumberType = "PAGER"
	NumberTypeUAN               NumberType = "UAN"
	NumberTypeVoicemail         NumberType = "VOICEMAIL"
	NumberTypeUnknown           NumberType = "UNKNOWN"
)

// String returns the string representation of the NumberType.
// The zero value is reported as UNKNOWN.
func (t NumberType) String() string {
	if t == "" {
		return string(NumberTypeUnknown)
	}
	return string(t)
}
