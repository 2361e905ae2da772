package phone

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/nao1215/phoneosint/internal/model"
)

// unknownRegion is the region code libphonenumber uses for "no region".
const unknownRegion = "ZZ"

// Parse builds the candidate "+<countryCode><localNumber>" and normalizes it.
// The digits are not pre-validated; the numbering-plan grammar decides.
// On failure the returned error is a *ParseError.
func Parse(countryCode, localNumber string) (model.CanonicalNumber, error) {
	input := model.RawInput{CountryCode: countryCode, LocalNumber: localNumber}
	return ParseInput(input)
}

// ParseInput is Parse for an already assembled RawInput.
func ParseInput(input model.RawInput) (model.CanonicalNumber, error) {
	candidate := input.Candidate()

	num, err := phonenumbers.Parse(candidate, "")
	if err != nil {
		return model.CanonicalNumber{}, &ParseError{Input: candidate, Err: err}
	}

	return canonicalize(num), nil
}

// canonicalize formats a parsed number in every supported representation.
func canonicalize(num *phonenumbers.PhoneNumber) model.CanonicalNumber {
	return model.CanonicalNumber{
		E164:          phonenumbers.Format(num, phonenumbers.E164),
		International: phonenumbers.Format(num, phonenumbers.INTERNATIONAL),
		National:      phonenumbers.Format(num, phonenumbers.NATIONAL),
		RegionCode:    regionCode(num),
	}
}

// regionCode returns the region for num, or "" when it cannot be determined.
func regionCode(num *phonenumbers.PhoneNumber) string {
	region := phonenumbers.GetRegionCodeForNumber(num)
	if region == unknownRegion {
		return ""
	}
	return region
}
