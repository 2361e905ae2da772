package phone

import (
	"github.com/nyaruka/phonenumbers"

	"github.com/nao1215/phoneosint/internal/model"
)

// DefaultLanguage is the language used for geocoding and carrier names.
const DefaultLanguage = "en"

// numberTypes maps library line types to model values.
var numberTypes = map[phonenumbers.PhoneNumberType]model.NumberType{
	phonenumbers.FIXED_LINE:           model.NumberTypeFixedLine,
	phonenumbers.MOBILE:               model.NumberTypeMobile,
	phonenumbers.FIXED_LINE_OR_MOBILE: model.NumberTypeFixedLineOrMobile,
	phonenumbers.TOLL_FREE:            model.NumberTypeTollFree,
	phonenumbers.PREMIUM_RATE:         model.NumberTypePremiumRate,
	phonenumbers.SHARED_COST:          model.NumberTypeSharedCost,
	phonenumbers.VOIP:                 model.NumberTypeVoIP,
	phonenumbers.PERSONAL_NUMBER:      model.NumberTypePersonalNumber,
	phonenumbers.PAGER:                model.NumberTypePager,
	phonenumbers.UAN:                  model.NumberTypeUAN,
	phonenumbers.VOICEMAIL:            model.NumberTypeVoicemail,
	phonenumbers.UNKNOWN:              model.NumberTypeUnknown,
}

// Resolver derives LocalMetadata from a canonical number.
type Resolver struct {
	// language is the ISO 639-1 code used for country and carrier names.
	language string
}

// NewResolver creates a Resolver that describes numbers in the given
// language. An empty language falls back to DefaultLanguage.
func NewResolver(language string) *Resolver {
	if language == "" {
		language = DefaultLanguage
	}
	return &Resolver{language: language}
}

// Resolve returns everything the numbering-plan database knows about n.
// It never fails: lookups that error out leave their field at the zero
// value, and the number type falls back to UNKNOWN.
func (r *Resolver) Resolve(n model.CanonicalNumber) model.LocalMetadata {
	meta := model.LocalMetadata{
		NumberType: model.NumberTypeUnknown,
		Timezones:  []string{},
	}

	num, err := phonenumbers.Parse(n.E164, "")
	if err != nil {
		return meta
	}

	meta.Valid = phonenumbers.IsValidNumber(num)
	meta.Possible = phonenumbers.IsPossibleNumber(num)
	meta.NumberType = numberType(phonenumbers.GetNumberType(num))
	meta.RegionCode = regionCode(num)

	if country, err := phonenumbers.GetGeocodingForNumber(num, r.language); err == nil {
		meta.CountryName = country
	}
	if carrier, err := phonenumbers.GetCarrierForNumber(num, r.language); err == nil {
		meta.CarrierName = carrier
	}
	if zones, err := phonenumbers.GetTimezonesForNumber(num); err == nil && zones != nil {
		meta.Timezones = append([]string{}, zones...)
	}

	return meta
}

// Resolve is a convenience wrapper around NewResolver(DefaultLanguage).Resolve.
func Resolve(n model.CanonicalNumber) model.LocalMetadata {
	return NewResolver(DefaultLanguage).Resolve(n)
}

// numberType converts a library number type to the model enum.
func numberType(t phonenumbers.PhoneNumberType) model.NumberType {
	if nt, ok := numberTypes[t]; ok {
		return nt
	}
	return model.NumberTypeUnknown
}
