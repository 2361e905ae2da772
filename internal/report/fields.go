package report

import (
	"strconv"
	"strings"

	"github.com/nao1215/phoneosint/internal/model"
)

// Section titles, shared by every writer.
const (
	TitleReport   = "Phone OSINT Report"
	TitleLocal    = "Validation & Metadata (Local)"
	TitleRemote   = "NumVerify API"
	TitleIdentity = "Aadhaar Lookup"
	TitleLinks    = "Useful Links"
)

const (
	// SkippedText replaces a section whose lookup had no credential.
	SkippedText = "Skipped (no API key)"

	// missingValue is printed for values that are empty or absent.
	missingValue = "-"
)

// field is one labelled line of a report section.
type field struct {
	label string
	value string
}

// localFields lists the local metadata section.
func localFields(r *model.Report) []field {
	return []field{
		{"Valid", strconv.FormatBool(r.Local.Valid)},
		{"Possible", strconv.FormatBool(r.Local.Possible)},
		{"Type", r.Local.NumberType.String()},
		{"Region Code", orMissing(r.Local.RegionCode)},
		{"Country/Area", orMissing(r.Local.CountryName)},
		{"Carrier (DB)", orMissing(r.Local.CarrierName)},
		{"Time Zone(s)", orMissing(strings.Join(r.Local.Timezones, ", "))},
		{"Format E.164", orMissing(r.Number.E164)},
		{"Format Intl.", orMissing(r.Number.International)},
		{"Format Nat.", orMissing(r.Number.National)},
	}
}

// remoteFields lists a successful remote lookup.
func remoteFields(m *model.RemoteMetadata) []field {
	valid := missingValue
	if m.Valid != nil {
		valid = strconv.FormatBool(*m.Valid)
	}
	return []field{
		{"Valid", valid},
		{"Number", deref(m.Number)},
		{"Local Format", deref(m.LocalFormat)},
		{"International Format", deref(m.InternationalFormat)},
		{"Country Code", deref(m.CountryCode)},
		{"Country Name", deref(m.CountryName)},
		{"Location", deref(m.Location)},
		{"Carrier (API)", deref(m.Carrier)},
		{"Line Type", deref(m.LineType)},
	}
}

// identityFields lists an identity record.
func identityFields(rec *model.IdentityRecord) []field {
	return []field{
		{"Provider", orMissing(rec.Provider)},
		{"Status", rec.Status.String()},
		{"Note", orMissing(rec.Note)},
	}
}

func orMissing(s string) string {
	if s == "" {
		return missingValue
	}
	return s
}

func deref(s *string) string {
	if s == nil {
		return missingValue
	}
	return orMissing(*s)
}
