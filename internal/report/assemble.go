package report

import (
	"slices"
	"time"

	"github.com/nao1215/phoneosint/internal/model"
)

// TimestampLayout is the layout of the report timestamp.
const TimestampLayout = "2006-01-02 15:04 UTC"

// Assemble combines the results of a lookup into a report.
//
// It never fails and does not interpret its inputs: a nil remote or
// identity record is kept as nil and rendered as skipped. now is converted
// to UTC and is the only input that varies between runs.
func Assemble(
	original string,
	number model.CanonicalNumber,
	local model.LocalMetadata,
	remote *model.RemoteMetadata,
	identity *model.IdentityRecord,
	pack model.LinkPack,
	now time.Time,
) *model.Report {
	local.Timezones = slices.Clone(local.Timezones)
	if local.Timezones == nil {
		local.Timezones = []string{}
	}

	return &model.Report{
		Input:       original,
		GeneratedAt: now.UTC(),
		Number:      number,
		Local:       local,
		Remote:      remote,
		Identity:    identity,
		Links:       slices.Clone(pack),
	}
}

// FormatTimestamp formats t with TimestampLayout in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
