package enrich

import (
	"context"

	"github.com/nao1215/phoneosint/internal/model"
)

// AadhaarProvider is the identity provider name shown in reports.
const AadhaarProvider = "Aadhaar"

// IdentityProvider looks up identity records linked to a number.
// A nil record means the lookup was skipped.
type IdentityProvider interface {
	Lookup(ctx context.Context, e164 string) *model.IdentityRecord
}

// IdentityLookup is the Aadhaar identity provider. There is no live
// integration: with a credential it reports IdentityStatusNotImplemented
// rather than inventing data.
type IdentityLookup struct {
	apiKey string
}

// NewIdentityLookup creates an IdentityLookup for the given credential.
func NewIdentityLookup(apiKey string) *IdentityLookup {
	return &IdentityLookup{apiKey: apiKey}
}

// Enabled returns true if the lookup has a credential.
func (l *IdentityLookup) Enabled() bool {
	return l != nil && l.apiKey != ""
}

// Lookup returns nil without a credential, otherwise the NotImplemented record.
func (l *IdentityLookup) Lookup(_ context.Context, _ string) *model.IdentityRecord {
	if !l.Enabled() {
		return nil
	}
	return &model.IdentityRecord{
		Provider: AadhaarProvider,
		Status:   model.IdentityStatusNotImplemented,
		Note:     "no live integration is available for this provider",
	}
}
