package pipeline

import (
	"context"

	"github.com/nao1215/phoneosint/internal/enrich"
	"github.com/nao1215/phoneosint/internal/links"
	"github.com/nao1215/phoneosint/internal/phone"
)

// Step names, in execution order.
const (
	StepParse     = "parse"
	StepResolve   = "resolve"
	StepNumVerify = "numverify"
	StepIdentity  = "identity"
	StepLinks     = "links"
)

// ParseStep normalizes the raw input. Its error aborts the pipeline.
type ParseStep struct{}

// Name returns the step name.
func (ParseStep) Name() string { return StepParse }

// Do parses state.Input into state.Number.
func (ParseStep) Do(_ context.Context, state *State) error {
	n, err := phone.ParseInput(state.Input)
	if err != nil {
		return err
	}
	state.Number = n
	return nil
}

// ResolveStep looks up the offline numbering-plan metadata.
type ResolveStep struct {
	resolver *phone.Resolver
}

// NewResolveStep creates a ResolveStep. A nil resolver uses the default language.
func NewResolveStep(resolver *phone.Resolver) *ResolveStep {
	if resolver == nil {
		resolver = phone.NewResolver("")
	}
	return &ResolveStep{resolver: resolver}
}

// Name returns the step name.
func (s *ResolveStep) Name() string { return StepResolve }

// Do fills state.Local.
func (s *ResolveStep) Do(_ context.Context, state *State) error {
	state.Local = s.resolver.Resolve(state.Number)
	return nil
}

// EnrichStep queries the remote validation service.
type EnrichStep struct {
	enricher enrich.Enricher
}

// NewEnrichStep creates an EnrichStep. With a nil enricher the lookup is skipped.
func NewEnrichStep(enricher enrich.Enricher) *EnrichStep {
	return &EnrichStep{enricher: enricher}
}

// Name returns the step name.
func (s *EnrichStep) Name() string { return StepNumVerify }

// Do fills state.Remote. Failures are recorded in the metadata, not returned.
func (s *EnrichStep) Do(ctx context.Context, state *State) error {
	if s.enricher == nil {
		return nil
	}
	state.Remote = s.enricher.Lookup(ctx, state.Number.E164)
	return nil
}

// IdentityStep queries the third-party identity provider.
type IdentityStep struct {
	provider enrich.IdentityProvider
}

// NewIdentityStep creates an IdentityStep. With a nil provider the lookup is skipped.
func NewIdentityStep(provider enrich.IdentityProvider) *IdentityStep {
	return &IdentityStep{provider: provider}
}

// Name returns the step name.
func (s *IdentityStep) Name() string { return StepIdentity }

// Do fills state.Identity.
func (s *IdentityStep) Do(ctx context.Context, state *State) error {
	if s.provider == nil {
		return nil
	}
	state.Identity = s.provider.Lookup(ctx, state.Number.E164)
	return nil
}

// LinksStep builds the search links from the national format.
type LinksStep struct {
	escape bool
}

// NewLinksStep creates a LinksStep. escape percent-encodes the number.
func NewLinksStep(escape bool) *LinksStep {
	return &LinksStep{escape: escape}
}

// Name returns the step name.
func (s *LinksStep) Name() string { return StepLinks }

// Do fills state.Links.
func (s *LinksStep) Do(_ context.Context, state *State) error {
	if s.escape {
		state.Links = links.BuildEscaped(state.Number.National)
	} else {
		state.Links = links.Build(state.Number.National)
	}
	return nil
}
