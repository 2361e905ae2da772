package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/phoneosint/internal/enrich"
	"github.com/nao1215/phoneosint/internal/model"
	"github.com/nao1215/phoneosint/internal/phone"
	"github.com/nao1215/phoneosint/internal/report"
)

// State carries the intermediate results of one run between steps.
type State struct {
	// Input is the raw user input.
	Input model.RawInput

	// Number is set by ParseStep.
	Number model.CanonicalNumber

	// Local is set by ResolveStep.
	Local model.LocalMetadata

	// Remote is set by EnrichStep; nil when skipped.
	Remote *model.RemoteMetadata

	// Identity is set by IdentityStep; nil when skipped.
	Identity *model.IdentityRecord

	// Links is set by LinksStep.
	Links model.LinkPack
}

// Step is one stage of the pipeline.
// Do returns an error only when the run cannot continue; recoverable
// failures are recorded in the state.
type Step interface {
	Do(ctx context.Context, state *State) error
	Name() string
}

// Pipeline runs the lookup stages in order and assembles the report.
type Pipeline struct {
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// clock supplies the report timestamp.
	clock func() time.Time
}

// settings collects the options before the steps are built.
type settings struct {
	logger      *slog.Logger
	enricher    enrich.Enricher
	identity    enrich.IdentityProvider
	resolver    *phone.Resolver
	clock       func() time.Time
	escapeLinks bool
}

// Option is a function that configures a Pipeline.
type Option func(*settings)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) {
		s.logger = logger
	}
}

// WithEnricher sets the remote validation client. Without it the remote
// lookup is skipped.
func WithEnricher(enricher enrich.Enricher) Option {
	return func(s *settings) {
		s.enricher = enricher
	}
}

// WithIdentityLookup sets the identity provider. Without it the identity
// lookup is skipped.
func WithIdentityLookup(provider enrich.IdentityProvider) Option {
	return func(s *settings) {
		s.identity = provider
	}
}

// WithResolver sets the local metadata resolver.
func WithResolver(resolver *phone.Resolver) Option {
	return func(s *settings) {
		s.resolver = resolver
	}
}

// WithClock sets the source of the report timestamp.
func WithClock(clock func() time.Time) Option {
	return func(s *settings) {
		s.clock = clock
	}
}

// WithEscapedLinks percent-encodes the number in search links.
func WithEscapedLinks(escape bool) Option {
	return func(s *settings) {
		s.escapeLinks = escape
	}
}

// New creates a Pipeline with the standard steps.
func New(opts ...Option) *Pipeline {
	s := &settings{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.clock == nil {
		s.clock = time.Now
	}

	return &Pipeline{
		steps: []Step{
			ParseStep{},
			NewResolveStep(s.resolver),
			NewEnrichStep(s.enricher),
			NewIdentityStep(s.identity),
			NewLinksStep(s.escapeLinks),
		},
		logger: s.logger,
		clock:  s.clock,
	}
}

// Execute runs every step for input and returns the assembled report.
//
// A parse failure is returned as *phone.ParseError and no report is
// produced. Cancellation of ctx is checked between steps.
func (p *Pipeline) Execute(ctx context.Context, input model.RawInput) (*model.Report, error) {
	state := &State{Input: input}
	candidate := input.Candidate()

	for _, step := range p.steps {
		select {
		case <-ctx.Done():
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", ctx.Err(),
			)
			return nil, ctx.Err()
		default:
		}

		p.logger.Info("executing step",
			"step", step.Name(),
			"input", candidate,
		)

		if err := step.Do(ctx, state); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"input", candidate,
				"error", err,
			)
			return nil, err
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"input", candidate,
		)
	}

	return report.Assemble(
		candidate,
		state.Number,
		state.Local,
		state.Remote,
		state.Identity,
		state.Links,
		p.clock(),
	), nil
}
