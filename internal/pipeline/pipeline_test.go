package pipeline

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/nao1215/phoneosint/internal/enrich"
	"github.com/nao1215/phoneosint/internal/model"
	"github.com/nao1215/phoneosint/internal/phone"
)

var fixedTime = time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeEnricher records calls and returns a canned result.
type fakeEnricher struct {
	result *model.RemoteMetadata
	calls  []string
}

func (f *fakeEnricher) Lookup(_ context.Context, e164 string) *model.RemoteMetadata {
	f.calls = append(f.calls, e164)
	return f.result
}

// fakeIdentity records calls and returns a canned record.
type fakeIdentity struct {
	result *model.IdentityRecord
	calls  int
}

func (f *fakeIdentity) Lookup(context.Context, string) *model.IdentityRecord {
	f.calls++
	return f.result
}

func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("runs the steps in a fixed order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))
		p := New(WithLogger(logger), WithClock(fixedClock))
		if _, err := p.Execute(t.Context(), model.RawInput{CountryCode: "91", LocalNumber: "9876543210"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var got []string
		for _, line := range strings.Split(buf.String(), "\n") {
			if !strings.Contains(line, "msg=\"executing step\"") {
				continue
			}
			for _, field := range strings.Fields(line) {
				if name, ok := strings.CutPrefix(field, "step="); ok {
					got = append(got, name)
				}
			}
		}

		want := []string{StepParse, StepResolve, StepNumVerify, StepIdentity, StepLinks}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("executed steps mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("Indian mobile number without credentials", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(discardLogger()), WithClock(fixedClock))
		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "91", LocalNumber: "9876543210"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if r.Input != "+919876543210" {
			t.Errorf("expected input +919876543210, got %s", r.Input)
		}
		if r.Number.E164 != "+919876543210" {
			t.Errorf("expected E164 +919876543210, got %s", r.Number.E164)
		}
		if r.Local.RegionCode != "IN" {
			t.Errorf("expected region IN, got %s", r.Local.RegionCode)
		}
		if !r.Local.Valid {
			t.Error("expected number to be valid")
		}
		if r.Local.NumberType != model.NumberTypeMobile {
			t.Errorf("expected number type MOBILE, got %s", r.Local.NumberType)
		}
		if !r.RemoteSkipped() || !r.IdentitySkipped() {
			t.Error("expected both lookups to be skipped")
		}
		if len(r.Links) != 5 {
			t.Errorf("expected 5 links, got %d", len(r.Links))
		}
		if !r.GeneratedAt.Equal(fixedTime) {
			t.Errorf("expected timestamp %v, got %v", fixedTime, r.GeneratedAt)
		}
	})

	t.Run("invalid but parseable number still produces a report", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(discardLogger()), WithClock(fixedClock))
		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "1", LocalNumber: "5555555555"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if r.Number.E164 != "+15555555555" {
			t.Errorf("expected E164 +15555555555, got %s", r.Number.E164)
		}
		if r.Local.Valid {
			t.Error("expected number to be invalid")
		}
		if len(r.Links) != 5 {
			t.Errorf("expected 5 links, got %d", len(r.Links))
		}
		if !r.RemoteSkipped() || !r.IdentitySkipped() {
			t.Error("expected both lookups to be skipped")
		}
	})

	t.Run("parse failure returns ParseError and skips later steps", func(t *testing.T) {
		t.Parallel()

		enricher := &fakeEnricher{}
		identity := &fakeIdentity{}
		p := New(
			WithLogger(discardLogger()),
			WithEnricher(enricher),
			WithIdentityLookup(identity),
		)

		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "abc", LocalNumber: "9876543210"})
		if r != nil {
			t.Errorf("expected no report, got %+v", r)
		}
		var parseErr *phone.ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *phone.ParseError, got %v", err)
		}
		if len(enricher.calls) != 0 || identity.calls != 0 {
			t.Error("expected no lookups after a parse failure")
		}
	})

	t.Run("passes the E.164 form to the lookups", func(t *testing.T) {
		t.Parallel()

		enricher := &fakeEnricher{result: &model.RemoteMetadata{}}
		identity := &fakeIdentity{result: &model.IdentityRecord{Provider: enrich.AadhaarProvider}}
		p := New(
			WithLogger(discardLogger()),
			WithEnricher(enricher),
			WithIdentityLookup(identity),
			WithClock(fixedClock),
		)

		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "44", LocalNumber: "2079460000"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff([]string{"+442079460000"}, enricher.calls); diff != "" {
			t.Errorf("enricher calls mismatch (-want +got):\n%s", diff)
		}
		if identity.calls != 1 {
			t.Errorf("expected 1 identity lookup, got %d", identity.calls)
		}
		if r.Remote != enricher.result || r.Identity != identity.result {
			t.Error("expected lookup results to be kept in the report")
		}
	})

	t.Run("remote failure is kept in the report", func(t *testing.T) {
		t.Parallel()

		enricher := &fakeEnricher{result: model.NewRemoteError("connection refused")}
		p := New(WithLogger(discardLogger()), WithEnricher(enricher))

		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "91", LocalNumber: "9876543210"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.Remote.Failed() {
			t.Errorf("expected failed remote metadata, got %+v", r.Remote)
		}
	})

	t.Run("client without a key makes the remote lookup skipped", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(discardLogger()), WithEnricher(enrich.NewNumVerifyClient("")))
		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "91", LocalNumber: "9876543210"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !r.RemoteSkipped() {
			t.Errorf("expected skipped remote lookup, got %+v", r.Remote)
		}
	})

	t.Run("escaped links percent-encode the national format", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(discardLogger()), WithEscapedLinks(true))
		r, err := p.Execute(t.Context(), model.RawInput{CountryCode: "1", LocalNumber: "5555555555"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, l := range r.Links {
			if strings.Contains(l.URL, " ") {
				t.Errorf("expected no raw spaces in %s", l.URL)
			}
		}
	})

	t.Run("is deterministic for the same input and clock", func(t *testing.T) {
		t.Parallel()

		input := model.RawInput{CountryCode: "91", LocalNumber: "9876543210"}
		a, errA := New(WithLogger(discardLogger()), WithClock(fixedClock)).Execute(t.Context(), input)
		b, errB := New(WithLogger(discardLogger()), WithClock(fixedClock)).Execute(t.Context(), input)
		if errA != nil || errB != nil {
			t.Fatalf("unexpected errors: %v, %v", errA, errB)
		}
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("reports differ (-a +b):\n%s", diff)
		}
	})

	t.Run("cancelled context stops the pipeline", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		_, err := New(WithLogger(discardLogger())).Execute(ctx, model.RawInput{CountryCode: "91", LocalNumber: "9876543210"})
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("logs each step", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		if _, err := New(WithLogger(logger)).Execute(t.Context(), model.RawInput{CountryCode: "91", LocalNumber: "9876543210"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		for _, name := range []string{StepParse, StepResolve, StepNumVerify, StepIdentity, StepLinks} {
			if !strings.Contains(output, "step="+name) {
				t.Errorf("expected step %s to be logged:\n%s", name, output)
			}
		}
		if got := strings.Count(output, "step completed"); got != 5 {
			t.Errorf("expected 5 completed steps, got %d", got)
		}
	})
}
