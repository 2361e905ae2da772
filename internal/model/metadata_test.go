package model

import "testing"

// TestRemoteMetadataFailed tests the Failed helper.
func TestRemoteMetadataFailed(t *testing.T) {
	t.Parallel()

	t.Run("nil metadata is not a failure", func(t *testing.T) {
		t.Parallel()
		var r *RemoteMetadata
		if r.Failed() {
			t.Error("expected nil metadata not to be a failure")
		}
	})

	t.Run("error metadata is a failure", func(t *testing.T) {
		t.Parallel()
		r := NewRemoteError("timeout")
		if !r.Failed() {
			t.Error("expected error metadata to be a failure")
		}
		if r.Error != "timeout" {
			t.Errorf("expected error 'timeout', got %q", r.Error)
		}
	})

	t.Run("populated metadata is not a failure", func(t *testing.T) {
		t.Parallel()
		valid := true
		r := &RemoteMetadata{Valid: &valid}
		if r.Failed() {
			t.Error("expected populated metadata not to be a failure")
		}
	})
}

// TestIdentityStatusString tests IdentityStatus.String.
func TestIdentityStatusString(t *testing.T) {
	t.Parallel()

	if got := IdentityStatusNotImplemented.String(); got != "not implemented" {
		t.Errorf("expected 'not implemented', got %q", got)
	}
	if got := IdentityStatus("bogus").String(); got != "unknown" {
		t.Errorf("expected 'unknown', got %q", got)
	}
}
