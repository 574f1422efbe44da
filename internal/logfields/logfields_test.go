package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies string-based helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Stage", KeyStage, "render", Stage("render")},
		{"Path", KeyPath, "/tmp/x.docx", Path("/tmp/x.docx")},
		{"Format", KeyFormat, "docx", Format("docx")},
		{"Section", KeySection, "timeline", Section("timeline")},
		{"Error", KeyError, "boom", Error(errors.New("boom"))},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if got := tc.attr.Value.String(); got != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %v", tc.name, tc.attrVal, got)
		}
	}
}

func TestIntHelpers(t *testing.T) {
	if a := Blocks(42); a.Key != KeyBlocks || a.Value.Int64() != 42 {
		t.Fatalf("Blocks: got %v=%v", a.Key, a.Value)
	}
	if a := Bytes(1024); a.Key != KeyBytes || a.Value.Int64() != 1024 {
		t.Fatalf("Bytes: got %v=%v", a.Key, a.Value)
	}
	if a := DurationMS(12.5); a.Key != KeyDurationMS || a.Value.Float64() != 12.5 {
		t.Fatalf("DurationMS: got %v=%v", a.Key, a.Value)
	}
}

func TestErrorNil(t *testing.T) {
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("Error(nil): expected empty value, got %q", got)
	}
}
