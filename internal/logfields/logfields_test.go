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
		{"RunID", KeyRunID, "abc", RunID("abc")},
		{"RunDate", KeyRunDate, "2026-01-15", RunDate("2026-01-15")},
		{"Kind", KeyKind, "vs", Kind("vs")},
		{"Axis", KeyAxis, "competitors", Axis("competitors")},
		{"Slug", KeySlug, "erase-bg", Slug("erase-bg")},
		{"Path", KeyPath, "vs/erase-bg/index.html", Path("vs/erase-bg/index.html")},
		{"URL", KeyURL, "https://example.test/vs/x/", URL("https://example.test/vs/x/")},
		{"Stage", KeyStage, "render", Stage("render")},
		{"OutputRoot", KeyOutputRoot, "./public", OutputRoot("./public")},
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

func TestNumericHelpers(t *testing.T) {
	if v := Pages(5); v.Key != KeyPages || v.Value.Int64() != 5 {
		t.Fatalf("Pages mismatch: %v", v)
	}
	if v := DurationMS(12.5); v.Key != KeyDurationMS {
		t.Fatalf("DurationMS key mismatch: %s", v.Key)
	}
}

// TestErrorHelper ensures Error() handles nil and non-nil errors predictably.
func TestErrorHelper(t *testing.T) {
	attr := Error(nil)
	if attr.Key != KeyError || attr.Value.String() != "" {
		t.Fatalf("unexpected nil error attr: %v", attr)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("expected boom, got %s", got)
	}
}
