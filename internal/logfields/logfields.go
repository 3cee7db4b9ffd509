package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyRunDate    = "run_date"
	KeyKind       = "kind"
	KeyAxis       = "axis"
	KeySlug       = "slug"
	KeyPath       = "path"
	KeyURL        = "url"
	KeyPages      = "pages"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyOutputRoot = "output_root"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func RunDate(d string) slog.Attr       { return slog.String(KeyRunDate, d) }
func Kind(k string) slog.Attr          { return slog.String(KeyKind, k) }
func Axis(a string) slog.Attr          { return slog.String(KeyAxis, a) }
func Slug(s string) slog.Attr          { return slog.String(KeySlug, s) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func URL(u string) slog.Attr           { return slog.String(KeyURL, u) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func OutputRoot(root string) slog.Attr { return slog.String(KeyOutputRoot, root) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
