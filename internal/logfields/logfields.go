package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyDocument   = "document"
	KeyField      = "field"
	KeySlug       = "slug"
	KeyPath       = "path"
	KeyCount      = "count"
	KeyOutput     = "output"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Document(name string) slog.Attr  { return slog.String(KeyDocument, name) }
func Field(name string) slog.Attr     { return slog.String(KeyField, name) }
func Slug(s string) slog.Attr         { return slog.String(KeySlug, s) }
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func Count(n int) slog.Attr           { return slog.Int(KeyCount, n) }
func Output(dir string) slog.Attr     { return slog.String(KeyOutput, dir) }
func DurationMS(ms int64) slog.Attr   { return slog.Int64(KeyDurationMS, ms) }

func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
