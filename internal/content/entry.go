package content

import (
	"sort"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/schema"
)

// Entry is one validated article plus its derived slug.
//
// Entries are immutable once loaded: downstream builders receive the loaded
// collection and must not modify Meta or Body. A changed source document
// becomes a wholly new Entry on the next build; nothing is cached across
// builds.
type Entry struct {
	// SourceName is the document's path relative to the content root.
	// It is stable and unique within a content set.
	SourceName string
	// Slug is the URL-safe address derived from SourceName.
	Slug string
	// Meta is the validated frontmatter record.
	Meta schema.Metadata
	// Body is the raw Markdown content, frontmatter removed, prior to
	// rendering.
	Body []byte
}

// PublishedAt returns the article's publication date.
func (e Entry) PublishedAt() time.Time {
	return e.Meta.PublishedAt()
}

// ByPublication returns a copy of entries ordered by publication date
// descending, ties broken by source name ascending. The index and the feed
// share this ordering.
func ByPublication(entries []Entry) []Entry {
	out := append([]Entry(nil), entries...)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := out[i].PublishedAt(), out[j].PublishedAt()
		if ti.Equal(tj) {
			return out[i].SourceName < out[j].SourceName
		}
		return ti.After(tj)
	})
	return out
}
