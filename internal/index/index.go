// Package index produces the ordered article listing consumed by the /blog/
// route.
package index

import (
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/content"
)

// Summary is one listing row. It deliberately excludes the article body so
// listings stay small regardless of article length.
type Summary struct {
	Title       string
	Slug        string
	Description string
	PublishedAt time.Time
	Tags        []string
	CoverImage  string
}

// Build produces summaries ordered by publication date descending, ties
// broken by source name ascending. Tag order and duplicates are preserved
// exactly; order is significant for display.
func Build(entries []content.Entry) []Summary {
	ordered := content.ByPublication(entries)

	summaries := make([]Summary, len(ordered))
	for i, e := range ordered {
		summaries[i] = Summary{
			Title:       e.Meta.Title,
			Slug:        e.Slug,
			Description: e.Meta.Description,
			PublishedAt: e.PublishedAt(),
			Tags:        append([]string(nil), e.Meta.Tags...),
			CoverImage:  e.Meta.Image,
		}
	}
	return summaries
}
