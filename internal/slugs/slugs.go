// Package slugs derives the URL-safe address of an article from its source
// name and enforces uniqueness across a content set. Published URLs must not
// drift between deployments, so resolution is a pure function of the name.
package slugs

import (
	"errors"
	"fmt"
	"path"
	"strings"

	slug "github.com/goliatone/go-slug"
)

// ErrSlugCollision indicates two distinct source documents resolve to the
// same slug. A duplicate published address would silently shadow one article
// with another, so this is a fatal build error.
var ErrSlugCollision = errors.New("slug collision")

// Resolve derives the slug for a source document name. The file extension is
// stripped and the remainder normalized: lowercase, runs of non-alphanumeric
// characters collapsed to a single hyphen. Identical names always yield
// identical slugs, within and across builds.
func Resolve(sourceName string) (string, error) {
	base := strings.TrimSuffix(sourceName, path.Ext(sourceName))

	s, err := slug.Normalize(base)
	if err != nil {
		return "", fmt.Errorf("normalize slug for %q: %w", sourceName, err)
	}
	if s == "" {
		return "", fmt.Errorf("source name %q resolves to an empty slug", sourceName)
	}
	return s, nil
}

// Source pairs a document's source name with its resolved slug.
type Source struct {
	SourceName string
	Slug       string
}

// CheckUnique verifies no two sources collapsed to the same slug. On
// collision it reports both source names so the author can rename one.
func CheckUnique(sources []Source) error {
	seen := make(map[string]string, len(sources))
	for _, s := range sources {
		if prev, ok := seen[s.Slug]; ok {
			return fmt.Errorf("%w: %q and %q both resolve to %q", ErrSlugCollision, prev, s.SourceName, s.Slug)
		}
		seen[s.Slug] = s.SourceName
	}
	return nil
}
