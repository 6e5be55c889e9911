package content

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"sort"
	"strings"

	fm "github.com/adrg/frontmatter"

	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/schema"
	"git.home.luguber.info/inful/blogbuilder/internal/slugs"
)

// markdownExt is the only recognized document extension; anything else in
// the content set is ignored rather than treated as an error.
const markdownExt = ".md"

var (
	// ErrContentWalkFailed indicates filesystem traversal of the content
	// directory failed.
	ErrContentWalkFailed = errors.New("content directory walk failed")

	// ErrInvalidDocument indicates a document failed frontmatter parsing or
	// schema validation. The wrapped error names the document and field.
	ErrInvalidDocument = errors.New("invalid document")
)

// Loader discovers and parses all articles in a content set. Each build
// re-scans from scratch; the Loader holds no state between Load calls.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader over the given content filesystem root.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// Load walks the content set, parses every Markdown document into an Entry,
// and validates frontmatter and slug uniqueness. It fails fast: a single
// malformed document aborts the whole load so it cannot silently vanish
// from the index or feed.
func (l *Loader) Load() ([]Entry, error) {
	var entries []Entry

	walkErr := fs.WalkDir(l.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrContentWalkFailed, p, err)
		}
		if d.IsDir() {
			return nil
		}
		if !strings.EqualFold(path.Ext(p), markdownExt) {
			slog.Debug("Skipping non-markdown file", logfields.Path(p))
			return nil
		}

		entry, err := l.loadDocument(p)
		if err != nil {
			return err
		}
		entries = append(entries, *entry)
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	// WalkDir visits lexically, but keep the invariant explicit: the loaded
	// collection is deterministic regardless of filesystem order.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SourceName < entries[j].SourceName
	})

	sources := make([]slugs.Source, len(entries))
	for i, e := range entries {
		sources[i] = slugs.Source{SourceName: e.SourceName, Slug: e.Slug}
	}
	if err := slugs.CheckUnique(sources); err != nil {
		return nil, err
	}

	slog.Info("Content set loaded", logfields.Count(len(entries)))
	return entries, nil
}

func (l *Loader) loadDocument(p string) (*Entry, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("open document %s: %w", p, err)
	}
	defer f.Close()

	var meta schema.Metadata
	body, err := fm.Parse(f, &meta)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: parse frontmatter: %w", ErrInvalidDocument, p, err)
	}

	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, p, err)
	}
	if meta.Tags == nil {
		meta.Tags = []string{}
	}

	slug, err := slugs.Resolve(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidDocument, p, err)
	}

	slog.Debug("Document loaded", logfields.Document(p), logfields.Slug(slug))

	return &Entry{
		SourceName: p,
		Slug:       slug,
		Meta:       meta,
		Body:       body,
	}, nil
}
