package content

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/blogbuilder/internal/schema"
	"git.home.luguber.info/inful/blogbuilder/internal/slugs"
)

func doc(frontmatter, body string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte("---\n" + frontmatter + "---\n" + body)}
}

func meta(title, date string) schema.Metadata {
	return schema.Metadata{Title: title, Date: date}
}

func TestLoad_ValidContentSet_LoadsAllEntries(t *testing.T) {
	fsys := fstest.MapFS{
		"first-post.md":  doc("title: First Post\ndate: 2025-01-01\ntags:\n  - go\n", "Hello.\n"),
		"second-post.md": doc("title: Second Post\ndate: 2025-03-01\ndescription: More.\n", "World.\n"),
	}

	entries, err := NewLoader(fsys).Load()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	require.Equal(t, "first-post.md", entries[0].SourceName)
	require.Equal(t, "first-post", entries[0].Slug)
	require.Equal(t, "First Post", entries[0].Meta.Title)
	require.Equal(t, []string{"go"}, entries[0].Meta.Tags)
	require.Equal(t, "Hello.\n", string(entries[0].Body))

	require.Equal(t, "second-post", entries[1].Slug)
	require.Equal(t, "More.", entries[1].Meta.Description)
}

func TestLoad_MissingTitle_FailsNamingDocumentAndField(t *testing.T) {
	fsys := fstest.MapFS{
		"good.md":     doc("title: Fine\ndate: 2025-01-01\n", "ok\n"),
		"untitled.md": doc("date: 2025-01-01\n", "body\n"),
	}

	_, err := NewLoader(fsys).Load()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrInvalidDocument)
	require.Contains(t, err.Error(), "untitled.md")
	require.Contains(t, err.Error(), "title")
}

func TestLoad_MalformedDate_Fails(t *testing.T) {
	fsys := fstest.MapFS{
		"bad-date.md": doc("title: Bad\ndate: sometime soon\n", "body\n"),
	}

	_, err := NewLoader(fsys).Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "bad-date.md")
	require.Contains(t, err.Error(), "date")
}

func TestLoad_NoTags_BecomesEmptySlice(t *testing.T) {
	fsys := fstest.MapFS{
		"untagged.md": doc("title: Untagged\ndate: 2025-01-01\n", "body\n"),
	}

	entries, err := NewLoader(fsys).Load()
	require.NoError(t, err)
	require.NotNil(t, entries[0].Meta.Tags)
	require.Empty(t, entries[0].Meta.Tags)
}

func TestLoad_UnknownFrontmatterKeys_Ignored(t *testing.T) {
	fsys := fstest.MapFS{
		"extra.md": doc("title: Extra\ndate: 2025-01-01\nseries: deep-dives\nweight: 3\n", "body\n"),
	}

	entries, err := NewLoader(fsys).Load()
	require.NoError(t, err)
	require.Equal(t, "Extra", entries[0].Meta.Title)
}

func TestLoad_NonMarkdownFiles_Ignored(t *testing.T) {
	fsys := fstest.MapFS{
		"post.md":     doc("title: Post\ndate: 2025-01-01\n", "body\n"),
		"cover.png":   {Data: []byte{0x89, 0x50, 0x4e, 0x47}},
		"notes.txt":   {Data: []byte("scratch")},
		"sub/img.jpg": {Data: []byte{0xff, 0xd8}},
	}

	entries, err := NewLoader(fsys).Load()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "post.md", entries[0].SourceName)
}

func TestLoad_SlugCollision_FailsNamingBothDocuments(t *testing.T) {
	fsys := fstest.MapFS{
		"hello-world.md": doc("title: One\ndate: 2025-01-01\n", "a\n"),
		"hello world.md": doc("title: Two\ndate: 2025-01-02\n", "b\n"),
	}

	_, err := NewLoader(fsys).Load()
	require.Error(t, err)
	require.ErrorIs(t, err, slugs.ErrSlugCollision)
	require.Contains(t, err.Error(), "hello-world.md")
	require.Contains(t, err.Error(), "hello world.md")
}

func TestLoad_Restartable_RepeatedLoadsAreIdentical(t *testing.T) {
	fsys := fstest.MapFS{
		"a.md": doc("title: A\ndate: 2025-03-01\n", "a\n"),
		"b.md": doc("title: B\ndate: 2025-01-01\n", "b\n"),
	}
	loader := NewLoader(fsys)

	first, err := loader.Load()
	require.NoError(t, err)
	second, err := loader.Load()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestByPublication_NewestFirstWithSourceNameTieBreak(t *testing.T) {
	entries := []Entry{
		{SourceName: "b.md", Slug: "b", Meta: meta("B", "2025-03-01")},
		{SourceName: "c.md", Slug: "c", Meta: meta("C", "2025-01-01")},
		{SourceName: "a.md", Slug: "a", Meta: meta("A", "2025-03-01")},
	}

	ordered := ByPublication(entries)
	require.Equal(t, []string{"a.md", "b.md", "c.md"},
		[]string{ordered[0].SourceName, ordered[1].SourceName, ordered[2].SourceName})

	// Input order untouched.
	require.Equal(t, "b.md", entries[0].SourceName)
}
