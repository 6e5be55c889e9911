package slugs

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve_StripsExtensionAndNormalizes(t *testing.T) {
	cases := map[string]string{
		"hello-world.md": "hello-world",
		"Hello World.md": "hello-world",
	}

	for in, want := range cases {
		got, err := Resolve(in)
		require.NoError(t, err, "resolve %q", in)
		require.Equal(t, want, got, "resolve %q", in)
	}
}

func TestResolve_OddInputs_ProduceURLSafeSlugs(t *testing.T) {
	for _, in := range []string{"What's New??.md", "2025/Release Notes.md", "UPPER_case  name.md"} {
		got, err := Resolve(in)
		require.NoError(t, err, "resolve %q", in)
		require.NotEmpty(t, got)
		require.Equal(t, strings.ToLower(got), got, "slug must be lowercase: %q", got)
		require.NotContains(t, got, " ")
		require.NotContains(t, got, "?")
		require.NotContains(t, got, "'")
	}
}

func TestResolve_Idempotent(t *testing.T) {
	first, err := Resolve("My Article.md")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Resolve("My Article.md")
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

func TestResolve_EmptyResult_Fails(t *testing.T) {
	_, err := Resolve(".md")
	require.Error(t, err)
}

func TestCheckUnique_NoCollision_Passes(t *testing.T) {
	err := CheckUnique([]Source{
		{SourceName: "a.md", Slug: "a"},
		{SourceName: "b.md", Slug: "b"},
	})
	require.NoError(t, err)
}

func TestCheckUnique_Collision_NamesBothSources(t *testing.T) {
	err := CheckUnique([]Source{
		{SourceName: "hello-world.md", Slug: "hello-world"},
		{SourceName: "Hello World.md", Slug: "hello-world"},
	})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrSlugCollision)
	require.Contains(t, err.Error(), "hello-world.md")
	require.Contains(t, err.Error(), "Hello World.md")
}
