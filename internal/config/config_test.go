package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blogbuilder.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MinimalConfig_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Test Blog\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Test Blog", cfg.Site.Title)
	require.Equal(t, "en", cfg.Site.Language)
	require.Equal(t, "./content", cfg.Content.Dir)
	require.Equal(t, "./public", cfg.Output.Dir)
	require.True(t, cfg.Output.CleanEnabled())
	require.Equal(t, "rss.xml", cfg.Feed.Path)
	require.Equal(t, "/rss.xsl", cfg.Feed.Stylesheet)
}

func TestLoad_MissingFile_Fails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoad_InvalidYAML_Fails(t *testing.T) {
	path := writeConfig(t, ": not yaml")

	_, err := Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidBaseURL_Fails(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Test\n  base_url: \"not a url\"\n")

	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "base_url")
}

func TestLoad_ExpandsEnvironmentVariables(t *testing.T) {
	t.Setenv("BLOG_BASE_URL", "https://env.example.com")
	path := writeConfig(t, "site:\n  title: Test\n  base_url: \"${BLOG_BASE_URL}\"\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "https://env.example.com", cfg.Site.BaseURL)
}

func TestLoad_CleanDisabled(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Test\noutput:\n  dir: ./out\n  clean: false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	require.False(t, cfg.Output.CleanEnabled())
}

func TestInit_WritesLoadableConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blogbuilder.yaml")

	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "My Blog", cfg.Site.Title)
	require.Equal(t, "https://blog.example.com", cfg.Site.BaseURL)
}

func TestInit_ExistingFileWithoutForce_Fails(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Keep\n")

	err := Init(path, false)
	require.ErrorIs(t, err, ErrConfigExists)
}

func TestInit_ExistingFileWithForce_Overwrites(t *testing.T) {
	path := writeConfig(t, "site:\n  title: Old\n")

	require.NoError(t, Init(path, true))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "My Blog", cfg.Site.Title)
}
