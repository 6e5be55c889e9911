// Package site orchestrates a full build: load and validate the content
// set, render article pages, and emit the index, feed, and manifest
// artifacts. Every build is a fresh pipeline run with no state carried over.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/config"
	"git.home.luguber.info/inful/blogbuilder/internal/content"
	"git.home.luguber.info/inful/blogbuilder/internal/feed"
	"git.home.luguber.info/inful/blogbuilder/internal/index"
	"git.home.luguber.info/inful/blogbuilder/internal/logfields"
	"git.home.luguber.info/inful/blogbuilder/internal/render"
)

// Generator runs the content pipeline and writes artifacts.
type Generator struct {
	cfg      *config.Config
	renderer *render.Renderer
}

// NewGenerator creates a Generator for the given configuration.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg:      cfg,
		renderer: render.New(),
	}
}

// Result summarizes a completed build.
type Result struct {
	Entries  int
	Outputs  []Output
	Manifest Manifest
}

// artifact is one output file, fully materialized before anything is
// written. All fatal errors surface while assembling artifacts, so a failed
// build never leaves a partially published site behind.
type artifact struct {
	relPath string
	kind    string
	data    []byte
}

// Build runs the whole pipeline. Any schema violation, slug collision, or
// feed error aborts the build before the first byte reaches the output
// directory.
func (g *Generator) Build() (*Result, error) {
	start := time.Now()

	loader := content.NewLoader(os.DirFS(g.cfg.Content.Dir))
	entries, err := loader.Load()
	if err != nil {
		return nil, err
	}

	artifacts, err := g.assemble(entries, start)
	if err != nil {
		return nil, err
	}

	if g.cfg.Output.CleanEnabled() {
		if err := os.RemoveAll(g.cfg.Output.Dir); err != nil {
			return nil, fmt.Errorf("clean output directory: %w", err)
		}
	}

	outputs := make([]Output, 0, len(artifacts)+1)
	for _, a := range artifacts {
		target := filepath.Join(g.cfg.Output.Dir, filepath.FromSlash(a.relPath))
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
		if err := os.WriteFile(target, a.data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", a.relPath, err)
		}
		outputs = append(outputs, Output{Path: a.relPath, Kind: a.kind})
	}

	manifest := NewManifest(start, time.Since(start), len(entries), outputs)
	if err := manifest.Write(filepath.Join(g.cfg.Output.Dir, manifestFile)); err != nil {
		return nil, err
	}
	outputs = append(outputs, Output{Path: manifestFile, Kind: KindManifest})

	slog.Info("Build completed",
		logfields.Count(len(entries)),
		logfields.Output(g.cfg.Output.Dir),
		logfields.DurationMS(time.Since(start).Milliseconds()))

	return &Result{Entries: len(entries), Outputs: outputs, Manifest: manifest}, nil
}

// assemble materializes every artifact in memory.
func (g *Generator) assemble(entries []content.Entry, generatedAt time.Time) ([]artifact, error) {
	var artifacts []artifact

	for _, e := range entries {
		page, err := g.renderPage(e)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, artifact{
			relPath: path.Join("blog", e.Slug, "index.html"),
			kind:    KindPage,
			data:    page,
		})
		slog.Debug("Article page assembled", logfields.Document(e.SourceName), logfields.Slug(e.Slug))
	}

	listing, err := g.renderIndex(index.Build(entries))
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, artifact{relPath: "blog/index.html", kind: KindIndex, data: listing})

	feedXML, err := feed.Build(entries, feed.Site{
		Title:       g.cfg.Site.Title,
		Description: g.cfg.Site.Description,
		BaseURL:     g.cfg.Site.BaseURL,
		Language:    g.cfg.Site.Language,
		Stylesheet:  g.cfg.Feed.Stylesheet,
	}, generatedAt)
	if err != nil {
		return nil, err
	}
	artifacts = append(artifacts, artifact{relPath: g.cfg.Feed.Path, kind: KindFeed, data: feedXML})

	artifacts = append(artifacts, artifact{
		relPath: stylesheetPath(g.cfg.Feed.Stylesheet),
		kind:    KindStylesheet,
		data:    []byte(feedStylesheet),
	})

	return artifacts, nil
}

func (g *Generator) renderPage(e content.Entry) ([]byte, error) {
	body, err := g.renderer.Render(e.Body)
	if err != nil {
		return nil, fmt.Errorf("render %s: %w", e.SourceName, err)
	}

	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		SiteTitle:   g.cfg.Site.Title,
		Title:       e.Meta.Title,
		Description: e.Meta.Description,
		PublishedAt: e.PublishedAt(),
		Tags:        e.Meta.Tags,
		CoverImage:  e.Meta.Image,
		Body:        template.HTML(body),
	})
	if err != nil {
		return nil, fmt.Errorf("execute page template for %s: %w", e.SourceName, err)
	}
	return buf.Bytes(), nil
}

func (g *Generator) renderIndex(summaries []index.Summary) ([]byte, error) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, indexData{
		SiteTitle:       g.cfg.Site.Title,
		SiteDescription: g.cfg.Site.Description,
		Summaries:       summaries,
	})
	if err != nil {
		return nil, fmt.Errorf("execute index template: %w", err)
	}
	return buf.Bytes(), nil
}

// stylesheetPath maps the configured stylesheet href to an output-relative
// file path.
func stylesheetPath(href string) string {
	p := path.Clean("/" + href)
	return p[1:]
}
