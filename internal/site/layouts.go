package site

import (
	"html/template"
	"time"

	"git.home.luguber.info/inful/blogbuilder/internal/index"
)

// The built-in layouts are deliberately minimal: page chrome, navigation,
// and styling are external concerns. They exist so a build produces
// complete, viewable pages out of the box.

type pageData struct {
	SiteTitle   string
	Title       string
	Description string
	PublishedAt time.Time
	Tags        []string
	CoverImage  string
	Body        template.HTML
}

type indexData struct {
	SiteTitle       string
	SiteDescription string
	Summaries       []index.Summary
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}} | {{.SiteTitle}}</title>
{{- if .Description}}
<meta name="description" content="{{.Description}}">
{{- end}}
<script type="module">
import mermaid from "https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs";
mermaid.initialize({ startOnLoad: true });
</script>
</head>
<body>
<article>
<header>
<h1>{{.Title}}</h1>
<time datetime="{{.PublishedAt.Format "2006-01-02"}}">{{.PublishedAt.Format "January 2, 2006"}}</time>
{{- if .CoverImage}}
<img src="{{.CoverImage}}" alt="">
{{- end}}
{{- if .Tags}}
<ul class="tags">
{{- range .Tags}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</header>
{{.Body}}
</article>
</body>
</html>
`))

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.SiteTitle}}</title>
{{- if .SiteDescription}}
<meta name="description" content="{{.SiteDescription}}">
{{- end}}
</head>
<body>
<h1>{{.SiteTitle}}</h1>
<ul class="articles">
{{- range .Summaries}}
<li>
<a href="/blog/{{.Slug}}/">{{.Title}}</a>
<time datetime="{{.PublishedAt.Format "2006-01-02"}}">{{.PublishedAt.Format "January 2, 2006"}}</time>
{{- if .Description}}
<p>{{.Description}}</p>
{{- end}}
{{- if .Tags}}
<ul class="tags">
{{- range .Tags}}
<li>{{.}}</li>
{{- end}}
</ul>
{{- end}}
</li>
{{- end}}
</ul>
</body>
</html>
`))

// feedStylesheet renders the RSS document readably when a browser opens it
// directly.
const feedStylesheet = `<?xml version="1.0" encoding="UTF-8"?>
<xsl:stylesheet version="1.0" xmlns:xsl="http://www.w3.org/1999/XSL/Transform">
<xsl:output method="html"/>
<xsl:template match="/rss/channel">
<html>
<head><title><xsl:value-of select="title"/></title></head>
<body>
<h1><xsl:value-of select="title"/></h1>
<p><xsl:value-of select="description"/></p>
<ul>
<xsl:for-each select="item">
<li>
<a href="{link}"><xsl:value-of select="title"/></a>
<small><xsl:value-of select="pubDate"/></small>
<p><xsl:value-of select="description"/></p>
</li>
</xsl:for-each>
</ul>
</body>
</html>
</xsl:template>
</xsl:stylesheet>
`
