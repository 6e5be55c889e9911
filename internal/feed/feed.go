// Package feed serializes the content set into an RSS 2.0 syndication
// document. The feed shares the index ordering and carries one item per
// entry; all links are absolute.
package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/language"

	"git.home.luguber.info/inful/blogbuilder/internal/content"
)

// ErrMissingBaseURL indicates feed generation was attempted without a site
// base URL. A feed with relative links is invalid per the RSS schema, so
// this aborts the build rather than silently emitting one.
var ErrMissingBaseURL = errors.New("site base URL is required for feed generation")

// Site is the build-wide metadata the feed needs. It is supplied once per
// build and never derived from any entry.
type Site struct {
	Title       string
	Description string
	BaseURL     string
	Language    string
	// Stylesheet is the href of the XSL resource referenced from the feed
	// so browsers can render it.
	Stylesheet string
}

type rssDoc struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title         string    `xml:"title"`
	Link          string    `xml:"link"`
	Description   string    `xml:"description"`
	Language      string    `xml:"language"`
	LastBuildDate string    `xml:"lastBuildDate"`
	Items         []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string   `xml:"title"`
	Link        string   `xml:"link"`
	GUID        rssGUID  `xml:"guid"`
	Description string   `xml:"description"`
	PubDate     string   `xml:"pubDate"`
	Categories  []string `xml:"category"`
}

type rssGUID struct {
	IsPermaLink bool   `xml:"isPermaLink,attr"`
	Value       string `xml:",chardata"`
}

// Build serializes entries into an RSS 2.0 document. Ordering matches the
// index: publication date descending, source name ascending on ties. An
// empty entry set still yields a schema-valid feed with zero items.
func Build(entries []content.Entry, site Site, generatedAt time.Time) ([]byte, error) {
	base := strings.TrimSpace(site.BaseURL)
	if base == "" {
		return nil, ErrMissingBaseURL
	}
	base = strings.TrimRight(base, "/")

	lang := site.Language
	if lang == "" {
		lang = "en"
	}
	if _, err := language.Parse(lang); err != nil {
		return nil, fmt.Errorf("invalid feed language %q: %w", lang, err)
	}

	ordered := content.ByPublication(entries)
	items := make([]rssItem, len(ordered))
	for i, e := range ordered {
		link := base + "/blog/" + e.Slug + "/"
		items[i] = rssItem{
			Title:       e.Meta.Title,
			Link:        link,
			GUID:        rssGUID{IsPermaLink: true, Value: link},
			Description: e.Meta.Description,
			PubDate:     e.PublishedAt().UTC().Format(time.RFC1123Z),
			Categories:  append([]string(nil), e.Meta.Tags...),
		}
	}

	doc := rssDoc{
		Version: "2.0",
		Channel: rssChannel{
			Title:         site.Title,
			Link:          base + "/",
			Description:   site.Description,
			Language:      lang,
			LastBuildDate: generatedAt.UTC().Format(time.RFC1123Z),
			Items:         items,
		},
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}

	var out strings.Builder
	out.WriteString(xml.Header)
	if site.Stylesheet != "" {
		fmt.Fprintf(&out, "<?xml-stylesheet type=%q href=%q?>\n", "text/xsl", site.Stylesheet)
	}
	out.Write(body)
	out.WriteString("\n")
	return []byte(out.String()), nil
}
