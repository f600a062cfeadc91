// Package extractor turns raw page bytes into structured content: title,
// cleaned visible text, same-origin links and the fixed metadata fields.
// Extraction is a pure function of the input bytes and base URL; it never
// performs I/O and tolerates malformed HTML.
package extractor

import (
	"bytes"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/dtnitsch/web-scraper/models"
)

// Extraction is the structured content of a single page.
type Extraction struct {
	Title    string
	Content  string
	Links    []string
	Metadata models.PageMetadata
}

// Extract parses rawHTML and extracts the page title, cleaned text,
// same-origin links resolved against baseURL, and meta-tag fields.
func Extract(rawHTML []byte, baseURL string) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	// Title and metadata come off the document before the script/style nodes
	// are stripped for text cleaning; removal mutates the document.
	ext := &Extraction{
		Title:    doc.Find("title").First().Text(),
		Metadata: pageMetadata(doc),
		Links:    sameOriginLinks(doc, base),
	}
	ext.Content = cleanText(doc)

	return ext, nil
}

// cleanText strips script and style nodes, flattens the remaining text, and
// collapses whitespace in two passes: split on line boundaries, strip each
// line, re-split each line on double-space runs, strip each fragment, drop
// empties, and join the survivors with single spaces. The line-split must
// happen before the space-split; swapping the passes changes the output.
func cleanText(doc *goquery.Document) string {
	doc.Find("script,style").Remove()
	text := doc.Text()

	var chunks []string
	for _, line := range strings.Split(text, "\n") {
		for _, phrase := range strings.Split(strings.TrimSpace(line), "  ") {
			phrase = strings.TrimSpace(phrase)
			if phrase != "" {
				chunks = append(chunks, phrase)
			}
		}
	}
	return strings.Join(chunks, " ")
}

// sameOriginLinks resolves every anchor href against base and keeps only
// links on the same host, deduplicated and sorted.
func sameOriginLinks(doc *goquery.Document, base *url.URL) []string {
	seen := make(map[string]struct{})
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return
		}
		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			return
		}
		seen[resolved.String()] = struct{}{}
	})

	links := make([]string, 0, len(seen))
	for link := range seen {
		links = append(links, link)
	}
	sort.Strings(links)
	return links
}

// pageMetadata scans all meta elements once, matching name against
// description/keywords/author and property against og:title/og:description,
// case-insensitively. When a key appears on multiple tags the last one wins.
func pageMetadata(doc *goquery.Document) models.PageMetadata {
	var meta models.PageMetadata
	doc.Find("meta").Each(func(_ int, s *goquery.Selection) {
		name := strings.ToLower(s.AttrOr("name", ""))
		property := strings.ToLower(s.AttrOr("property", ""))
		content := s.AttrOr("content", "")

		switch {
		case name == "description":
			meta.Description = content
		case name == "keywords":
			meta.Keywords = content
		case name == "author":
			meta.Author = content
		case property == "og:title":
			meta.OGTitle = content
		case property == "og:description":
			meta.OGDescription = content
		}
	})
	return meta
}
