package paper

import (
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Extractor extracts paper info from an HTML page.
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates new Extractor.
func NewExtractor() Extractor {
	return Extractor{now: time.Now}
}

// Extract extracts paper info from an HTML page served at url.
// Pages outside of arXiv carry only the document title.
func (e Extractor) Extract(rd io.Reader, u string) (Info, error) {
	doc, err := goquery.NewDocumentFromReader(rd)
	if err != nil {
		return Info{}, fmt.Errorf("parse html: %w", err)
	}

	now := time.Now
	if e.now != nil {
		now = e.now
	}

	info := Info{
		Title:   sanitize(doc.Find("title").First().Text()),
		Authors: []string{},
		URL:     u,
		Year:    Year(u, now()),
	}

	if IsArxiv(u) {
		e.arxiv(doc, &info)
	}

	if info.Title == "" {
		info.Title = UnknownTitle
	}

	return info, nil
}

func (e Extractor) arxiv(doc *goquery.Document, info *Info) {
	if h := doc.Find("h1.title").First(); h.Length() > 0 {
		if title := stripLabel(h.Text(), "Title:"); title != "" {
			info.Title = title
		}
	}

	doc.Find("div.authors a").Each(func(_ int, a *goquery.Selection) {
		if name := sanitize(a.Text()); name != "" {
			info.Authors = append(info.Authors, name)
		}
	})

	info.Abstract = stripLabel(doc.Find("blockquote.abstract").First().Text(), "Abstract:")
}

func stripLabel(s, label string) string {
	return sanitize(strings.Replace(s, label, "", 1))
}

var spaces = regexp.MustCompile(`\s+`)

// sanitize collapses whitespace runs, including nbsp, into single spaces.
func sanitize(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.TrimSpace(spaces.ReplaceAllString(s, " "))
}
