// Package paper contains the bibliographic record of a paper and the services
// to fetch and extract it from a web page.
package paper

import (
	"net/url"
	"strconv"
	"strings"
	"time"
)

// UnknownTitle is used when the page carries no usable title.
const UnknownTitle = "Unknown Title"

const arxivHost = "arxiv.org"

// Info is the bibliographic record of a single paper.
type Info struct {
	Title    string   `json:"title"`
	Authors  []string `json:"authors"`
	Abstract string   `json:"abstract"`
	URL      string   `json:"url"`
	Year     int      `json:"year"`
}

// IsArxiv reports whether the url points to arXiv.
func IsArxiv(u string) bool { return strings.Contains(u, arxivHost) }

// Year derives the publication year from an arXiv identifier in the last
// path segment of the url, e.g. "2505.19443" gives 2025. Two-digit prefixes
// up to 50 map to 20xx, the rest to 19xx. Non-arXiv urls and identifiers
// without a numeric prefix fall back to the year of now.
func Year(u string, now time.Time) int {
	if !IsArxiv(u) {
		return now.Year()
	}

	id := lastSegment(u)
	if len(id) < 2 {
		return now.Year()
	}

	prefix := id[:2]
	if prefix[0] < '0' || prefix[0] > '9' || prefix[1] < '0' || prefix[1] > '9' {
		return now.Year()
	}

	yy, err := strconv.Atoi(prefix)
	if err != nil {
		return now.Year()
	}

	if yy <= 50 {
		return 2000 + yy
	}
	return 1900 + yy
}

// lastSegment returns the part of the url after the last slash, with query
// and fragment dropped.
func lastSegment(u string) string {
	if parsed, err := url.Parse(u); err == nil && parsed.Path != "" {
		u = parsed.Path
	}
	return u[strings.LastIndex(u, "/")+1:]
}
