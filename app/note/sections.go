package note

import (
	"regexp"
	"strings"
)

// Section is a headed part of the note body.
type Section struct {
	Heading string
	Body    string
}

// Headings are the six fixed points the summary answers, in order.
var Headings = []string{
	"どんなもの？",
	"先行研究と比べてどこがすごい？",
	"技術や手法のキモはどこ？",
	"どうやって有効だと検証した？",
	"議論はある？",
	"次に読むべき論文は？",
}

// marker matches a heading-shaped line: a markdown heading, a bold line or
// an enumerated item, e.g. "## 1. どんなもの？" or "**2. 先行研究と...**".
var marker = regexp.MustCompile(`^\s*(#{1,6}\s*|\*\*\s*)?(?:([1-6])\s*[.．、)]\s*)?(.*)$`)

// Split distributes the summary over the six sections. Text between a
// heading and the next one becomes the body of that section. Text before
// the first heading opens the body of the first section, and a summary
// without any recognizable heading goes there verbatim.
func Split(summary string) []Section {
	sections := make([]Section, len(Headings))
	for i, h := range Headings {
		sections[i].Heading = h
	}

	if strings.TrimSpace(summary) == "" {
		return sections
	}

	bodies := make([][]string, len(Headings))
	var preamble []string
	current, found := -1, false

	for _, line := range strings.Split(summary, "\n") {
		if idx, ok := headingIndex(line); ok {
			current, found = idx, true
			continue
		}
		if current < 0 {
			preamble = append(preamble, line)
			continue
		}
		bodies[current] = append(bodies[current], line)
	}

	if !found {
		sections[0].Body = strings.TrimSpace(summary)
		return sections
	}

	bodies[0] = append(preamble, bodies[0]...)
	for i, lines := range bodies {
		sections[i].Body = strings.TrimSpace(strings.Join(lines, "\n"))
	}

	return sections
}

func headingIndex(line string) (int, bool) {
	m := marker.FindStringSubmatch(strings.TrimRight(line, " \t\r"))
	if m == nil || (m[1] == "" && m[2] == "") {
		return 0, false
	}

	rest := strings.TrimLeft(m[3], "*# \t")
	for i, h := range Headings {
		if strings.HasPrefix(rest, h) {
			return i, true
		}
	}

	return 0, false
}
