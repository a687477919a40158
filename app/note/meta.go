package note

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoFrontMatter is returned when the note does not start with a front matter block.
var ErrNoFrontMatter = errors.New("no front matter")

const fence = "---"

// Meta is the front matter of a note.
type Meta struct {
	Title   string   `yaml:"title"`
	Authors []string `yaml:"authors"`
	Year    int      `yaml:"year"`
	Tags    []string `yaml:"tags"`
	Status  string   `yaml:"status"`
	PDF     string   `yaml:"pdf"`
}

// ReadMeta parses the front matter block of a rendered note.
func ReadMeta(text string) (Meta, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if !strings.HasPrefix(text, fence+"\n") {
		return Meta{}, ErrNoFrontMatter
	}

	block := text[len(fence)+1:]
	end := strings.Index(block, "\n"+fence+"\n")
	if end < 0 {
		return Meta{}, ErrNoFrontMatter
	}

	var m Meta
	if err := yaml.Unmarshal([]byte(block[:end]), &m); err != nil {
		return Meta{}, fmt.Errorf("unmarshal front matter: %w", err)
	}

	return m, nil
}
