// Package note renders paper info and its summary into an Obsidian note and
// stores it in the vault.
package note

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"

	"github.com/Semior001/paper2note/app/paper"
)

// StatusUnread is the reading status of a freshly created note.
const StatusUnread = "未読"

// Ext is the extension of note files.
const Ext = ".md"

//go:embed data/note.tmpl
var noteText string

var noteTmpl = template.Must(template.New("note").Funcs(template.FuncMap{
	"quote": quote,
	"join":  strings.Join,
	"tags": func(tags []string) string {
		return strings.Join(lo.Map(tags, func(t string, _ int) string { return `"` + quote(t) + `"` }), ", ")
	},
}).Parse(noteText))

type noteData struct {
	paper.Info
	Tags     []string
	Status   string
	Sections []Section
	Keywords []string
}

// Render builds the markdown note for the paper. An empty summary leaves
// the section bodies empty.
func Render(info paper.Info, summary string, keywords []string) (string, error) {
	sb := &strings.Builder{}

	err := noteTmpl.Execute(sb, noteData{
		Info:     info,
		Tags:     keywords,
		Status:   StatusUnread,
		Sections: Split(summary),
		Keywords: keywords,
	})
	if err != nil {
		return "", fmt.Errorf("execute note template: %w", err)
	}

	return strings.TrimRight(sb.String(), "\n") + "\n", nil
}

var filenameReplacer = strings.NewReplacer(" ", "_", "/", "_", `\`, "_")

// Filename returns the note file name for the paper title.
func Filename(title string) string {
	return filenameReplacer.Replace(title) + Ext
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

// quote escapes s for a double-quoted YAML scalar.
func quote(s string) string { return quoteReplacer.Replace(s) }
