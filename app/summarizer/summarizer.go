// Package summarizer asks a text-generation model for a structured summary
// and keywords of a paper, falling back to a fixed field classifier when no
// model is configured.
package summarizer

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/samber/lo"
	"golang.org/x/exp/slog"

	"github.com/Semior001/paper2note/app/paper"
)

//go:embed data/summary.tmpl
var summaryPrompt string

//go:embed data/keywords.tmpl
var keywordsPrompt string

var (
	summaryTmpl  = template.Must(template.New("summary").Parse(summaryPrompt))
	keywordsTmpl = template.Must(template.New("keywords").Parse(keywordsPrompt))
)

// MaxKeywords is the maximum number of keywords taken from a model response.
const MaxKeywords = 5

// LLM generates text for a prompt.
type LLM interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Service builds prompts for the model and interprets its responses.
type Service struct {
	log *slog.Logger
	llm LLM
}

// NewService creates new Service. A nil llm means no model is configured.
func NewService(lg *slog.Logger, llm LLM) *Service {
	return &Service{log: lg, llm: llm}
}

// Available reports whether a model is configured.
func (s *Service) Available() bool { return s.llm != nil }

type promptData struct {
	Title    string
	Authors  string
	Abstract string
	URL      string
}

// Summarize returns the model's six-point summary of the paper.
// Returns false if no model is configured or the call failed.
func (s *Service) Summarize(ctx context.Context, info paper.Info, url string) (string, bool) {
	if s.llm == nil {
		return "", false
	}

	authors := "Unknown"
	if len(info.Authors) > 0 {
		authors = strings.Join(info.Authors, ", ")
	}

	prompt, err := execute(summaryTmpl, promptData{
		Title:    info.Title,
		Authors:  authors,
		Abstract: info.Abstract,
		URL:      url,
	})
	if err != nil {
		s.log.WarnCtx(ctx, "failed to build summary prompt", slog.Any("err", err))
		return "", false
	}

	resp, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to generate summary", slog.Any("err", err))
		return "", false
	}

	if strings.TrimSpace(resp) == "" {
		s.log.WarnCtx(ctx, "model returned an empty summary")
		return "", false
	}

	return resp, true
}

// Keywords returns up to MaxKeywords keywords for the paper.
// Without a model it returns the fields detected by Classify, on a failed
// call it returns an empty list.
func (s *Service) Keywords(ctx context.Context, info paper.Info) []string {
	if s.llm == nil {
		return Classify(info)
	}

	prompt, err := execute(keywordsTmpl, promptData{Title: info.Title, Abstract: info.Abstract})
	if err != nil {
		s.log.WarnCtx(ctx, "failed to build keywords prompt", slog.Any("err", err))
		return []string{}
	}

	resp, err := s.llm.Generate(ctx, prompt)
	if err != nil {
		s.log.WarnCtx(ctx, "failed to extract keywords", slog.Any("err", err))
		return []string{}
	}

	return ParseKeywords(resp)
}

// ParseKeywords splits a model response separated by commas or line breaks
// into at most MaxKeywords non-empty keywords, each on a single line.
func ParseKeywords(text string) []string {
	split := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == '、' || r == '\n'
	})

	kws := lo.FilterMap(split, func(kw string, _ int) (string, bool) {
		kw = strings.Join(strings.Fields(kw), " ")
		return kw, kw != ""
	})

	if len(kws) > MaxKeywords {
		kws = kws[:MaxKeywords]
	}

	return kws
}

func execute(tmpl *template.Template, data promptData) (string, error) {
	buf := &strings.Builder{}
	if err := tmpl.Execute(buf, data); err != nil {
		return "", fmt.Errorf("execute %s template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
