package summarizer

import (
	"context"
	_ "embed"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"github.com/Semior001/paper2note/app/paper"
)

//go:embed data/test/summary_prompt.txt
var expectedSummaryPrompt string

//go:embed data/test/keywords_prompt.txt
var expectedKeywordsPrompt string

type llmFunc func(ctx context.Context, prompt string) (string, error)

func (f llmFunc) Generate(ctx context.Context, prompt string) (string, error) { return f(ctx, prompt) }

var attention = paper.Info{
	Title:    "Attention Is All You Need",
	Authors:  []string{"Ashish Vaswani", "Noam Shazeer"},
	Abstract: "The dominant sequence transduction models are based on complex recurrent networks.",
	URL:      "https://arxiv.org/abs/1706.03762",
	Year:     2017,
}

func TestService_Summarize(t *testing.T) {
	calls := 0
	svc := NewService(slog.Default(), llmFunc(func(_ context.Context, prompt string) (string, error) {
		calls++
		assert.Equal(t, expectedSummaryPrompt, prompt)
		return "## 1. どんなもの？（研究の目的と概要）\nTransformer.", nil
	}))

	summary, ok := svc.Summarize(context.Background(), attention, attention.URL)
	require.True(t, ok)
	assert.Equal(t, "## 1. どんなもの？（研究の目的と概要）\nTransformer.", summary)
	assert.Equal(t, 1, calls)
}

func TestService_Summarize_UnknownAuthors(t *testing.T) {
	svc := NewService(slog.Default(), llmFunc(func(_ context.Context, prompt string) (string, error) {
		assert.Contains(t, prompt, "著者: Unknown\n")
		return "summary", nil
	}))

	info := attention
	info.Authors = nil

	_, ok := svc.Summarize(context.Background(), info, info.URL)
	assert.True(t, ok)
}

func TestService_Summarize_Unavailable(t *testing.T) {
	t.Run("no model configured", func(t *testing.T) {
		svc := NewService(slog.Default(), nil)
		assert.False(t, svc.Available())

		summary, ok := svc.Summarize(context.Background(), attention, attention.URL)
		assert.False(t, ok)
		assert.Empty(t, summary)
	})

	t.Run("model call failed", func(t *testing.T) {
		svc := NewService(slog.Default(), llmFunc(func(context.Context, string) (string, error) {
			return "", errors.New("quota exceeded")
		}))
		assert.True(t, svc.Available())

		summary, ok := svc.Summarize(context.Background(), attention, attention.URL)
		assert.False(t, ok)
		assert.Empty(t, summary)
	})

	t.Run("blank response", func(t *testing.T) {
		svc := NewService(slog.Default(), llmFunc(func(context.Context, string) (string, error) {
			return " \n ", nil
		}))

		_, ok := svc.Summarize(context.Background(), attention, attention.URL)
		assert.False(t, ok)
	})
}

func TestService_Keywords(t *testing.T) {
	svc := NewService(slog.Default(), llmFunc(func(_ context.Context, prompt string) (string, error) {
		assert.Equal(t, expectedKeywordsPrompt, prompt)
		return "Transformer, NLP, Attention,  Machine Translation , , Self-Attention, Encoder-Decoder\n", nil
	}))

	kws := svc.Keywords(context.Background(), attention)
	assert.Equal(t, []string{"Transformer", "NLP", "Attention", "Machine Translation", "Self-Attention"}, kws)
}

func TestService_Keywords_Failure(t *testing.T) {
	svc := NewService(slog.Default(), llmFunc(func(context.Context, string) (string, error) {
		return "", errors.New("network is unreachable")
	}))

	kws := svc.Keywords(context.Background(), attention)
	assert.NotNil(t, kws)
	assert.Empty(t, kws)
}

func TestService_Keywords_Fallback(t *testing.T) {
	svc := NewService(slog.Default(), nil)

	kws := svc.Keywords(context.Background(), attention)
	assert.ElementsMatch(t, Classify(attention), kws)
}

func TestParseKeywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "plain", text: "NLP, LLM", want: []string{"NLP", "LLM"}},
		{name: "whitespace and empties", text: "  RAG ,,\tLLM ,  ", want: []string{"RAG", "LLM"}},
		{name: "truncated to five", text: "a,b,c,d,e,f,g", want: []string{"a", "b", "c", "d", "e"}},
		{name: "single keyword", text: "Robotics\n", want: []string{"Robotics"}},
		{name: "line separated", text: "LLM\nRAG, NLP", want: []string{"LLM", "RAG", "NLP"}},
		{name: "bullet lines", text: "Vibe  Coding\r\n\r\nAgentic\tAI\n", want: []string{"Vibe Coding", "Agentic AI"}},
		{name: "japanese comma", text: "機械学習、NLP", want: []string{"機械学習", "NLP"}},
		{name: "empty", text: "", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKeywords(tt.text)
			assert.Equal(t, tt.want, got)
			assert.LessOrEqual(t, len(got), MaxKeywords)
		})
	}
}
