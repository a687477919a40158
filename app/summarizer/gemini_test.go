package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestGemini_Generate(t *testing.T) {
	mock := &GeminiModelMock{
		GenerateContentFunc: func(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
			require.Len(t, parts, 1)
			assert.Equal(t, genai.Text(expectedKeywordsPrompt), parts[0])

			_, hasDeadline := ctx.Deadline()
			assert.True(t, hasDeadline)

			return &genai.GenerateContentResponse{
				Candidates: []*genai.Candidate{
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("LLM, "), genai.Text("NLP")}}},
					{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
				},
			}, nil
		},
	}

	g := &Gemini{log: slog.Default(), model: mock, timeout: time.Minute}

	resp, err := g.Generate(context.Background(), expectedKeywordsPrompt)
	require.NoError(t, err)
	assert.Equal(t, "LLM, NLP", resp)
	assert.Len(t, mock.GenerateContentCalls(), 1)
	assert.NoError(t, g.Close())
}

func TestGemini_Generate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		err     error
		wantErr string
	}{
		{
			name:    "no candidates",
			resp:    &genai.GenerateContentResponse{},
			wantErr: ErrNoChoices.Error(),
		},
		{
			name:    "candidate without content",
			resp:    &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{}}},
			wantErr: ErrNoChoices.Error(),
		},
		{
			name:    "request failed",
			err:     errors.New("api key not valid"),
			wantErr: "generate content: api key not valid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := &Gemini{
				log: slog.Default(),
				model: &GeminiModelMock{
					GenerateContentFunc: func(context.Context, ...genai.Part) (*genai.GenerateContentResponse, error) {
						return tt.resp, tt.err
					},
				},
			}

			_, err := g.Generate(context.Background(), "prompt")
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
