package summarizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/exp/slog"
	"google.golang.org/api/option"
)

//go:generate moq -out mock_gemini_model.go . GeminiModel

// GeminiModel is interface for Gemini generative model with the possibility to mock it
type GeminiModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// Gemini is a client to make requests to Google Gemini models.
type Gemini struct {
	log     *slog.Logger
	model   GeminiModel
	timeout time.Duration
	close   func() error
}

// NewGemini creates new Gemini client. The timeout bounds every Generate call.
func NewGemini(ctx context.Context, lg *slog.Logger, key, model string, timeout time.Duration) (*Gemini, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(key))
	if err != nil {
		return nil, fmt.Errorf("make genai client: %w", err)
	}

	return &Gemini{
		log:     lg,
		model:   client.GenerativeModel(model),
		timeout: timeout,
		close:   client.Close,
	}, nil
}

// Generate sends the prompt as a single text part and returns the text of
// the first candidate.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	g.log.DebugCtx(ctx, "sending request to gemini")

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrNoChoices
	}

	sb := &strings.Builder{}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	g.log.DebugCtx(ctx, "response received from gemini",
		slog.Any("finish_reason", resp.Candidates[0].FinishReason))

	return sb.String(), nil
}

// Close releases the underlying client.
func (g *Gemini) Close() error {
	if g.close == nil {
		return nil
	}
	return g.close()
}
