package summarizer

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/sashabaranov/go-openai"
	"golang.org/x/exp/slog"
)

// ErrNoChoices is returned when the model responds without any content.
var ErrNoChoices = errors.New("no choices in response")

//go:generate moq -out mock_openai_client.go . OpenAIClient

// OpenAIClient is interface for OpenAI client with the possibility to mock it
type OpenAIClient interface {
	CreateChatCompletion(context.Context, openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// ChatGPT is a client to make requests to OpenAI chatgpt service.
type ChatGPT struct {
	log       *slog.Logger
	cl        OpenAIClient
	model     string
	maxTokens int
}

// NewChatGPT creates new ChatGPT client.
func NewChatGPT(lg *slog.Logger, cl http.Client, token, model string, maxTokens int) *ChatGPT {
	config := openai.DefaultConfig(token)
	config.HTTPClient = &cl

	return &ChatGPT{
		log:       lg,
		cl:        &loggingClient{log: lg, cl: openai.NewClientWithConfig(config)},
		model:     model,
		maxTokens: maxTokens,
	}
}

// Generate sends the prompt as a single user message and returns the first choice.
func (s *ChatGPT) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	}

	resp, err := s.cl.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}

	return resp.Choices[0].Message.Content, nil
}

type loggingClient struct {
	log *slog.Logger
	cl  OpenAIClient
}

func (l *loggingClient) CreateChatCompletion(
	ctx context.Context,
	req openai.ChatCompletionRequest,
) (openai.ChatCompletionResponse, error) {
	l.log.DebugCtx(ctx, "sending request to chatGPT", slog.String("model", req.Model))
	resp, err := l.cl.CreateChatCompletion(ctx, req)
	l.log.DebugCtx(ctx, "response received from chatGPT",
		slog.Int("total_tokens", resp.Usage.TotalTokens),
		slog.Any("err", err),
	)
	return resp, err
}
