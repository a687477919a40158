// Package cmd contains commands for the application.
package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
	"golang.org/x/sync/errgroup"

	"github.com/Semior001/paper2note/app/note"
	"github.com/Semior001/paper2note/app/paper"
	"github.com/Semior001/paper2note/app/summarizer"
	"github.com/Semior001/paper2note/pkg/logx"
)

// Note is a command to create a note for a paper.
type Note struct {
	Vault   string        `long:"vault" env:"VAULT_DIR" description:"notes directory (default: ~/ObsidianVault/Papers)"`
	Timeout time.Duration `long:"timeout" env:"FETCH_TIMEOUT" default:"30s" description:"timeout for fetching the paper page"`

	LLM struct {
		Provider string        `long:"provider" env:"PROVIDER" choice:"gemini" choice:"openai" default:"gemini" description:"text generation provider"`
		Timeout  time.Duration `long:"timeout" env:"TIMEOUT" default:"2m" description:"timeout for model calls"`
	} `group:"llm" namespace:"llm" env-namespace:"LLM"`

	Gemini struct {
		Key   string `long:"key" env:"GEMINI_API_KEY" description:"Gemini API key"`
		Model string `long:"model" env:"GEMINI_MODEL" default:"gemini-1.5-flash" description:"Gemini model"`
	} `group:"gemini" namespace:"gemini"`

	OpenAI struct {
		Token     string `long:"token" env:"OPENAI_TOKEN" description:"OpenAI token"`
		Model     string `long:"model" env:"OPENAI_MODEL" default:"gpt-3.5-turbo" description:"OpenAI model"`
		MaxTokens int    `long:"max-tokens" env:"OPENAI_MAX_TOKENS" default:"1000" description:"max tokens for OpenAI"`
	} `group:"openai" namespace:"openai"`
}

// Execute creates the note for the paper at url.
func (n Note) Execute(u string) error {
	lg := slog.Default()

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	ctx = logx.ContextWithRunID(ctx, uuid.New().String())

	llm, closeLLM, err := n.makeLLM(ctx, lg)
	if err != nil {
		return fmt.Errorf("make llm client: %w", err)
	}
	defer func() {
		if err := closeLLM(); err != nil {
			lg.WarnCtx(ctx, "failed to close llm client", slog.Any("err", err))
		}
	}()

	vault, err := note.NewVault(n.Vault)
	if err != nil {
		return fmt.Errorf("make vault: %w", err)
	}

	p := pipeline{
		out: os.Stdout,
		log: lg.With(slog.String("prefix", "pipeline")),
		fetcher: paper.NewFetcher(
			lg.With(slog.String("prefix", "fetcher")),
			http.Client{Timeout: n.Timeout},
			paper.NewExtractor(),
		),
		summarizer: summarizer.NewService(lg.With(slog.String("prefix", "summarizer")), llm),
		vault:      vault,
	}

	done := make(chan struct{})

	ewg, ctx := errgroup.WithContext(ctx)
	ewg.Go(func() error {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sig)
		select {
		case s := <-sig:
			lg.WarnCtx(ctx, "caught signal, stopping", slog.String("signal", s.String()))
			stop()
			return fmt.Errorf("interrupted by %s", s)
		case <-done:
			return nil
		case <-ctx.Done():
			// the pipeline failed, its error is the one to report
			return nil
		}
	})
	ewg.Go(func() error {
		defer close(done)
		_, err := p.run(ctx, u)
		return err
	})

	return ewg.Wait()
}

// makeLLM returns nil llm if the selected provider has no credential.
func (n Note) makeLLM(ctx context.Context, lg *slog.Logger) (llm summarizer.LLM, closeFn func() error, err error) {
	noop := func() error { return nil }

	switch n.LLM.Provider {
	case "openai":
		if n.OpenAI.Token == "" {
			lg.InfoCtx(ctx, "openai token is not set, summarization disabled")
			return nil, noop, nil
		}
		return summarizer.NewChatGPT(
			lg.With(slog.String("prefix", "chatgpt")),
			http.Client{Timeout: n.LLM.Timeout},
			n.OpenAI.Token,
			n.OpenAI.Model,
			n.OpenAI.MaxTokens,
		), noop, nil
	case "gemini", "":
		if n.Gemini.Key == "" {
			lg.InfoCtx(ctx, "gemini api key is not set, summarization disabled")
			return nil, noop, nil
		}
		g, err := summarizer.NewGemini(ctx, lg.With(slog.String("prefix", "gemini")),
			n.Gemini.Key, n.Gemini.Model, n.LLM.Timeout)
		if err != nil {
			return nil, noop, fmt.Errorf("make gemini client: %w", err)
		}
		return g, g.Close, nil
	default:
		return nil, noop, fmt.Errorf("unknown llm provider %q", n.LLM.Provider)
	}
}

// pipeline runs the stages of note creation one after another.
type pipeline struct {
	out        io.Writer
	log        *slog.Logger
	fetcher    fetcher
	summarizer *summarizer.Service
	vault      *note.Vault
}

type fetcher interface {
	Get(ctx context.Context, u string) (paper.Info, error)
}

// run returns the path of the written note.
func (p pipeline) run(ctx context.Context, u string) (string, error) {
	p.progress("📄 論文ページを取得中...")
	info, err := p.fetcher.Get(ctx, u)
	if err != nil {
		return "", fmt.Errorf("get paper info: %w", err)
	}
	p.log.InfoCtx(ctx, "paper info extracted",
		slog.String("title", info.Title),
		slog.Int("authors", len(info.Authors)),
		slog.Int("year", info.Year),
	)

	p.progress("🤖 要約を生成中...")
	summary, ok := p.summarizer.Summarize(ctx, info, u)

	p.progress("🔍 キーワードを抽出中...")
	keywords := p.summarizer.Keywords(ctx, info)

	p.progress("📝 ノートを作成中...")
	text, err := note.Render(info, summary, keywords)
	if err != nil {
		return "", fmt.Errorf("render note: %w", err)
	}

	name := note.Filename(info.Title)
	if prev, exists := p.vault.Existing(name); exists {
		p.log.WarnCtx(ctx, "overwriting existing note",
			slog.String("name", name),
			slog.String("status", prev.Status),
			slog.String("pdf", prev.PDF),
		)
	}

	path, err := p.vault.Save(name, text)
	if err != nil {
		return "", fmt.Errorf("save note: %w", err)
	}

	p.progress(fmt.Sprintf("✅ %s を Obsidian に作成しました", name))
	if ok {
		p.progress("✨ 要約が完了しました")
	} else {
		p.progress("⚠️  APIキーが設定されていないか、エラーが発生したため要約はありません")
	}

	return path, nil
}

func (p pipeline) progress(msg string) {
	_, _ = fmt.Fprintln(p.out, msg)
}
