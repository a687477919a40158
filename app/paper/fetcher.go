package paper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-pkgz/requester"
	"github.com/go-pkgz/requester/middleware"
	"golang.org/x/exp/slog"

	"github.com/Semior001/paper2note/pkg/logx"
)

// userAgent is sent with every page request.
const userAgent = "paper2note/1.0 (+https://github.com/Semior001/paper2note)"

// Fetcher downloads paper pages and extracts info from them.
type Fetcher struct {
	log       *slog.Logger
	rq        *requester.Requester
	extractor Extractor
}

// NewFetcher creates new Fetcher.
func NewFetcher(lg *slog.Logger, cl http.Client, extractor Extractor) *Fetcher {
	return &Fetcher{
		log: lg,
		rq: requester.New(cl,
			middleware.Header("User-Agent", userAgent),
			logx.LoggingRoundTripper(lg, logx.RoundTripperOpts{Level: slog.LevelDebug}),
		),
		extractor: extractor,
	}
}

// Get fetches the page at u and extracts paper info from it.
func (f *Fetcher) Get(ctx context.Context, u string) (Info, error) {
	f.log.DebugCtx(ctx, "fetching paper page", slog.String("url", u))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return Info{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := f.rq.Do(req)
	if err != nil {
		return Info{}, fmt.Errorf("do request: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			f.log.WarnCtx(ctx, "failed to close response body", slog.Any("err", err))
		}
	}()

	ok := resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices
	if !ok {
		return Info{}, fmt.Errorf("bad status code: %d", resp.StatusCode)
	}

	info, err := f.extractor.Extract(resp.Body, u)
	if err != nil {
		return Info{}, fmt.Errorf("extract paper info: %w", err)
	}

	return info, nil
}
