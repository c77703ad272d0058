package sessionize

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"talktrack/internal/domain"
)

const (
	// maxPageBytes caps how much of a call-for-speakers page is read.
	maxPageBytes = 4 << 20
	userAgent    = "talktrack/1.0 (+call-for-speakers import)"
)

type pageFetcher struct {
	client *http.Client
}

// NewHTTPFetcher returns a fetcher that downloads public Sessionize pages.
func NewHTTPFetcher(client *http.Client) domain.EventPageFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &pageFetcher{client: client}
}

// FetchPage returns the page body. Transport failures and non-200 answers wrap
// domain.ErrUpstream; a URL that cannot form a request wraps domain.ErrInvalidInput.
func (f *pageFetcher) FetchPage(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("%w: bad sessionize url: %v", domain.ErrInvalidInput, err)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: get %s: %v", domain.ErrUpstream, req.URL.Host, err)
	}
	defer func() {
		// drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxPageBytes))
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: sessionize answered %d %s", domain.ErrUpstream, resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return "", fmt.Errorf("%w: read sessionize page: %v", domain.ErrUpstream, err)
	}
	return string(body), nil
}
