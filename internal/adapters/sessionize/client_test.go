package sessionize

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"talktrack/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPFetcher_FetchPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			_, _ = w.Write([]byte("<h4>Conf</h4>"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	f := NewHTTPFetcher(srv.Client())

	page, err := f.FetchPage(context.Background(), srv.URL+"/ok")
	require.NoError(t, err)
	assert.Equal(t, "<h4>Conf</h4>", page)

	_, err = f.FetchPage(context.Background(), srv.URL+"/missing")
	require.ErrorIs(t, err, domain.ErrUpstream)
	assert.Contains(t, err.Error(), "404")
}

func TestHTTPFetcher_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHTTPFetcher(nil).FetchPage(ctx, srv.URL)
	require.ErrorIs(t, err, domain.ErrUpstream)
}

func TestHTTPFetcher_Headers(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA, gotAccept = r.UserAgent(), r.Header.Get("Accept")
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.Client()).FetchPage(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, userAgent, gotUA)
	assert.Contains(t, gotAccept, "text/html")
}

func TestHTTPFetcher_BadURL(t *testing.T) {
	_, err := NewHTTPFetcher(nil).FetchPage(context.Background(), "://nope")
	require.ErrorIs(t, err, domain.ErrInvalidInput)
}
