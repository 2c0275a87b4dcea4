package apiclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetSendsQueryAndHeaders(t *testing.T) {
	var gotQuery url.Values
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotUA = r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte(`{"ok":false}`))
	}))
	defer srv.Close()

	c := New(time.Second, WithUserAgent("test-agent"))
	resp, err := c.Get(context.Background(), srv.URL+"/x", url.Values{"key": {"k"}, "player": {"p"}})

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, resp.Status)
	assert.False(t, resp.OK())
	assert.Equal(t, `{"ok":false}`, string(resp.Body))
	assert.Equal(t, "k", gotQuery.Get("key"))
	assert.Equal(t, "p", gotQuery.Get("player"))
	assert.Equal(t, "test-agent", gotUA)
}

func TestGetHonorsCancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(0, WithRateLimit(1, 1)).Get(ctx, srv.URL, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGetTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	addr := srv.URL
	srv.Close()

	_, err := New(time.Second).Get(context.Background(), addr, nil)
	require.Error(t, err)
}

func TestRedactDropsQuery(t *testing.T) {
	assert.Equal(t, "https://api.example.com/skyblock/auction", redact("https://api.example.com/skyblock/auction?key=secret"))
}
