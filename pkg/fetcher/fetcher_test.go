package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetch_Success(t *testing.T) {
	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html><body>hello</body></html>"))
	}))
	defer server.Close()

	f := New(5*time.Second, "test-agent/1.0")
	page, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, server.URL, page.URL)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Contains(t, string(page.Body), "hello")
	assert.Equal(t, "test-agent/1.0", gotUserAgent)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		wantErr    bool
	}{
		{name: "not found", statusCode: http.StatusNotFound, wantErr: true},
		{name: "server error", statusCode: http.StatusInternalServerError, wantErr: true},
		{name: "ok", statusCode: http.StatusOK, wantErr: false},
		{name: "not modified counts as success", statusCode: http.StatusNotModified, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			f := New(5*time.Second, "")
			page, err := f.Fetch(context.Background(), server.URL)

			if tt.wantErr {
				require.Error(t, err)
				var fe *FetchError
				require.True(t, errors.As(err, &fe))
				assert.Equal(t, server.URL, fe.URL)
				assert.Equal(t, tt.statusCode, fe.StatusCode)
				assert.Nil(t, page)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.statusCode, page.StatusCode)
			}
		})
	}
}

func TestFetch_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer server.Close()

	f := New(50*time.Millisecond, "")
	_, err := f.Fetch(context.Background(), server.URL)

	require.Error(t, err)
	assert.True(t, IsFetchError(err))
}

func TestFetch_NetworkError(t *testing.T) {
	f := New(time.Second, "")
	_, err := f.Fetch(context.Background(), "http://127.0.0.1:1/unreachable")

	require.Error(t, err)
	var fe *FetchError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "http://127.0.0.1:1/unreachable", fe.URL)
	assert.NotNil(t, fe.Err)
}

func TestFetch_FollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/final", http.StatusFound)
	})
	mux.HandleFunc("/final", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("landed"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	f := New(5*time.Second, "")
	page, err := f.Fetch(context.Background(), server.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, page.StatusCode)
	assert.Equal(t, "landed", string(page.Body))
}
