package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDownload(t *testing.T) {
	payload := strings.Repeat("born", 1000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "4000")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	var calls [][2]int64
	dir := t.TempDir()
	got, err := Download(context.Background(), srv.URL+"/data/mnist.npz", dir, Options{
		ChunkSize: 1024,
		Progress:  func(current, total int64) { calls = append(calls, [2]int64{current, total}) },
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "mnist.npz"), got)

	data, err := os.ReadFile(got)
	require.NoError(t, err)
	assert.Equal(t, payload, string(data))

	require.NotEmpty(t, calls)
	assert.Equal(t, [2]int64{4000, 4000}, calls[len(calls)-1])
	for i := 1; i < len(calls); i++ {
		assert.GreaterOrEqual(t, calls[i][0], calls[i-1][0])
	}

	_, err = os.Stat(got + ".part")
	assert.True(t, os.IsNotExist(err))
}

func TestDownloadUnknownLength(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.(http.Flusher).Flush() // forces chunked encoding, no Content-Length
		_, _ = w.Write([]byte("abc"))
	}))
	defer srv.Close()

	var last [2]int64
	got, err := Download(context.Background(), srv.URL, t.TempDir(), Options{
		Filename: "blob.bin",
		Progress: func(current, total int64) { last = [2]int64{current, total} },
	})
	require.NoError(t, err)
	assert.Equal(t, "blob.bin", filepath.Base(got))
	assert.Equal(t, [2]int64{3, 0}, last)
}

func TestDownloadStatusError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	_, err := Download(context.Background(), srv.URL+"/missing.tgz", dir, Options{})
	require.Error(t, err)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDownloadTruncatedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Length", "4000")
		_, _ = w.Write([]byte(strings.Repeat("x", 100)))
	}))
	defer srv.Close()

	dir := t.TempDir()
	_, err := Download(context.Background(), srv.URL+"/weights.bin", dir, Options{ChunkSize: 16})
	require.Error(t, err)

	dest := filepath.Join(dir, "weights.bin")
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr), "dest must not exist")
	_, statErr = os.Stat(dest + ".part")
	assert.True(t, os.IsNotExist(statErr), "partial file must be removed")
}

func TestDownloadCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Download(ctx, srv.URL+"/f", t.TempDir(), Options{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFilenameFromURL(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/a/b/cifar.tar.gz", "cifar.tar.gz"},
		{"https://example.com/a/b/", "b"},
		{"https://example.com", "download"},
		{"https://example.com/file.zip?token=1", "file.zip"},
	}
	for _, tt := range tests {
		got, err := FilenameFromURL(tt.url)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.url)
	}

	_, err := FilenameFromURL("://bad")
	assert.Error(t, err)
}
