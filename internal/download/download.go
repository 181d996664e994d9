// Package download fetches remote files to local disk, reporting progress
// after every chunk.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/born-ml/estimator/internal/progress"
)

// DefaultChunkSize is the read size between progress callbacks.
const DefaultChunkSize = 32 * 1024

// Options configures Download.
type Options struct {
	// Client performs the request.
	// Default: an http.Client with a 30s timeout.
	Client *http.Client

	// Filename overrides the name derived from the URL.
	Filename string

	// ChunkSize is the read buffer size.
	// Default: DefaultChunkSize
	ChunkSize int

	// Progress is called with (bytes so far, total) after every chunk and
	// once at the end. Total is 0 when the server sends no Content-Length.
	Progress progress.Func
}

// StatusError is returned when the server answers with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download %s: unexpected status %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Download streams rawURL into dir and returns the written path. Data goes
// to a ".part" file first, renamed into place once the body is complete.
func Download(ctx context.Context, rawURL, dir string, opts Options) (string, error) {
	if opts.Client == nil {
		opts.Client = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.ChunkSize <= 0 {
		opts.ChunkSize = DefaultChunkSize
	}

	name := opts.Filename
	if name == "" {
		var err error
		if name, err = FilenameFromURL(rawURL); err != nil {
			return "", err
		}
	}
	dest := filepath.Join(dir, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", errors.Wrapf(err, "download %s", rawURL)
	}

	resp, err := opts.Client.Do(req)
	if err != nil {
		return "", errors.Wrapf(err, "download %s", rawURL)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	total := max(resp.ContentLength, 0)
	klog.V(1).Infof("download: %s -> %s (%d bytes)", rawURL, dest, total)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}

	tmp := dest + ".part"
	written, err := writeBody(tmp, resp.Body, total, opts)
	if err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrapf(err, "download %s", rawURL)
	}
	if total > 0 && written != total {
		_ = os.Remove(tmp)
		return "", errors.Errorf("download %s: got %d bytes, expected %d", rawURL, written, total)
	}

	if err := os.Rename(tmp, dest); err != nil {
		_ = os.Remove(tmp)
		return "", errors.Wrapf(err, "rename %s", tmp)
	}

	if opts.Progress != nil {
		opts.Progress(written, total)
	}
	klog.V(1).Infof("download: wrote %s (%d bytes)", dest, written)
	return dest, nil
}

func writeBody(path string, body io.Reader, total int64, opts Options) (int64, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	buf := make([]byte, opts.ChunkSize)
	var written int64
	for {
		n, readErr := body.Read(buf)
		if n > 0 {
			if _, err := f.Write(buf[:n]); err != nil {
				_ = f.Close()
				return written, err
			}
			written += int64(n)
			if opts.Progress != nil {
				opts.Progress(written, total)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			_ = f.Close()
			return written, readErr
		}
	}
	return written, f.Close()
}

// FilenameFromURL returns the last path segment of rawURL, or "download"
// when the path is empty.
func FilenameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "parse url %q", rawURL)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" {
		return "download", nil
	}
	return name, nil
}
