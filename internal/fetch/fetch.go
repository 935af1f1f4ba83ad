// Package fetch retrieves the catalog page and the installer bootstrapper.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/conn-castle/vs-layout/internal/messages"
)

// Defaults used when Options leave a field zero.
const (
	DefaultTimeout   = 60 * time.Second
	DefaultMaxBytes  = int64(200 * 1024 * 1024) // 200 MiB
	DefaultUserAgent = "vsl (+https://github.com/conn-castle/vs-layout)"
)

// Options configures a Client.
type Options struct {
	Timeout   time.Duration
	MaxBytes  int64
	UserAgent string
}

// Client performs single-attempt HTTP GETs. Failed requests are not retried.
type Client struct {
	http      *http.Client
	maxBytes  int64
	userAgent string
}

// New returns a Client for opts.
func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxBytes <= 0 {
		opts.MaxBytes = DefaultMaxBytes
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	return &Client{
		http:      &http.Client{Timeout: opts.Timeout},
		maxBytes:  opts.MaxBytes,
		userAgent: opts.UserAgent,
	}
}

// Document fetches url and parses the body as HTML.
func (c *Client) Document(ctx context.Context, url string) (*goquery.Document, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, readError(url, err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf(messages.FetchDownloadTooLargeFmt, url, len(body), c.maxBytes)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf(messages.FetchParseDocumentFmt, url, err)
	}
	doc.Url = resp.Request.URL
	return doc, nil
}

// ToFile fetches url into dest, replacing its content, and returns the number
// of bytes written.
func (c *Client) ToFile(ctx context.Context, url string, dest *os.File) (int64, error) {
	resp, err := c.get(ctx, url)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if err := dest.Truncate(0); err != nil {
		return 0, fmt.Errorf(messages.FetchTruncateFileFmt, dest.Name(), err)
	}
	if _, err := dest.Seek(0, io.SeekStart); err != nil {
		return 0, fmt.Errorf(messages.FetchTruncateFileFmt, dest.Name(), err)
	}
	n, err := io.Copy(dest, io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return n, readError(url, err)
	}
	if n > c.maxBytes {
		return n, fmt.Errorf(messages.FetchDownloadTooLargeFmt, url, n, c.maxBytes)
	}
	return n, nil
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.FetchRequestFailedFmt, url, err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, readError(url, err)
	}
	if resp.StatusCode != http.StatusOK {
		status := resp.Status
		_ = resp.Body.Close()
		return nil, fmt.Errorf(messages.FetchDownloadUnexpectedStatusFmt, url, status)
	}
	return resp, nil
}

func readError(url string, err error) error {
	if isTimeoutError(err) {
		return fmt.Errorf(messages.FetchDownloadTimeoutFmt, url)
	}
	return fmt.Errorf(messages.FetchDownloadFailedFmt, url, err)
}

// isTimeoutError reports whether err is a network or context timeout.
func isTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
