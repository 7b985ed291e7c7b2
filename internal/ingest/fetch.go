package ingest

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jlaffaye/ftp"

	"github.com/lox/geoatmos/internal/httputil"
	"github.com/lox/geoatmos/internal/metrics"
)

// DefaultSource is the CelesTrak five-year space-weather file.
const DefaultSource = "https://celestrak.org/SpaceData/SW-Last5Years.csv"

const ftpTimeout = 30 * time.Second

// Fetched is the body of a source together with what the transport said
// about it.
type Fetched struct {
	Body   []byte
	Scheme string
	Status int // HTTP status, 0 for other schemes
}

// Fetcher reads space-weather files over HTTP(S), FTP or from disk.
type Fetcher struct {
	client     *http.Client
	newBackOff func() backoff.BackOff
}

func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = httputil.NewClient()
	}
	return &Fetcher{
		client: client,
		newBackOff: func() backoff.BackOff {
			bo := backoff.NewExponentialBackOff()
			bo.MaxElapsedTime = 2 * time.Minute
			return bo
		},
	}
}

// Fetch reads source, which is an http(s) or ftp URL, a file URL or a
// plain path. A failed HTTP fetch still returns the last status seen.
func (f *Fetcher) Fetch(ctx context.Context, source string) (*Fetched, error) {
	u, err := url.Parse(source)
	scheme := "file"
	if err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		scheme = strings.ToLower(u.Scheme)
	}

	start := time.Now()
	var fetched *Fetched
	switch scheme {
	case "http", "https":
		fetched, err = f.fetchHTTP(ctx, source)
	case "ftp":
		fetched, err = f.fetchFTP(ctx, u)
	case "file":
		path := source
		if u != nil && u.Scheme == "file" {
			path = u.Path
		}
		fetched, err = fetchFile(path)
	default:
		err = fmt.Errorf("unsupported scheme %q", scheme)
	}
	metrics.DownloadLatency.WithLabelValues(scheme).Observe(time.Since(start).Seconds())

	status := "ok"
	if err != nil {
		status = "error"
	}
	metrics.DownloadAttempts.WithLabelValues(scheme, status).Inc()
	if fetched != nil {
		fetched.Scheme = scheme
	}
	return fetched, err
}

func (f *Fetcher) fetchHTTP(ctx context.Context, source string) (*Fetched, error) {
	var (
		body   []byte
		status int
	)
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("new request: %w", err))
		}
		resp, err := f.client.Do(req)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("fetch %s: %w", source, err))
		}
		defer resp.Body.Close()
		status = resp.StatusCode

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return fmt.Errorf("fetch %s: status %d", source, resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			return backoff.Permanent(fmt.Errorf("fetch %s: status %d: %s", source, resp.StatusCode, string(b)))
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("read body: %w", err))
		}
		return nil
	}

	if err := backoff.Retry(operation, backoff.WithContext(f.newBackOff(), ctx)); err != nil {
		return &Fetched{Status: status}, err
	}
	return &Fetched{Body: body, Status: status}, nil
}

// ftpTarget splits an ftp URL into address, credentials and path. Missing
// credentials mean anonymous login.
func ftpTarget(u *url.URL) (addr, user, pass, path string) {
	addr = u.Host
	if u.Port() == "" {
		addr = net.JoinHostPort(u.Hostname(), "21")
	}
	user, pass = "anonymous", "anonymous"
	if u.User != nil {
		user = u.User.Username()
		if p, ok := u.User.Password(); ok {
			pass = p
		}
	}
	return addr, user, pass, u.Path
}

func (f *Fetcher) fetchFTP(ctx context.Context, u *url.URL) (*Fetched, error) {
	addr, user, pass, path := ftpTarget(u)

	conn, err := ftp.Dial(addr, ftp.DialWithTimeout(ftpTimeout), ftp.DialWithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("ftp dial: %w", err)
	}
	defer conn.Quit()

	if err := conn.Login(user, pass); err != nil {
		return nil, fmt.Errorf("ftp login: %w", err)
	}

	resp, err := conn.Retr(path)
	if err != nil {
		return nil, fmt.Errorf("ftp retr: %w", err)
	}
	defer resp.Close()

	body, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("ftp read: %w", err)
	}
	return &Fetched{Body: body}, nil
}

func fetchFile(path string) (*Fetched, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return &Fetched{Body: body}, nil
}
