package pipeline

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/mlazarov/confminer/internal/cache"
	"github.com/mlazarov/confminer/internal/model"
	"github.com/mlazarov/confminer/internal/util"
	"github.com/mlazarov/confminer/internal/worker"
)

// Fetcher retrieves page HTML for the extractors. Lookup order: local
// archive mirror, cache, network. Network fetches go through the
// robots.txt gate and the per-domain rate limiter.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64

	pages   cache.Cache
	robots  *util.RobotsChecker
	limiter *worker.Limiter
	archive model.ArchiveConfig
	verbose bool
}

// NewFetcher creates a fetcher from configuration.
func NewFetcher(cfg *model.Config) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{
			Timeout: cfg.HTTP.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.HTTP.UserAgent,
		maxBytes:  cfg.HTTP.MaxBodyBytes,
		limiter:   worker.NewLimiter(cfg.Concurrency.RequestsPerSecond, 0),
		archive:   cfg.Archive,
		verbose:   cfg.Output.Verbose,
	}

	if cfg.Cache.Enabled {
		f.pages = cache.NewLayeredCache(cfg.Cache.TTL, cfg.Cache.Dir, cfg.Cache.TTL)
	}
	if cfg.HTTP.RespectRobots {
		f.robots = util.NewRobotsChecker(util.NormalizeUserAgent(cfg.HTTP.UserAgent), cfg.HTTP.Timeout)
	}

	return f
}

// Fetch retrieves the HTML body of a URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if f.archive.Local {
		return f.fetchArchive(rawURL)
	}

	key := cache.Key(rawURL)
	if f.pages != nil {
		if body, found := f.pages.Get(key); found {
			if f.verbose {
				fmt.Printf("Cache hit: %s\n", rawURL)
			}
			return string(body), nil
		}
	}

	body, err := f.fetchNetwork(ctx, rawURL)
	if err != nil {
		return "", err
	}

	if f.pages != nil {
		if err := f.pages.Set(key, []byte(body), 0); err != nil && f.verbose {
			fmt.Printf("Warning: cache write failed for %s: %v\n", rawURL, err)
		}
	}
	return body, nil
}

// fetchArchive reads the page from the local website mirror. Mirrors
// store a URL at <dir>/<host>/<path>, with directory URLs resolved to
// their index.html.
func (f *Fetcher) fetchArchive(rawURL string) (string, error) {
	path, err := f.archivePath(rawURL)
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read archive page %s: %w", path, err)
	}
	if f.verbose {
		fmt.Printf("Archive hit: %s\n", path)
	}
	return string(data), nil
}

func (f *Fetcher) archivePath(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse URL: %w", err)
	}

	dir := f.archive.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dir = filepath.Join(home, "Web")
	}

	p := parsed.Path
	if p == "" || strings.HasSuffix(p, "/") {
		p += "index.html"
	}
	return filepath.Join(dir, parsed.Host, filepath.FromSlash(p)), nil
}

// fetchNetwork performs the rate-limited, robots-gated HTTP request.
func (f *Fetcher) fetchNetwork(ctx context.Context, rawURL string) (string, error) {
	if f.robots != nil {
		allowed, crawlDelay, err := f.robots.CanFetch(ctx, rawURL)
		if err != nil {
			return "", fmt.Errorf("robots check: %w", err)
		}
		if !allowed {
			return "", fmt.Errorf("blocked by robots.txt: %s", rawURL)
		}
		if err := f.limiter.WaitWithDelay(ctx, rawURL, crawlDelay); err != nil {
			return "", fmt.Errorf("rate limit: %w", err)
		}
	} else if err := f.limiter.Wait(ctx, rawURL); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
