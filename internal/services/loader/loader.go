// Package loader fetches the usage and FX documents from URLs or local files.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/j-veylop/costboard/internal/logger"
	"github.com/j-veylop/costboard/internal/models"
)

// TransportError reports a document that could not be retrieved or parsed.
// StatusCode is set when the server answered with a non-success status.
type TransportError struct {
	Err        error
	Path       string
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.Path)
	}
	return fmt.Sprintf("fetch %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Config holds configuration for the loader.
type Config struct {
	Client      *http.Client
	UsageSource string
	FxSource    string
	Timeout     time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		UsageSource: "data/usage_daily.json",
		FxSource:    "data/fx.json",
		Timeout:     30 * time.Second,
	}
}

// Loader retrieves both dashboard documents for a render pass.
type Loader struct {
	client *http.Client
	config Config
}

// New creates a new loader.
func New(config Config) *Loader {
	client := config.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Loader{client: client, config: config}
}

// LoadAll fetches the usage and FX documents concurrently and waits for both.
// The first failure cancels the other fetch and is returned as is.
func (l *Loader) LoadAll(ctx context.Context) (*models.UsageSeries, *models.FxQuote, error) {
	if l.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.config.Timeout)
		defer cancel()
	}

	var (
		usage models.UsageSeries
		fx    models.FxQuote
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		usage, err = FetchJSON[models.UsageSeries](gctx, l.client, l.config.UsageSource)
		return err
	})
	g.Go(func() error {
		var err error
		fx, err = FetchJSON[models.FxQuote](gctx, l.client, l.config.FxSource)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	logger.Debug("documents loaded", "days", len(usage.Days), "fx_rate", fx.Rate() != nil)
	return &usage, &fx, nil
}

// FetchJSON reads the document at path and decodes it into T. path may be an
// http(s) URL, a file:// URL or a plain file path. HTTP responses are never
// served from a cache.
func FetchJSON[T any](ctx context.Context, client *http.Client, path string) (T, error) {
	var zero T

	body, err := read(ctx, client, path)
	if err != nil {
		return zero, err
	}

	var decoded T
	if err := json.Unmarshal(body, &decoded); err != nil {
		return zero, &TransportError{Path: path, Err: fmt.Errorf("failed to parse document: %w", err)}
	}

	return decoded, nil
}

// LocalPath resolves a source to the file it names. Everything after
// "file://" is taken as the path, so "file://data/fx.json" is relative and
// "file:///srv/fx.json" is absolute. http(s) URLs and empty sources report false.
func LocalPath(source string) (string, bool) {
	switch {
	case source == "":
		return "", false
	case strings.HasPrefix(source, "http://"), strings.HasPrefix(source, "https://"):
		return "", false
	case strings.HasPrefix(source, "file://"):
		name := strings.TrimPrefix(source, "file://")
		return name, name != ""
	default:
		return source, true
	}
}

func read(ctx context.Context, client *http.Client, path string) ([]byte, error) {
	if name, ok := LocalPath(path); ok {
		return readFile(ctx, path, name)
	}
	if strings.HasPrefix(path, "file://") {
		return nil, &TransportError{Path: path, Err: errors.New("file URL has no path")}
	}
	return readHTTP(ctx, client, path)
}

func readHTTP(ctx context.Context, client *http.Client, path string) ([]byte, error) {
	if client == nil {
		client = &http.Client{}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache, no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			logger.Error("failed to close response body", "path", path, "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{Path: path, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Path: path, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	return body, nil
}

func readFile(ctx context.Context, path, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}

	body, err := os.ReadFile(name)
	if err != nil {
		return nil, &TransportError{Path: path, Err: err}
	}
	return body, nil
}
