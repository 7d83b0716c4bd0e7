// Package snapshot is the data-loading boundary: it fetches the generated
// JSON documents, coerces them defensively into canonical shapes, and holds
// the result as one immutable snapshot per load cycle.
package snapshot

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/wdaytrack/Insider-Tracker-Backend/internal/apperrors"
	"github.com/wdaytrack/Insider-Tracker-Backend/internal/version"
)

// Document names produced by the static-data generator.
const (
	DocTransactions = "transactions.json"
	DocPriceHistory = "price_history.json"
	DocOwnership    = "institutional_ownership.json"
	DocCluster      = "ownership_cluster.json"
	DocExecutives   = "executives.json"
	DocStats        = "stats.json"
)

// Source retrieves raw documents by name. Implementations do not parse;
// decoding and shape coercion happen in the Loader.
type Source interface {
	Fetch(ctx context.Context, name string) ([]byte, error)
	Describe() string
}

// FileSource reads documents from a local directory, typically the
// generator's output directory during development.
type FileSource struct {
	dir string
}

// NewFileSource creates a FileSource rooted at dir.
func NewFileSource(dir string) *FileSource {
	return &FileSource{dir: dir}
}

// Fetch reads one document from disk. A missing file maps to
// apperrors.ErrDocumentNotFound so callers can treat local and remote sources
// uniformly.
func (s *FileSource) Fetch(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDocumentNotFound, name)
		}
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrFetchFailed, name, err)
	}
	return data, nil
}

// Describe returns a human-readable description of the source location.
func (s *FileSource) Describe() string {
	return "dir " + s.dir
}

// HTTPSource fetches documents from the static web host the generator uploads
// to. Requests carry a timeout and an identifying User-Agent.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

// NewHTTPSource creates an HTTPSource for the given base URL
// (e.g. "https://example.com/workday/data").
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Fetch retrieves one document over HTTP. 404 maps to
// apperrors.ErrDocumentNotFound; any other non-200 status is an
// apperrors.ErrUnexpectedStatus.
func (s *HTTPSource) Fetch(ctx context.Context, name string) ([]byte, error) {
	url := s.baseURL + "/" + name

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrFetchFailed, name, err)
	}
	req.Header.Set("User-Agent", "InsiderTracker/"+version.Version)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrFetchFailed, name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", apperrors.ErrDocumentNotFound, name)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: %s: %s", apperrors.ErrUnexpectedStatus, name, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", apperrors.ErrFetchFailed, name, err)
	}
	return data, nil
}

// Describe returns a human-readable description of the source location.
func (s *HTTPSource) Describe() string {
	return "url " + s.baseURL
}
