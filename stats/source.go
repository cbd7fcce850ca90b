package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/andareed/cohortline/cohort"
)

// Source fetches the series for one statistic name.
type Source interface {
	Fetch(ctx context.Context, name string) (*cohort.Series, error)
}

// HTTPSource reads <base>/data/<name>.json.
type HTTPSource struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Fetch(ctx context.Context, name string) (*cohort.Series, error) {
	url := fmt.Sprintf("%s/data/%s.json", s.baseURL, name)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", name, err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch %s: status %d", name, resp.StatusCode)
	}
	return decodeSeries(resp.Body, name)
}

// DirSource reads <dir>/<name>.json, the layout the asset generator writes.
type DirSource struct {
	dir string
}

func NewDirSource(dir string) *DirSource {
	return &DirSource{dir: dir}
}

func (s *DirSource) Fetch(ctx context.Context, name string) (*cohort.Series, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", name, err)
	}
	defer f.Close()
	return decodeSeries(f, name)
}

func decodeSeries(r io.Reader, name string) (*cohort.Series, error) {
	var series cohort.Series
	if err := json.NewDecoder(r).Decode(&series); err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	if series.Name == "" {
		series.Name = name
	}
	return &series, nil
}

// --- Results ---

type Status int

const (
	Loaded Status = iota
	Empty
	Failed
)

func (s Status) String() string {
	switch s {
	case Loaded:
		return "loaded"
	case Empty:
		return "empty"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of fetching one statistic. Only Loaded carries a
// series.
type Result struct {
	Name   string
	Status Status
	Series *cohort.Series
	Err    error
}

// ErrNoData marks a fetch that succeeded with no data points.
var ErrNoData = errors.New("no data points")

// Fetch runs one source call and folds it into a Result.
func Fetch(ctx context.Context, src Source, name string) Result {
	series, err := src.Fetch(ctx, name)
	if err != nil {
		return Result{Name: name, Status: Failed, Err: err}
	}
	if series.Empty() {
		return Result{Name: name, Status: Empty, Err: ErrNoData}
	}
	return Result{Name: name, Status: Loaded, Series: series}
}
