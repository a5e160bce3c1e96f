package catalog

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"

	"github.com/klauspost/compress/gzhttp"
	"go.uber.org/zap"
)

// GraphKey is the envelope key holding the dataset rows in datos.madrid.es JSON documents.
const GraphKey = "@graph"

// Client fetches JSON-LD datasets from an open data portal.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *zap.Logger
}

// NewHTTPClient returns a client with transparent gzip support. A zero timeout means no timeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: gzhttp.Transport(http.DefaultTransport),
		Timeout:   timeout,
	}
}

func NewClient(baseURL string, httpClient *http.Client, log *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = NewHTTPClient(0)
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		log:        log,
	}
}

// FetchGraph issues a single GET to baseURL+datasetPath and returns the elements of the "@graph" array.
func (c *Client) FetchGraph(ctx context.Context, datasetPath string) ([]json.RawMessage, error) {
	url := c.baseURL + datasetPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrRemoteFetch, "building request for %s", url)
	}
	req.Header.Set("Accept", "application/json")

	c.log.Debug("fetching dataset", zap.String("url", url))
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrRemoteFetch, "GET %s", url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<16))
		return nil, pkg.WrapErrorf(nil, pkg.ErrRemoteFetch, "GET %s: unexpected status %d", url, resp.StatusCode)
	}

	var envelope map[string]json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrRemoteFetch, "GET %s: malformed JSON", url)
	}

	raw, ok := envelope[GraphKey]
	if !ok {
		return nil, pkg.WrapErrorf(nil, pkg.ErrRemoteFetch, "GET %s: response has no %q key", url, GraphKey)
	}

	var graph []json.RawMessage
	if err := json.Unmarshal(raw, &graph); err != nil || graph == nil {
		return nil, pkg.WrapErrorf(err, pkg.ErrRemoteFetch, "GET %s: %q is not an array", url, GraphKey)
	}

	c.log.Info("dataset fetched",
		zap.String("url", url),
		zap.Int("records", len(graph)),
		zap.Duration("took", time.Since(start)),
	)
	return graph, nil
}

// FetchPlaces fetches the dataset and decodes every "@graph" element as a Place.
func (c *Client) FetchPlaces(ctx context.Context, datasetPath string) ([]datastructure.Place, error) {
	graph, err := c.FetchGraph(ctx, datasetPath)
	if err != nil {
		return nil, err
	}

	places := make([]datastructure.Place, 0, len(graph))
	for i, raw := range graph {
		var place datastructure.Place
		if err := json.Unmarshal(raw, &place); err != nil {
			return nil, pkg.WrapErrorf(err, pkg.ErrRemoteFetch, "decoding %s element %d", GraphKey, i)
		}
		places = append(places, place)
	}
	return places, nil
}
