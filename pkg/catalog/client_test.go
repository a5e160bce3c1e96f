package catalog

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/kristinawk/bicimad-nearest/pkg"
	"github.com/kristinawk/bicimad-nearest/pkg/datastructure"

	"github.com/klauspost/compress/gzhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const datasetPath = "/catalogo/300356-0-monumentos-ciudad-madrid.json"

func newCatalogServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != datasetPath {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchGraph(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		records int
		wantErr bool
	}{
		{name: "graph array", status: http.StatusOK, body: `{"@context": {}, "@graph": [{"id": "1"}, {"id": "2"}]}`, records: 2},
		{name: "empty graph", status: http.StatusOK, body: `{"@graph": []}`, records: 0},
		{name: "server error", status: http.StatusInternalServerError, body: `{"@graph": []}`, wantErr: true},
		{name: "not found", status: http.StatusNotFound, body: "gone", wantErr: true},
		{name: "malformed json", status: http.StatusOK, body: `{"@graph": [`, wantErr: true},
		{name: "missing envelope key", status: http.StatusOK, body: `{"data": []}`, wantErr: true},
		{name: "graph is not an array", status: http.StatusOK, body: `{"@graph": {"id": "1"}}`, wantErr: true},
		{name: "graph is null", status: http.StatusOK, body: `{"@graph": null}`, wantErr: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			srv := newCatalogServer(t, c.status, c.body)
			client := NewClient(srv.URL, nil, zap.NewNop())

			graph, err := client.FetchGraph(context.Background(), datasetPath)
			if c.wantErr {
				assert.True(t, errors.Is(err, pkg.ErrRemoteFetch), "got %v", err)
				assert.Nil(t, graph)
				return
			}
			require.NoError(t, err)
			assert.Len(t, graph, c.records)
		})
	}
}

func TestFetchGraphUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, nil, zap.NewNop())
	_, err := client.FetchGraph(context.Background(), datasetPath)
	assert.True(t, errors.Is(err, pkg.ErrRemoteFetch))
}

func TestFetchGraphCanceled(t *testing.T) {
	srv := newCatalogServer(t, http.StatusOK, `{"@graph": []}`)
	client := NewClient(srv.URL, nil, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.FetchGraph(ctx, datasetPath)
	assert.True(t, errors.Is(err, pkg.ErrRemoteFetch))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestFetchGraphGzip(t *testing.T) {
	var records []string
	for i := 0; i < 200; i++ {
		records = append(records, fmt.Sprintf(`{"id": "%d", "title": "Monumento %d"}`, i, i))
	}
	body := `{"@graph": [` + strings.Join(records, ",") + `]}`

	var acceptEncoding string
	handler := gzhttp.GzipHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, body)
	}))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		acceptEncoding = r.Header.Get("Accept-Encoding")
		handler.ServeHTTP(w, r)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, NewHTTPClient(0), zap.NewNop())
	graph, err := client.FetchGraph(context.Background(), datasetPath)
	require.NoError(t, err)
	assert.Len(t, graph, 200)
	assert.Contains(t, acceptEncoding, "gzip")
}

func TestFetchPlaces(t *testing.T) {
	body, err := os.ReadFile("testdata/monuments.json")
	require.NoError(t, err)

	srv := newCatalogServer(t, http.StatusOK, string(body))
	client := NewClient(srv.URL, nil, zap.NewNop())

	places, err := client.FetchPlaces(context.Background(), datasetPath)
	require.NoError(t, err)
	require.Len(t, places, 4)

	assert.Equal(t, "4047", string(places[0].ID))
	assert.Equal(t, "3902", string(places[1].ID))
	assert.Equal(t, "Puerta de Alcalá", places[0].Title)
	assert.Equal(t, datastructure.Text("PLAZA INDEPENDENCIA 1"), places[0].Address.StreetAddress)
	assert.Nil(t, places[2].Organization)
	assert.False(t, places[3].Location.Complete())

	t.Run("scalar optional fields of any type", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, `{"@graph": [{"id": 7, "title": "Obelisco",
			"address": {"postal-code": 28001, "street-address": "PASEO CASTELLANA", "locality": null},
			"location": {"latitude": 40.4, "longitude": -3.7},
			"organization": {"accesibility": 1, "services": true, "organization-name": "Obelisco"}}]}`)
		client := NewClient(srv.URL, nil, zap.NewNop())

		places, err := client.FetchPlaces(context.Background(), datasetPath)
		require.NoError(t, err)
		require.Len(t, places, 1)
		assert.Equal(t, datastructure.Text("28001"), places[0].Address.PostalCode)
		assert.Equal(t, datastructure.Text(""), places[0].Address.Locality)
		assert.Equal(t, datastructure.Text("1"), places[0].Organization.Accessibility)
		assert.Equal(t, datastructure.Text("true"), places[0].Organization.Services)

		flat, err := Flatten(places, DefaultRequiredFields)
		require.NoError(t, err)
		require.Len(t, flat, 1)
		assert.Equal(t, "28001", flat[0].PostalCode)
		assert.Equal(t, "1", flat[0].Accessibility)
	})

	t.Run("element that does not decode", func(t *testing.T) {
		srv := newCatalogServer(t, http.StatusOK, `{"@graph": [{"id": "1", "title": ["not", "a", "string"]}]}`)
		client := NewClient(srv.URL, nil, zap.NewNop())
		_, err := client.FetchPlaces(context.Background(), datasetPath)
		assert.True(t, errors.Is(err, pkg.ErrRemoteFetch))
	})
}
