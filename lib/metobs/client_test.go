package metobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"dmi-explorer/lib/telemetry"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestStationsQueryParams(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})
	_, err := client.Stations(context.Background(), StationQuery{Limit: 5})
	require.NoError(t, err)

	require.Equal(t, "/collections/station/items", gotPath)
	want := url.Values{"limit": {"5"}}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestStationsBBoxQuery(t *testing.T) {
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})
	query := StationQuery{
		Limit: 2,
		BBox:  &BBox{West: 7.9, South: 54.5, East: 15.3, North: 57.8},
	}
	_, err := client.Stations(context.Background(), query)
	require.NoError(t, err)

	want := url.Values{"limit": {"2"}, "bbox": {"7.90,54.50,15.30,57.80"}}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestObservationsQueryParams(t *testing.T) {
	var gotPath string
	var gotQuery url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query()
		w.Write([]byte(`{"features": []}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})

	// Unset optional filters stay out of the request, limit falls back to
	// the default.
	_, err := client.Observations(context.Background(), ObservationQuery{StationId: "06074"})
	require.NoError(t, err)

	require.Equal(t, "/collections/observation/items", gotPath)
	want := url.Values{"limit": {"10"}, "stationId": {"06074"}}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}

	_, err = client.Observations(context.Background(), ObservationQuery{
		ParameterId: "temp_dry",
		StationId:   "06074",
		Datetime:    "2023-01-01T00:00:00Z/2023-01-02T00:00:00Z",
		Limit:       25,
	})
	require.NoError(t, err)

	want = url.Values{
		"limit":       {"25"},
		"parameterId": {"temp_dry"},
		"stationId":   {"06074"},
		"datetime":    {"2023-01-01T00:00:00Z/2023-01-02T00:00:00Z"},
	}
	if diff := cmp.Diff(want, gotQuery); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestRequestHeaders(t *testing.T) {
	var gotApiKey string
	var gotAccept string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotApiKey = r.Header.Get("X-Gravitee-Api-Key")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte(`{"conformsTo": []}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})
	_, err := client.Conformance(context.Background())
	require.NoError(t, err)

	require.Equal(t, "test-key", gotApiKey)
	require.Equal(t, "application/json", gotAccept)
}

func TestNon2xxStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Invalid API key", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "bogus"})
	_, err := client.Collections(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "403")
}

func TestSpecWriteIsIdempotent(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "metobs_test")
	defer cleanup()

	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`{"openapi": "3.0.1", "info": {"title": "DMI Open Data API"}, "paths": {}}`))
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})

	doc, err := client.Spec(context.Background())
	require.NoError(t, err)
	require.Equal(t, "/api", gotPath)

	dir := t.TempDir()
	first := filepath.Join(dir, "dmi_openapi.json")
	require.NoError(t, WriteDocument(first, doc))

	again, err := client.Spec(context.Background())
	require.NoError(t, err)
	second := filepath.Join(dir, "again.json")
	require.NoError(t, WriteDocument(second, again))

	a, err := os.ReadFile(first)
	require.NoError(t, err)
	b, err := os.ReadFile(second)
	require.NoError(t, err)
	require.Equal(t, a, b)
	require.Contains(t, string(a), `"openapi": "3.0.1"`)
}
