package metobs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func summaryTestServer(t *testing.T, stationsBody string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/collections", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"collections": [
			{"id": "station", "title": "Stations", "description": "Meteorological stations"},
			{"id": "observation", "title": ""}
		]}`))
	})
	mux.HandleFunc("/conformance", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"conformsTo": ["http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core"]}`))
	})
	mux.HandleFunc("/collections/station/items", func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "1" {
			t.Errorf("example station request used limit %q, want %q", got, "1")
		}
		w.Write([]byte(stationsBody))
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestWriteSummary(t *testing.T) {
	server := summaryTestServer(t, `{"features": [{
		"id": "06074",
		"properties": {"name": "Aarhus Syd", "stationId": "06074", "parameterId": ["temp_dry", "wind_speed"]}
	}]}`)

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})
	var out strings.Builder
	require.NoError(t, WriteSummary(context.Background(), client, &out))

	text := out.String()
	require.Contains(t, text, "DMI Open Data API Structure")
	require.Contains(t, text, strings.Repeat("=", 50))
	require.Contains(t, text, "- station: Stations")
	require.Contains(t, text, "  Description: Meteorological stations")
	require.Contains(t, text, "- observation: N/A")
	require.Contains(t, text, "API Conforms to:")
	require.Contains(t, text, "- http://www.opengis.net/spec/ogcapi-features-1/1.0/conf/core")
	require.Contains(t, text, "Example Station: Aarhus Syd")
	require.Contains(t, text, "Available Parameters:")
	require.Contains(t, text, "- temp_dry")
	require.Contains(t, text, "- wind_speed")
}

func TestWriteSummarySkipsEmptyStationList(t *testing.T) {
	server := summaryTestServer(t, `{"features": []}`)

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})
	var out strings.Builder
	require.NoError(t, WriteSummary(context.Background(), client, &out))

	require.NotContains(t, out.String(), "Example Station")
	require.NotContains(t, out.String(), "Available Parameters")
}

func TestWriteSummaryPropagatesError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down for maintenance", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Options{BaseUrl: server.URL, ApiKey: "test-key"})
	var out strings.Builder
	err := WriteSummary(context.Background(), client, &out)
	require.Error(t, err)
	require.Contains(t, err.Error(), "fetch collections")
}
