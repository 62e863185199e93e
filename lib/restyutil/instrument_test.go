package restyutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"dmi-explorer/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
)

type capturedMessage struct {
	id       string
	contents string
}

type captureOutput struct {
	messages []capturedMessage
}

func (o *captureOutput) Write(id string, contents string) {
	o.messages = append(o.messages, capturedMessage{id: id, contents: contents})
}

func TestInstrumentClientWritesTranscripts(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "restyutil_test")
	defer cleanup()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": true}`))
	}))
	defer server.Close()

	output := &captureOutput{}
	client := resty.New()
	InstrumentClient(client, "restyutil_test", output)

	res, err := client.R().Get(server.URL + "/thing")
	require.NoError(t, err)
	require.True(t, res.IsSuccess())

	// The message id assigned before the request must come back out of the
	// request context on the response side.
	require.Len(t, output.messages, 1)
	require.Equal(t, "1", output.messages[0].id)
	require.Contains(t, output.messages[0].contents, "---- REQUEST ----")
	require.Contains(t, output.messages[0].contents, "GET "+server.URL+"/thing")
	require.Contains(t, output.messages[0].contents, `{"ok": true}`)
}
