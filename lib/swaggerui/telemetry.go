package swaggerui

import (
	"go.opentelemetry.io/otel"

	"dmi-explorer/lib/restyutil"
)

var tracer = otel.Tracer("lib/swaggerui")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput sets the destination for HTTP transcripts of the
// discovery client's requests. Call this before DiscoverSpecUrl.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}
