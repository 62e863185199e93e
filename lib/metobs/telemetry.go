package metobs

import (
	"go.opentelemetry.io/otel"

	"dmi-explorer/lib/restyutil"
)

var tracer = otel.Tracer("lib/metobs")

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput sets the destination for HTTP transcripts of
// every request the client makes. Call this before NewClient.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}
