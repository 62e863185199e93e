package metobs

import (
	"context"
	"fmt"
	"io"
	"strings"

	"go.opentelemetry.io/otel/codes"
)

// WriteSummary renders a human-readable overview of the API to w: the
// available collections, the conformance classes, and the parameters
// supported by an example station.
func WriteSummary(ctx context.Context, c *Client, w io.Writer) error {
	ctx, span := tracer.Start(ctx, "WriteSummary")
	defer span.End()

	fmt.Fprintln(w, "DMI Open Data API Structure")
	fmt.Fprintln(w, strings.Repeat("=", 50))

	collections, err := c.Collections(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch collections")
		return fmt.Errorf("fetch collections: %w", err)
	}
	fmt.Fprintln(w, "\nAvailable Collections:")
	for _, collection := range collections.Collections {
		fmt.Fprintf(w, "- %s: %s\n", collection.Id, orNA(collection.Title))
		fmt.Fprintf(w, "  Description: %s\n\n", orNA(collection.Description))
	}

	conformance, err := c.Conformance(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch conformance")
		return fmt.Errorf("fetch conformance: %w", err)
	}
	fmt.Fprintln(w, "\nAPI Conforms to:")
	for _, standard := range conformance.ConformsTo {
		fmt.Fprintf(w, "- %s\n", standard)
	}

	stations, err := c.Stations(ctx, StationQuery{Limit: 1})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch example station")
		return fmt.Errorf("fetch example station: %w", err)
	}
	if len(stations.Features) > 0 {
		station := stations.Features[0]
		fmt.Fprintf(w, "\nExample Station: %s\n", orNA(station.Properties.Name))
		fmt.Fprintln(w, "Available Parameters:")
		for _, param := range station.Properties.ParameterId {
			fmt.Fprintf(w, "- %s\n", param)
		}
	}

	return nil
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
