package commands

import (
	"context"
	"log/slog"
	"time"

	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/metobs"

	"github.com/antzucaro/matchr"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var observationsParameter *string
var observationsStation *string
var observationsDatetime *string
var observationsLimit *int
var observationsJson *bool

func init() {
	observationsParameter = observationsCmd.Flags().String("parameter", "", "Filter by parameter id, e.g. temp_dry.")
	observationsStation = observationsCmd.Flags().String("station", "", "Filter by station id, e.g. 06074.")
	observationsDatetime = observationsCmd.Flags().String("datetime", "", "RFC 3339 instant or start/end interval.")
	observationsLimit = observationsCmd.Flags().Int("limit", metobs.DefaultLimit, "Maximum number of observations to fetch.")
	observationsJson = observationsCmd.Flags().Bool("json", false, "Print the response as JSON instead of a table.")
	rootCmd.AddCommand(observationsCmd)
}

var observationsCmd = &cobra.Command{
	Use:   "observations [--parameter <id>] [--station <id>] [--datetime <range>] [--limit <n>] [--json]",
	Short: "Lists observations matching the given filters.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		observations, err := client.Observations(cmd.Context(), metobs.ObservationQuery{
			ParameterId: *observationsParameter,
			StationId:   *observationsStation,
			Datetime:    *observationsDatetime,
			Limit:       *observationsLimit,
		})
		if err != nil {
			cliutil.Fatal("failed to fetch observations", err)
		}

		if len(observations.Features) == 0 && *observationsParameter != "" {
			suggestParameter(cmd.Context(), client, *observationsParameter)
		}

		if *observationsJson {
			printJson(observations)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Observed", "Station", "Parameter", "Value"})
		for _, observation := range observations.Features {
			t.AppendRow(table.Row{
				observation.Properties.Observed.Format(time.RFC3339),
				observation.Properties.StationId,
				observation.Properties.ParameterId,
				observation.Properties.Value,
			})
		}
		t.Render()
	},
}

// suggestParameter logs the closest known parameter id when a filter comes
// back empty. The vocabulary comes from whatever an example station reports.
func suggestParameter(ctx context.Context, client *metobs.Client, parameter string) {
	stations, err := client.Stations(ctx, metobs.StationQuery{Limit: 1})
	if err != nil || len(stations.Features) == 0 {
		return
	}

	var mostSimilar string
	var mostSimilarity float64
	for _, known := range stations.Features[0].Properties.ParameterId {
		similarity := matchr.JaroWinkler(parameter, known, false)
		if similarity > mostSimilarity {
			mostSimilarity = similarity
			mostSimilar = known
		}
	}
	if mostSimilar != "" && mostSimilar != parameter {
		slog.Warn("no observations for parameter", "parameter", parameter, "closest", mostSimilar)
	}
}
