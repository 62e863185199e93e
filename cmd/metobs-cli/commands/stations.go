package commands

import (
	"fmt"

	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/metobs"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var stationsLimit *int
var stationsBBox *string
var stationsJson *bool

func init() {
	stationsLimit = stationsCmd.Flags().Int("limit", metobs.DefaultLimit, "Maximum number of stations to fetch.")
	stationsBBox = stationsCmd.Flags().String("bbox", "", "Bounding box filter, \"west,south,east,north\" in decimal degrees.")
	stationsJson = stationsCmd.Flags().Bool("json", false, "Print the response as JSON instead of a table.")
	rootCmd.AddCommand(stationsCmd)
}

var stationsCmd = &cobra.Command{
	Use:   "stations [--limit <n>] [--bbox <west,south,east,north>] [--json]",
	Short: "Lists meteorological stations.",
	Run: func(cmd *cobra.Command, args []string) {
		query := metobs.StationQuery{Limit: *stationsLimit}
		if *stationsBBox != "" {
			bbox, err := metobs.ParseBBox(*stationsBBox)
			if err != nil {
				cliutil.Fatal("failed to parse bbox", err)
			}
			query.BBox = bbox
		}

		client := newClient()
		stations, err := client.Stations(cmd.Context(), query)
		if err != nil {
			cliutil.Fatal("failed to fetch stations", err)
		}

		if *stationsJson {
			printJson(stations)
			return
		}

		t := newTable()
		t.AppendHeader(table.Row{"Id", "Name", "Type", "Status", "Coordinates"})
		for _, station := range stations.Features {
			t.AppendRow(table.Row{
				station.Properties.StationId,
				station.Properties.Name,
				station.Properties.Type,
				station.Properties.Status,
				formatCoordinates(station.Geometry),
			})
		}
		t.Render()
	},
}

// formatCoordinates renders a GeoJSON point as "lat, lon".
func formatCoordinates(geometry metobs.Geometry) string {
	if len(geometry.Coordinates) < 2 {
		return ""
	}
	return fmt.Sprintf("%.4f, %.4f", geometry.Coordinates[1], geometry.Coordinates[0])
}
