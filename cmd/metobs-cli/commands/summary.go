package commands

import (
	"fmt"
	"os"

	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/metobs"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(summaryCmd)
}

// The documented resource paths, printed as a quick reference after the
// live overview.
var endpoints = []struct {
	path        string
	description string
}{
	{"GET /", "Landing page"},
	{"GET /collections", "List collections"},
	{"GET /collections/{collectionId}", "Get collection details"},
	{"GET /collections/{collectionId}/items", "Get collection items"},
	{"GET /collections/{collectionId}/items/{featureId}", "Get single item"},
	{"GET /conformance", "API standards conformance"},
	{"GET /api", "OpenAPI specification"},
}

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Fetches the spec and prints an overview of the API structure.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		fmt.Println("Fetching DMI API Documentation...")
		doc, err := client.Spec(cmd.Context())
		if err != nil {
			cliutil.Fatal("failed to fetch the openapi spec", err)
		}
		if err := metobs.WriteDocument(specFile, doc); err != nil {
			cliutil.Fatal("failed to write the openapi spec", err)
		}
		fmt.Println("OpenAPI spec saved to " + specFile)
		fmt.Println()

		if err := metobs.WriteSummary(cmd.Context(), client, os.Stdout); err != nil {
			cliutil.Fatal("failed to summarize the api", err)
		}

		fmt.Println()
		t := newTable()
		t.SetTitle("API Endpoint Documentation")
		t.AppendHeader(table.Row{"Endpoint", "Description"})
		for _, endpoint := range endpoints {
			t.AppendRow(table.Row{endpoint.path, endpoint.description})
		}
		t.Render()
	},
}
