package commands

import (
	"fmt"

	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/metobs"

	"github.com/spf13/cobra"
)

const specFile = "dmi_openapi.json"

func init() {
	rootCmd.AddCommand(specCmd)
}

var specCmd = &cobra.Command{
	Use:   "spec",
	Short: "Fetches the OpenAPI specification and saves it to " + specFile + ".",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		doc, err := client.Spec(cmd.Context())
		if err != nil {
			cliutil.Fatal("failed to fetch the openapi spec", err)
		}
		if err := metobs.WriteDocument(specFile, doc); err != nil {
			cliutil.Fatal("failed to write the openapi spec", err)
		}
		fmt.Println("OpenAPI spec saved to " + specFile)
	},
}
