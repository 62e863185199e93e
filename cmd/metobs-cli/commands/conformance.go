package commands

import (
	"dmi-explorer/lib/cliutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(conformanceCmd)
}

var conformanceCmd = &cobra.Command{
	Use:   "conformance",
	Short: "Lists the OGC API standards the service conforms to.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		conformance, err := client.Conformance(cmd.Context())
		if err != nil {
			cliutil.Fatal("failed to fetch conformance", err)
		}
		printJson(conformance)
	},
}
