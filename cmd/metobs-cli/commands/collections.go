package commands

import (
	"dmi-explorer/lib/cliutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(collectionsCmd)
}

var collectionsCmd = &cobra.Command{
	Use:   "collections",
	Short: "Lists the feature collections the API exposes.",
	Run: func(cmd *cobra.Command, args []string) {
		client := newClient()

		collections, err := client.Collections(cmd.Context())
		if err != nil {
			cliutil.Fatal("failed to fetch collections", err)
		}
		printJson(collections)
	},
}
