package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/configutil"
	"dmi-explorer/lib/metobs"
	"dmi-explorer/lib/restyutil"
	"dmi-explorer/lib/telemetry"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type Config struct {
	BaseUrl        string `json:"base_url"`
	ApiKey         string `json:"api_key"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

var verbose *bool

var rootCmd = &cobra.Command{
	Use:   "metobs-cli",
	Short: "metobs-cli explores the DMI Open Data metObs API.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging and HTTP transcript output.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newClient() *metobs.Client {
	config, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil {
		cliutil.Fatal("failed to read config", err)
	}
	if config.ApiKey == "" {
		cliutil.Fatal("invalid config", errors.New("api_key is not set"))
	}

	if *verbose {
		metobs.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/metobs"))
	}

	return metobs.NewClient(metobs.Options{
		BaseUrl: config.BaseUrl,
		ApiKey:  config.ApiKey,
		Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
	})
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(os.Stdout)
	return t
}

func printJson(v any) {
	contents, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		cliutil.Fatal("failed to render json", err)
	}
	fmt.Println(string(contents))
}
