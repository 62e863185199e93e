package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/configutil"
	"dmi-explorer/lib/restyutil"
	"dmi-explorer/lib/swaggerui"
	"dmi-explorer/lib/telemetry"
)

type Config struct {
	PageUrl     string `json:"page_url"`
	Output      string `json:"output"`
	DebuggerUrl string `json:"debugger_url"`
	// ResolveSpecUrl fetches a discovered-but-not-extracted spec url
	// directly over HTTP instead of only reporting it.
	ResolveSpecUrl bool `json:"resolve_spec_url"`
}

func main() {
	configPath := flag.String("config", "swagger.json5", "Path to the extraction config.")
	probeOnly := flag.Bool("probe-only", false, "Skip the browser and only scan the page markup for the spec url.")
	verbose := flag.Bool("v", false, "Enable debug logging and HTTP transcript output.")
	flag.Parse()

	ctx := cliutil.SignalContext()

	telemetry.InitSlog(*verbose)
	err := telemetry.SetupFromEnv(ctx, "swagger-extract")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	// Flush the batched exporters, otherwise a short run exits before the
	// first export interval and drops every span.
	defer telemetry.Shutdown(context.Background())
	telemetry.InstrumentPerfStats(ctx)

	// Running without a config file is fine, every setting has a default.
	config, err := configutil.ReadConfig[Config](*configPath)
	if err != nil && !os.IsNotExist(err) {
		cliutil.Fatal("failed to read config", err)
	}
	if config.Output == "" {
		config.Output = "dmi_swagger.json"
	}

	if *verbose {
		swaggerui.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/swaggerui"))
	}

	if *probeOnly {
		probe(ctx, config)
		return
	}

	result, err := swaggerui.Extract(ctx, swaggerui.Options{
		PageUrl:     config.PageUrl,
		DebuggerUrl: config.DebuggerUrl,
	})
	if err != nil {
		cliutil.Fatal("failed to extract the spec", err)
	}

	if result.Spec != nil {
		if err := swaggerui.WriteSpec(config.Output, result.Spec); err != nil {
			cliutil.Fatal("failed to write the spec", err)
		}
		fmt.Println("Saved to: " + config.Output)
		return
	}

	fmt.Println("Could not extract specification from JavaScript")
	if result.SpecUrl == "" {
		return
	}
	fmt.Println("Found spec URL: " + result.SpecUrl)
	if config.ResolveSpecUrl {
		resolve(ctx, result.SpecUrl, config.Output)
	}
}

func probe(ctx context.Context, config Config) {
	pageUrl := config.PageUrl
	if pageUrl == "" {
		pageUrl = swaggerui.DefaultPageUrl
	}

	specUrl, err := swaggerui.DiscoverSpecUrl(ctx, pageUrl)
	if err != nil {
		cliutil.Fatal("failed to discover the spec url", err)
	}
	fmt.Println("Found spec URL: " + specUrl)

	if config.ResolveSpecUrl {
		resolve(ctx, specUrl, config.Output)
	}
}

func resolve(ctx context.Context, specUrl, output string) {
	spec, err := swaggerui.FetchSpec(ctx, specUrl)
	if err != nil {
		cliutil.Fatal("failed to fetch the spec from its url", err)
	}
	if err := swaggerui.WriteSpec(output, spec); err != nil {
		cliutil.Fatal("failed to write the spec", err)
	}
	fmt.Println("Saved to: " + output)
}
