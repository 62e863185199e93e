package main

import (
	"context"
	"log/slog"
	"os"

	"dmi-explorer/cmd/metobs-cli/commands"
	"dmi-explorer/lib/cliutil"
	"dmi-explorer/lib/telemetry"
)

func main() {
	ctx := cliutil.SignalContext()

	telemetry.InitSlog(false)
	err := telemetry.SetupFromEnv(ctx, "metobs-cli")
	if err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to setup telemetry", "err", err)
	}
	// Flush the batched exporters, otherwise a short run exits before the
	// first export interval and drops every span.
	defer telemetry.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
