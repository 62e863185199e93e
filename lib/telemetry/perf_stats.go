package telemetry

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"go.opentelemetry.io/otel"
)

var meter = otel.Meter("go.perf_stats")
var cpuGauge, _ = meter.Float64Gauge("cpu_usage")
var memoryGauge, _ = meter.Int64Gauge("allocated_mb")
var liveObjectsGauge, _ = meter.Int64Gauge("live_objects")
var goroutineGauge, _ = meter.Int64Gauge("goroutine_count")

func InstrumentPerfStats(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(time.Second * 30)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				recordPerfStats(ctx)
			case <-ctx.Done():
				return
			}
		}
	}()
}

// recordPerfStats samples one round of gauges. The cpu reading compares
// against the previous call instead of sleeping an interval of its own, so
// a tick never blocks past its slot.
func recordPerfStats(ctx context.Context) {
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	cpuUsage, err := cpu.Percent(0, false)
	if err == nil && len(cpuUsage) > 0 {
		cpuGauge.Record(ctx, cpuUsage[0])
	} else if err != nil {
		slog.Warn("failed to read cpu usage", "err", err)
	}

	memoryGauge.Record(ctx, int64(memStats.Alloc/1_000_000))
	liveObjectsGauge.Record(ctx, int64(memStats.Mallocs)-int64(memStats.Frees))
	goroutineGauge.Record(ctx, int64(runtime.NumGoroutine()))
}
