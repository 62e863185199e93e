package telemetry

import (
	"context"
	"os"
	"testing"
)

var setupTestEnvironments = map[string]bool{}

// sets up telemetry in a testing environment, ensuring that it isn't
// set up more than once. When no telemetry.json5 is present the
// exporters stay unconfigured and spans go nowhere, so tests run
// the same with or without a collector.
func SetupForTesting(t testing.TB, serviceName string) func() {
	if setupTestEnvironments[serviceName] {
		return func() {}
	}
	setupTestEnvironments[serviceName] = true

	InitSlog(true)
	err := SetupFromEnv(context.Background(), serviceName)
	if os.IsNotExist(err) {
		return func() {}
	}
	if err != nil {
		t.Fatal(err)
	}

	return func() {
		err := Shutdown(context.Background())
		if err != nil {
			t.Fatal(err)
		}
	}
}
