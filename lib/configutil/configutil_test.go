package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl        string `json:"base_url"`
	ApiKey         string `json:"api_key"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

func TestReadConfigJson5(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json5")

	err := os.WriteFile(path, []byte(`{
	// comments and unquoted keys are allowed
	base_url: "https://dmigw.govcloud.dk/v2/metObs",
	timeout_seconds: 30,
}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://dmigw.govcloud.dk/v2/metObs", cfg.BaseUrl)
	require.Equal(t, 30, cfg.TimeoutSeconds)
	require.Equal(t, "", cfg.ApiKey)
}

func TestReadConfigMergesLocalOverrides(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.json5"), []byte(`{
	base_url: "https://dmigw.govcloud.dk/v2/metObs",
	api_key: "placeholder",
}`), 0600)
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
	api_key: "real-key",
}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "https://dmigw.govcloud.dk/v2/metObs", cfg.BaseUrl)
	require.Equal(t, "real-key", cfg.ApiKey)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()

	err := os.WriteFile(filepath.Join(dir, "config.local.json5"), []byte(`{
	api_key: "local-only",
}`), 0600)
	require.NoError(t, err)

	cfg, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.NoError(t, err)
	require.Equal(t, "local-only", cfg.ApiKey)
}

func TestReadConfigMissing(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadConfig[testConfig](filepath.Join(dir, "config.json5"))
	require.True(t, os.IsNotExist(err))
}
