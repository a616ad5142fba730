package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir switches to dir for the duration of the test and restores the
// previous working directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no .env here

	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "tillprint-api", cfg.App.Name)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "none", cfg.Printer.Type)
	assert.Equal(t, 48, cfg.Printer.Width)
	assert.Equal(t, "USD", cfg.Currency.Name)
	assert.Equal(t, "$", cfg.Currency.Symbol)
	assert.Equal(t, "station-01", cfg.Station.ID)
	assert.InDelta(t, 10.0, cfg.RateLimit.RequestsPerSecond, 1e-9)
	assert.Equal(t, 20, cfg.RateLimit.Burst)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PRINTER_TYPE", "network")
	t.Setenv("PRINTER_TARGET", "10.0.0.5:9100")
	t.Setenv("CURRENCY_NAME", "KES")

	cfg := Load()
	assert.Equal(t, "network", cfg.Printer.Type)
	assert.Equal(t, "10.0.0.5:9100", cfg.Printer.Target)
	assert.Equal(t, "KES", cfg.Currency.Name)
}
