package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, "config.yaml", `
scheduling:
  start_time: "06:30"
  points_value: 5
  preference_bonus: -3
metrics:
  prometheus_enabled: true
  prometheus_port: "9091"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "06:30", cfg.Scheduling.StartTime)
	require.NotNil(t, cfg.Scheduling.PointsValue)
	require.Equal(t, 5.0, *cfg.Scheduling.PointsValue)
	require.NotNil(t, cfg.Scheduling.PreferenceBonus)
	require.Equal(t, -3.0, *cfg.Scheduling.PreferenceBonus)
	require.True(t, cfg.Metrics.PrometheusEnabled)
}

func TestLoadJSONDefaults(t *testing.T) {
	path := writeConfig(t, "config.json", `{"scheduling": {}}`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "07:00", cfg.Scheduling.StartTime)
	require.NotNil(t, cfg.Scheduling.PointsValue)
	require.Equal(t, 10.0, *cfg.Scheduling.PointsValue)
	require.Nil(t, cfg.Scheduling.PreferenceBonus)
}

func TestLoadKeepsZeroPointsValue(t *testing.T) {
	path := writeConfig(t, "config.yaml", "scheduling:\n  points_value: 0\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Scheduling.PointsValue)
	require.Equal(t, 0.0, *cfg.Scheduling.PointsValue)
}

func TestLoadEnvOverride(t *testing.T) {
	path := writeConfig(t, "config.yaml", "scheduling:\n  start_time: \"06:00\"\n")
	t.Setenv("SR_SCHEDULING__START_TIME", "08:15")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "08:15", cfg.Scheduling.StartTime)
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, "config.toml", "")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsInvalidStartTime(t *testing.T) {
	path := writeConfig(t, "config.yaml", "scheduling:\n  start_time: \"26:00\"\n")
	_, err := Load(path)
	require.Error(t, err)
}
