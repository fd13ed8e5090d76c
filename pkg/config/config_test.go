package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndEnvOverride(t *testing.T) {
	globalConfig = Config{}
	dir := t.TempDir()
	yaml := `
server:
  port: 8181
  secret_key: file-secret
database:
  host: db.internal
  name: assessments
webhook:
  secret: from-file
scoring:
  base_score: 3
  thresholds:
    critical: 80
    high: 50
    medium: 20
alerts:
  enabled: true
  url: https://hooks.example.com/alerts
  min_level: critical
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("ELEVENLABS_WEBHOOK_SECRET", "from-env")

	require.NoError(t, Load(dir))
	cfg := GetConfig()

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "file-secret", cfg.Server.SecretKey)
	assert.Equal(t, "from-env", cfg.Webhook.Secret)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, 3, cfg.Scoring.BaseScore)
	assert.Equal(t, ThresholdsConfig{Critical: 80, High: 50, Medium: 20}, cfg.Scoring.Thresholds)
	assert.Equal(t, "critical", cfg.Alerts.MinLevel)
	assert.Equal(t, 5*time.Second, cfg.Alerts.Timeout)
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	globalConfig = Config{}
	t.Setenv("DATABASE_HOST", "env-db")

	err := Load(t.TempDir())
	require.Error(t, err)

	cfg := GetConfig()
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 9090, cfg.Server.MetricsPort)
	assert.Equal(t, "env-db", cfg.Database.Host)
	assert.Equal(t, 5, cfg.Scoring.BaseScore)
	assert.Equal(t, ThresholdsConfig{Critical: 90, High: 60, Medium: 25}, cfg.Scoring.Thresholds)
	assert.Equal(t, []string{"conversation.ended", "call.analysis_complete", "post_call_analysis"}, cfg.Webhook.EventTypes)
	assert.Equal(t, 100, cfg.Server.MaxLiveClients)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Greater(t, cfg.Server.PongWait, cfg.Server.PingPeriod)
}

func TestKafkaConfig_Settings(t *testing.T) {
	k := KafkaConfig{Host: "broker", Port: "9092", Topic: "assessments"}

	assert.Equal(t, map[string]interface{}{"host": "broker", "port": "9092", "topic": "assessments"}, k.Settings())
}
