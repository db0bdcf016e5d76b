package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configEnv = []string{
	"CONFIG_FILE", "ENVIRONMENT", "SERVER_HOST", "PORT", "GRAPH_FILE", "LOG_LEVEL",
	"ENABLE_METRICS", "ENABLE_TRACING", "ENABLE_CORS", "CLOUDWATCH_NAMESPACE",
	"AWS_REGION", "ROUTE_CACHE_TTL",
}

// clearEnv blanks every variable LoadConfig reads; empty counts as unset
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnv {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:7979", cfg.ServerAddress())
	assert.Equal(t, "data/hotpoints.json", cfg.GraphFile)
	assert.Equal(t, 300, cfg.RouteCacheTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.True(t, cfg.EnableCORS)
	assert.False(t, cfg.EnableTracing)
	assert.Empty(t, cfg.CloudWatchNamespace)
}

func TestLoadConfig_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("GRAPH_FILE", "/srv/map.json")
	t.Setenv("ENABLE_CORS", "false")
	t.Setenv("ENABLE_TRACING", "yes")
	t.Setenv("ROUTE_CACHE_TTL", "0")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "127.0.0.1:8080", cfg.ServerAddress())
	assert.Equal(t, "/srv/map.json", cfg.GraphFile)
	assert.False(t, cfg.EnableCORS)
	assert.True(t, cfg.EnableTracing)
	assert.Equal(t, 0, cfg.RouteCacheTTL)
}

func TestLoadConfig_FileThenEnvironment(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "hotpoints.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: staging
port: 9000
graph_file: /etc/hotpoints/campus.json
read_timeout: 5s
cloudwatch_namespace: Hotpoints/Staging
`), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "9100")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, 9100, cfg.Port, "environment overrides the file")
	assert.Equal(t, "/etc/hotpoints/campus.json", cfg.GraphFile)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
	assert.Equal(t, 15*time.Second, cfg.WriteTimeout, "unset keys keep defaults")
	assert.Equal(t, "Hotpoints/Staging", cfg.CloudWatchNamespace)
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		errPart string
	}{
		{name: "non-numeric port", env: map[string]string{"PORT": "http"}, errPart: "invalid PORT"},
		{name: "port out of range", env: map[string]string{"PORT": "70000"}, errPart: "between 1 and 65535"},
		{name: "negative ttl", env: map[string]string{"ROUTE_CACHE_TTL": "-1"}, errPart: "cannot be negative"},
		{name: "bad ttl", env: map[string]string{"ROUTE_CACHE_TTL": "soon"}, errPart: "invalid ROUTE_CACHE_TTL"},
		{name: "missing config file", env: map[string]string{"CONFIG_FILE": "/nonexistent/hotpoints.yaml"}, errPart: "failed to read config file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			cfg, err := LoadConfig()

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errPart)
		})
	}
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1, 2\n"), 0o600))
	t.Setenv("CONFIG_FILE", path)

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestValidate_EmptyGraphFile(t *testing.T) {
	cfg := Default()
	cfg.GraphFile = ""

	assert.EqualError(t, cfg.Validate(), "GRAPH_FILE is required")
}
