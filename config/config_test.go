package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_UsesDefaultsWhenEnvUnset(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 100, cfg.SCM.SampleCount)
	assert.Equal(t, 0.1, cfg.SCM.GlobalMinClamp)
}

func TestLoad_ReadsOverridesFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SCM_SAMPLE_COUNT", "500")
	t.Setenv("SCM_RNG_SEED", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 500, cfg.SCM.SampleCount)
	assert.Equal(t, int64(42), cfg.SCM.RNGSeed)
}

func TestLoad_FallsBackOnInvalidInteger(t *testing.T) {
	t.Setenv("SCM_SAMPLE_COUNT", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 100, cfg.SCM.SampleCount)
}

func TestValidate_RejectsEmptyPort(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Host: "localhost"}}
	err := cfg.Validate()
	assert.Error(t, err)
}

func TestValidate_RejectsEmptyDBHost(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Port: "8080"}}
	err := cfg.Validate()
	assert.Error(t, err)
}
