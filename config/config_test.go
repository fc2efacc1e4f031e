package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "./data", cfg.DataDir)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, "en", cfg.VoiceLanguage)
	assert.Equal(t, 720, cfg.FrameSize)
	assert.Equal(t, time.Hour, cfg.ArtifactTTL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("ADDR", ":9090")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("ARTIFACT_TTL", "15m")
	t.Setenv("FRAME_SIZE", "1080")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, 15*time.Minute, cfg.ArtifactTTL)
	assert.Equal(t, 1080, cfg.FrameSize)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY")
}
