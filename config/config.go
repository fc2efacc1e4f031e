package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries every runtime option. It is loaded once at startup and
// handed to each component's constructor; nothing reads the environment
// after that.
type Config struct {
	Addr    string `mapstructure:"addr"`
	DataDir string `mapstructure:"data_dir"`

	OpenAIAPIKey string `mapstructure:"openai_api_key"`
	OpenAIModel  string `mapstructure:"openai_model"`

	VoiceLanguage string `mapstructure:"tts_language"`

	FrameSize   int           `mapstructure:"frame_size"`
	ArtifactTTL time.Duration `mapstructure:"artifact_ttl"`

	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Load reads configuration from the environment, with a .env file as
// convenience for local runs.
func Load() (*Config, error) {
	// Missing .env is fine; the process environment still applies.
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("addr", ":8080")
	v.SetDefault("data_dir", "./data")
	v.SetDefault("openai_model", "gpt-4o-mini")
	v.SetDefault("tts_language", "en")
	v.SetDefault("frame_size", 720)
	v.SetDefault("artifact_ttl", "1h")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	// AutomaticEnv alone does not surface env vars through Unmarshal,
	// so bind each key explicitly.
	for _, key := range []string{
		"addr", "data_dir", "openai_api_key", "openai_model",
		"tts_language", "frame_size", "artifact_ttl", "log_level", "log_format",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.OpenAIAPIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if cfg.FrameSize < 64 {
		return fmt.Errorf("FRAME_SIZE must be at least 64, got %d", cfg.FrameSize)
	}
	if cfg.ArtifactTTL <= 0 {
		return fmt.Errorf("ARTIFACT_TTL must be positive")
	}
	return nil
}
