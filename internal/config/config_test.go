package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("defaults apply when the environment is empty", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("GEMINI_API_KEY", "")
		t.Setenv("GEMINI_MAX_RETRIES", "")

		cfg := Load()
		assert.Equal(t, "3000", cfg.Port)
		assert.Equal(t, 3, cfg.MaxRetries)
		assert.Equal(t, 60, cfg.RateLimitPerMinute)
		assert.Equal(t, DefaultSystemInstruction, cfg.SystemInstruction)
		assert.False(t, cfg.HasCredential())
	})

	t.Run("environment values win over defaults", func(t *testing.T) {
		t.Setenv("PORT", "8080")
		t.Setenv("GEMINI_API_KEY", "test-key")
		t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
		t.Setenv("GEMINI_MAX_RETRIES", "5")

		cfg := Load()
		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
		assert.Equal(t, 5, cfg.MaxRetries)
		assert.True(t, cfg.HasCredential())
	})

	t.Run("unparsable integers fall back to defaults", func(t *testing.T) {
		t.Setenv("GEMINI_MAX_RETRIES", "lots")

		cfg := Load()
		assert.Equal(t, 3, cfg.MaxRetries)
	})
}
