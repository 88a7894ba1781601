package main

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Вспомогательная функция для сброса флагов между тестами.
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

func TestParseFlags(t *testing.T) {
	originalArgs := os.Args
	originalUpstream := os.Getenv(envUpstreamURL)
	defer func() {
		os.Args = originalArgs
		os.Setenv(envUpstreamURL, originalUpstream)
	}()
	os.Unsetenv(envUpstreamURL)

	t.Run("Все параметры из флагов", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()

		os.Args = []string{
			"cmd",
			"-upstream-url=https://api.example.org/v0",
			"-timeout=30s",
			"-expect=abc",
		}
		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.org/v0", cfg.UpstreamURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, "abc", cfg.Expect)
	})

	t.Run("URL из переменной окружения", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd"}

		os.Setenv(envUpstreamURL, "https://env.example.org/v0")
		defer os.Unsetenv(envUpstreamURL)

		cfg, err := parseFlags()
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.org/v0", cfg.UpstreamURL)
		assert.Equal(t, defaultFetchTimeout, cfg.Timeout)
		assert.Empty(t, cfg.Expect)
	})

	t.Run("Ошибка: не указан URL каталога", func(t *testing.T) {
		resetFlags()
		defer func() { os.Args = originalArgs }()
		os.Args = []string{"cmd"}

		cfg, err := parseFlags()
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "URL каталога")
	})
}
