package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"
)

const (
	// Таймаут по умолчанию на полный обход каталога.
	defaultFetchTimeout = 5 * time.Minute

	// Переменные окружения.
	envUpstreamURL = "UPSTREAM_URL"
)

// auditConfig хранит конфигурацию утилиты аудита.
type auditConfig struct {
	UpstreamURL string
	Timeout     time.Duration
	Expect      string // Ожидаемая контрольная сумма для сверки (опционально)
}

// parseFlags разбирает флаги и переменные окружения, возвращает auditConfig или ошибку.
func parseFlags() (*auditConfig, error) {
	cfg := &auditConfig{}

	flag.StringVar(&cfg.UpstreamURL, "upstream-url", "",
		fmt.Sprintf("Базовый URL API каталога (env: %s)", envUpstreamURL))
	flag.DurationVar(&cfg.Timeout, "timeout", defaultFetchTimeout,
		"Таймаут на полный обход каталога")
	flag.StringVar(&cfg.Expect, "expect", "",
		"Контрольная сумма из аттестации для сверки (опционально)")

	flag.Parse()

	if cfg.UpstreamURL == "" {
		if value, ok := os.LookupEnv(envUpstreamURL); ok {
			cfg.UpstreamURL = value
		}
	}

	if cfg.UpstreamURL == "" {
		return nil, errors.New("не указан базовый URL каталога (--upstream-url или " + envUpstreamURL + ")")
	}

	return cfg, nil
}
