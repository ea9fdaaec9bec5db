// Package config читает настройки клиента дашборда из окружения и .env-файлов.
package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config: настройки клиента.
type Config struct {
	BaseURL     string        `env:"TIER_BASE_URL" envDefault:"http://localhost:8888"`
	Team        string        `env:"TIER_TEAM"`
	User        string        `env:"TIER_USER"`
	XSRF        string        `env:"TIER_XSRF"`
	Session     string        `env:"TIER_SESSION"`
	HTTPTimeout time.Duration `env:"TIER_HTTP_TIMEOUT" envDefault:"0s"`
	FlashWindow time.Duration `env:"TIER_FLASH_WINDOW" envDefault:"1400ms"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadEnv загружает существующие из перечисленных .env-файлов и возвращает их число.
// Уже заданные переменные окружения не перезаписываются.
func LoadEnv(files ...string) (int, error) {
	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return 0, nil
	}
	return len(existing), godotenv.Load(existing...)
}

// Load читает .env-файлы и окружение.
func Load(files ...string) (*Config, error) {
	if _, err := LoadEnv(files...); err != nil {
		return nil, fmt.Errorf("load env files: %w", err)
	}
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}

// LogrusLevel переводит LOG_LEVEL в уровень logrus; неизвестные значения дают info.
func (c *Config) LogrusLevel() logrus.Level {
	switch c.LogLevel {
	case "silent":
		return logrus.PanicLevel
	case "error":
		return logrus.ErrorLevel
	case "warn":
		return logrus.WarnLevel
	case "debug":
		return logrus.DebugLevel
	default:
		return logrus.InfoLevel
	}
}

// Logger создаёт JSON-логгер, пишущий в w.
func (c *Config) Logger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(c.LogrusLevel())
	return l
}
