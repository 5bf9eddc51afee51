package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// HTTPConfig holds the dashboard server settings.
type HTTPConfig struct {
	Address string        `yaml:"address" env:"HTTP_ADDRESS" env-default:":8080"`
	Timeout time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"5s"`
}

// TelegramConfig enables the optional daily-report notifier when a token is set.
type TelegramConfig struct {
	Token          string        `yaml:"token" env:"TELEGRAM_TOKEN"`
	ChatID         int64         `yaml:"chat_id" env:"TELEGRAM_CHAT_ID"`
	ReportInterval time.Duration `yaml:"report_interval" env:"REPORT_INTERVAL" env-default:"24h"`
}

// Config keeps runtime settings for the process.
type Config struct {
	LogLevel    string         `yaml:"log_level" env:"LOG_LEVEL" env-default:"INFO"`
	DatabaseURL string         `yaml:"database_url" env:"DATABASE_URL" env-default:"project_manager.db"`
	HTTP        HTTPConfig     `yaml:"http"`
	TopTasks    int            `yaml:"top_tasks" env:"TOP_TASKS" env-default:"5"`
	ReconcileAt string         `yaml:"reconcile_at" env:"RECONCILE_AT" env-default:"00:05"`
	Telegram    TelegramConfig `yaml:"telegram"`
}

// MustLoad reads the config file if present, falling back to env vars only.
func MustLoad(configPath string) Config {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			log.Fatalf("cannot read env: %s", err)
		}
		return cfg
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if errors.As(err, &pe) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				log.Fatalf("cannot read env: %s", err)
			}
			return cfg
		}
		log.Fatalf("cannot read config %q: %s", configPath, err)
	}

	return cfg
}
