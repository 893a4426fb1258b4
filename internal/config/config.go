package config

import (
	"flag"
	"os"
	"path/filepath"
	"regexp"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

const (
	defaultBaseURL = "localhost:8082"
	defaultDBFile  = "keeper.db"
)

var hostPortRe = regexp.MustCompile(`^[A-Za-z0-9\.\-]+:\d{1,5}$`)

type Config struct {
	// Хранилище: путь к файлу SQLite или DSN PostgreSQL
	DatabaseDSN string `env:"DATABASE_URI"`

	// HTTP-сервер
	BaseURL string `env:"BASE_URL"`

	LogDebug bool `env:"LOG_DEBUG"`
	Version  bool `env:"-"` // show version and exit (flag only)
}

func NewConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	_ = env.Parse(cfg)

	// значения из env становятся умолчаниями флагов; явно переданный флаг их переопределяет
	flag.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "путь к файлу SQLite или строка подключения PostgreSQL")
	flag.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "address of the HTTP server (host:port)")
	flag.BoolVar(&cfg.LogDebug, "debug", cfg.LogDebug, "development logger with debug level")
	flag.BoolVar(&cfg.Version, "version", cfg.Version, "Show version and exit")

	flag.Parse()

	// Defaults
	// BaseURL: только "address:port" (без схемы и пути), иначе значение по умолчанию
	if !hostPortRe.MatchString(cfg.BaseURL) {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.DatabaseDSN == "" {
		home, _ := os.UserHomeDir()
		cfg.DatabaseDSN = filepath.Join(home, defaultDBFile)
	}

	return cfg
}
