package main

import (
	"fmt"
	"time"
)

type Config struct {
	StoreDriver        string        `env:"STORE_DRIVER,default=badger"`
	BadgerFilepath     string        `env:"BADGER_FILEPATH,default=./data/badger"`
	SQLiteFilepath     string        `env:"SQLITE_FILEPATH,default=./data/chat.db"`
	LogLevel           string        `env:"LOG_LEVEL,default=INFO"`
	Host               string        `env:"HOST,default=localhost"`
	Port               int           `env:"PORT,default=8080"`
	StoreTimeout       time.Duration `env:"STORE_TIMEOUT,default=2s"`
	IDRetryAttempts    int           `env:"ID_RETRY_ATTEMPTS,default=5"`
	RestartInterval    time.Duration `env:"RESTART_INTERVAL,default=1s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s"`
	MetricInterval     time.Duration `env:"METRIC_INTERVAL,default=1m"`
	ValueLogGCInterval time.Duration `env:"VALUE_LOG_GC_INTERVAL,default=10m"`
	ValueLogGCRatio    float64       `env:"VALUE_LOG_GC_RATIO,default=0.5"`
	CORSAllowedOrigins string        `env:"CORS_ALLOWED_ORIGINS,default=http://localhost:3000"`
	MaxContentLength   int           `env:"MAX_CONTENT_LENGTH,default=4096"`
	LimitMessages      *int          `env:"LIMIT_MESSAGES"`
	CensoredWords      string        `env:"CENSORED_WORDS"`
	CharReplacement    string        `env:"MODERATION_CHARACTER_REPLACEMENT,default=*"`
}

// validate rejects values that would only fail later, inside a worker or a request.
func (c Config) validate() error {
	if c.LimitMessages != nil && *c.LimitMessages < 1 {
		return fmt.Errorf("LIMIT_MESSAGES must be positive, got %d", *c.LimitMessages)
	}
	if c.MetricInterval <= 0 {
		return fmt.Errorf("METRIC_INTERVAL must be positive, got %s", c.MetricInterval)
	}
	if c.StoreDriver == "badger" && c.ValueLogGCInterval <= 0 {
		return fmt.Errorf("VALUE_LOG_GC_INTERVAL must be positive, got %s", c.ValueLogGCInterval)
	}
	if c.IDRetryAttempts < 1 {
		return fmt.Errorf("ID_RETRY_ATTEMPTS must be positive, got %d", c.IDRetryAttempts)
	}
	return nil
}
