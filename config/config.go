package config

import (
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/campuslib/library-service/internal/server"
	"github.com/campuslib/library-service/pkg/kafka"
	"github.com/campuslib/library-service/pkg/logger"
	"github.com/campuslib/library-service/pkg/postgres"
)

type Config struct {
	Server   server.Config `yaml:"server"`
	Kafka    kafka.Config  `yaml:"kafka"`
	Database postgres.DB   `yaml:"db"`
	Log      logger.Log    `yaml:"log"`
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
	})

	return cfg
}
