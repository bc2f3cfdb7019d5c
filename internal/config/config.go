package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"marketplace/internal/auth"
)

type MySQL struct {
	User     string
	Password string
	Host     string
	Port     string
	Database string
}

// DSN builds the go-sql-driver DSN. clientFoundRows makes UPDATE report
// matched rows, which the ownership-filtered updates rely on.
func (m MySQL) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true",
		m.User, m.Password, m.Host, m.Port, m.Database)
}

type Config struct {
	Port             string
	MySQL            MySQL
	RedisHost        string
	RabbitMQURL      string
	RabbitMQExchange string
	JWTSecret        string
	TokenTTL         time.Duration
	AdminSecretCode  string
	CacheTTL         time.Duration
	LogLevel         string
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{
		Port: getenv("PORT", "8080"),
		MySQL: MySQL{
			User:     os.Getenv("MYSQL_USER"),
			Password: os.Getenv("MYSQL_PASSWORD"),
			Host:     getenv("MYSQL_HOST", "localhost"),
			Port:     getenv("MYSQL_PORT", "3306"),
			Database: os.Getenv("MYSQL_DATABASE"),
		},
		RedisHost:        os.Getenv("REDIS_HOST"),
		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getenv("RABBITMQ_EXCHANGE", "marketplace.exchange"),
		JWTSecret:        os.Getenv("JWT_SECRET"),
		AdminSecretCode:  os.Getenv("ADMIN_SECRET_CODE"),
		LogLevel:         getenv("LOG_LEVEL", "info"),
	}

	var err error
	if cfg.TokenTTL, err = ParseTTL(getenv("JWT_EXPIRES_IN", "90d")); err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(getenv("CACHE_TTL", "1m")); err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET must be set")
	}
	if c.MySQL.Database == "" {
		return fmt.Errorf("MYSQL_DATABASE must be set")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("JWT_EXPIRES_IN must be positive")
	}
	return nil
}

// ParseTTL accepts Go durations and a whole-day form such as "90d".
func ParseTTL(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return auth.DefaultTokenTTL, nil
	}
	if days, ok := strings.CutSuffix(v, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil {
			return 0, fmt.Errorf("invalid day count %q", v)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return time.ParseDuration(v)
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
