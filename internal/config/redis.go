package config

import (
	"fmt"
	"time"
)

// RedisConfig содержит настройки подключения к Redis.
type RedisConfig struct {
	Host           string        `yaml:"host" env:"NOTEHUB_REDIS_HOST" env-default:"localhost"`
	Port           int           `yaml:"port" env:"NOTEHUB_REDIS_PORT" env-default:"6379"`
	Password       string        `yaml:"password" env:"NOTEHUB_REDIS_PASSWORD" env-default:""`
	DB             int           `yaml:"db" env:"NOTEHUB_REDIS_DB" env-default:"0"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"NOTEHUB_REDIS_CONNECT_TIMEOUT" env-default:"5s"`
	ReadTimeout    time.Duration `yaml:"read_timeout" env:"NOTEHUB_REDIS_READ_TIMEOUT" env-default:"3s"`
	WriteTimeout   time.Duration `yaml:"write_timeout" env:"NOTEHUB_REDIS_WRITE_TIMEOUT" env-default:"3s"`
	DefaultTTL     time.Duration `yaml:"default_ttl" env:"NOTEHUB_REDIS_DEFAULT_TTL" env-default:"5m"`
}

// GetAddress возвращает адрес Redis сервера.
func (c *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
