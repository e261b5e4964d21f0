package config

import "time"

// JWTConfig содержит настройки для JWT токенов.
type JWTConfig struct {
	SecretKey  string `yaml:"secret_key" env:"NOTEHUB_JWT_SECRET_KEY" env-required:"true"`
	TokenTTL   string `yaml:"token_ttl" env:"NOTEHUB_JWT_TOKEN_TTL" env-default:"15m"`
	BCryptCost int    `yaml:"bcrypt_cost" env:"NOTEHUB_BCRYPT_COST" env-default:"10"`
}

// GetTokenTTL возвращает продолжительность времени жизни токена.
func (c *JWTConfig) GetTokenTTL() time.Duration {
	duration, err := time.ParseDuration(c.TokenTTL)
	if err != nil {
		return 15 * time.Minute
	}
	return duration
}
