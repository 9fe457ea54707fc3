package config

import (
	"net"
	"strconv"
	"time"
)

// RedisConfig configures the optional preset cache.
type RedisConfig struct {
	Enabled      bool          `yaml:"enabled"`
	Host         string        `yaml:"host"`
	Port         int           `yaml:"port"`
	Password     string        `yaml:"password"`
	DB           int           `yaml:"db"`
	PoolSize     int           `yaml:"pool_size"`
	MinIdleConns int           `yaml:"min_idle_conns"`
	DialTimeout  time.Duration `yaml:"dial_timeout"`
	ReadTimeout  time.Duration `yaml:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout"`
	// KeyPrefix namespaces every key, so several deployments can share a DB.
	KeyPrefix string        `yaml:"key_prefix"`
	PresetTTL time.Duration `yaml:"preset_ttl"`
}

// Addr is host:port as go-redis expects it.
func (c *RedisConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func loadRedisConfig() *RedisConfig {
	return &RedisConfig{
		Enabled:      getEnvAsBool("REDIS_ENABLED", true),
		Host:         getEnv("REDIS_HOST", "localhost"),
		Port:         getEnvAsInt("REDIS_PORT", 6379),
		Password:     getEnv("REDIS_PASSWORD", ""),
		DB:           getEnvAsInt("REDIS_DB", 0),
		PoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
		MinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 2),
		DialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 2*time.Second),
		ReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", time.Second),
		WriteTimeout: getEnvAsDuration("REDIS_WRITE_TIMEOUT", time.Second),
		KeyPrefix:    getEnv("REDIS_KEY_PREFIX", ""),
		PresetTTL:    getEnvAsDuration("REDIS_PRESET_TTL", time.Hour),
	}
}
