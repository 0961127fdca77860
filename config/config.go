// config/config.go
package config

import (
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server        ServerConfiguration
	Database      DatabaseConfiguration
	Redis         RedisConfiguration
	Elasticsearch ElasticsearchConfiguration
	Session       SessionConfiguration
	Cache         CacheConfiguration
	RateLimit     RateLimitConfiguration
	Log           LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
	Mode string
}

// DatabaseConfiguration selects the gorm dialect and its DSN
type DatabaseConfiguration struct {
	Driver string
	DSN    string
}

// RedisConfiguration stores data for Redis connection
type RedisConfiguration struct {
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	PoolSize     int
	PoolTimeout  time.Duration
}

// ElasticsearchConfiguration stores data for Elasticsearch connection
type ElasticsearchConfiguration struct {
	Enabled bool
	URL     string
	Index   string
}

type SessionConfiguration struct {
	CookieName string
	TTL        time.Duration
}

// CacheEntryConfiguration bounds one in-process cache.
type CacheEntryConfiguration struct {
	MaxEntries int
	TTL        time.Duration
	MaxAge     time.Duration
	SWR        time.Duration
}

type CacheConfiguration struct {
	Categories CacheEntryConfiguration
	Products   CacheEntryConfiguration
	Settings   CacheEntryConfiguration
}

type RateLimitConfiguration struct {
	Requests int
	Duration time.Duration
}

type LogConfiguration struct {
	Dir string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	SetDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	return viper.Unmarshal(&config)
}

// SetDefaults registers the built-in configuration values.
func SetDefaults() {
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "release")
	viper.SetDefault("database.driver", "sqlite")
	viper.SetDefault("database.dsn", "data/stylino.db")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.dialTimeout", "5s")
	viper.SetDefault("redis.readTimeout", "3s")
	viper.SetDefault("redis.writeTimeout", "3s")
	viper.SetDefault("redis.poolSize", 10)
	viper.SetDefault("redis.poolTimeout", "4s")
	viper.SetDefault("elasticsearch.enabled", false)
	viper.SetDefault("elasticsearch.url", "http://localhost:9200")
	viper.SetDefault("elasticsearch.index", "audit-logs")
	viper.SetDefault("session.cookieName", "stylino_session")
	viper.SetDefault("session.ttl", "720h")
	viper.SetDefault("cache.categories.maxEntries", 20)
	viper.SetDefault("cache.categories.ttl", "60s")
	viper.SetDefault("cache.categories.maxAge", "60s")
	viper.SetDefault("cache.categories.swr", "300s")
	viper.SetDefault("cache.products.maxEntries", 200)
	viper.SetDefault("cache.products.ttl", "30s")
	viper.SetDefault("cache.products.maxAge", "30s")
	viper.SetDefault("cache.products.swr", "120s")
	viper.SetDefault("cache.settings.maxEntries", 50)
	viper.SetDefault("cache.settings.ttl", "120s")
	viper.SetDefault("cache.settings.maxAge", "120s")
	viper.SetDefault("cache.settings.swr", "600s")
	viper.SetDefault("rateLimit.requests", 100)
	viper.SetDefault("rateLimit.duration", "1m")
	viper.SetDefault("log.dir", "logging")
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetDuration retrieves a duration value from the configuration
func GetDuration(key string) time.Duration {
	return viper.GetDuration(key)
}
