package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Sofia assistant specifics
	SofiaAI   SofiaAIConfig
	Gateway   GatewayConfig
	Session   SessionConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SofiaAIConfig holds the remote AI provider endpoint. An empty APIKey means
// the provider is unconfigured and the gateway serves mock responses.
type SofiaAIConfig struct {
	BaseURL string
	APIKey  string
}

type GatewayConfig struct {
	RetryAttempts      int
	RetryDelay         time.Duration
	MaxHistoryMessages int
}

type SessionConfig struct {
	Capacity    int
	TTL         time.Duration
	MaxMessages int
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Sofia AI provider
	cfg.SofiaAI.BaseURL = viper.GetString("sofia_ai.base_url")
	cfg.SofiaAI.APIKey = expandEnvVar(viper.GetString("sofia_ai.api_key"))
	if aiURL := viper.GetString("sofia_ai_base_url"); aiURL != "" {
		cfg.SofiaAI.BaseURL = aiURL
	}
	if aiKey := viper.GetString("sofia_ai_api_key"); aiKey != "" {
		cfg.SofiaAI.APIKey = aiKey
	}

	// Gateway retry policy
	cfg.Gateway.RetryAttempts = viper.GetInt("gateway.retry_attempts")
	cfg.Gateway.RetryDelay = viper.GetDuration("gateway.retry_delay")
	cfg.Gateway.MaxHistoryMessages = viper.GetInt("gateway.max_history_messages")

	// Session memory
	cfg.Session.Capacity = viper.GetInt("session.capacity")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxMessages = viper.GetInt("session.max_messages")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("sofia_ai.base_url", "")
	viper.SetDefault("sofia_ai.api_key", "")

	viper.SetDefault("gateway.retry_attempts", 2)
	viper.SetDefault("gateway.retry_delay", "1s")
	viper.SetDefault("gateway.max_history_messages", 5)

	viper.SetDefault("session.capacity", 1000)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_messages", 20)

	viper.SetDefault("rate_limit.per_min", 60)
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
