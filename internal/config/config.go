package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"quiz-brief/internal/domain"
)

// DefaultGeminiModel is the model identifier used when none is configured.
const DefaultGeminiModel = "gemini-1.5-flash"

type Config struct {
	Gemini GeminiConfig
	Server ServerConfig
	Redis  RedisConfig
	Study  StudyConfig
	Logger LoggerConfig
}

type GeminiConfig struct {
	APIKey      string        `yaml:"api_key"`
	Model       string        `yaml:"model"`
	Timeout     time.Duration `yaml:"timeout"`
	Temperature float64       `yaml:"temperature"`
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type StudyConfig struct {
	TTL            time.Duration `yaml:"ttl"`
	MaxSourceChars int           `yaml:"max_source_chars"`
}

type LoggerConfig struct {
	Env   string `yaml:"env"`
	Level string `yaml:"level"`
}

// LoadConfig reads .env, an optional config.yaml and the process environment,
// in increasing order of precedence. It fails with a configuration error when
// the Gemini API key is missing.
func LoadConfig() (*Config, error) {
	// .env is optional; variables already set in the environment win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		v.AddConfigPath("../../config")
		v.AddConfigPath("../../")
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := v.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", absPath)
	}

	cfg := fromViper(v)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("gemini.model", DefaultGeminiModel)
	v.SetDefault("gemini.timeout", "30s")
	v.SetDefault("gemini.temperature", 0.2)
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "20s")
	v.SetDefault("server.write_timeout", "20s")
	v.SetDefault("redis.db", 0)
	v.SetDefault("study.ttl", "24h")
	v.SetDefault("study.max_source_chars", 20000)
	v.SetDefault("logger.env", "development")
	v.SetDefault("logger.level", "info")

	// Keys without a default are invisible to AutomaticEnv unless bound.
	_ = v.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	_ = v.BindEnv("redis.address", "REDIS_ADDRESS")
	_ = v.BindEnv("redis.password", "REDIS_PASSWORD")
	_ = v.BindEnv("logger.env", "LOG_ENV")
	_ = v.BindEnv("logger.level", "LOG_LEVEL")
}

func fromViper(v *viper.Viper) *Config {
	return &Config{
		Gemini: GeminiConfig{
			APIKey:      strings.TrimSpace(v.GetString("gemini.api_key")),
			Model:       v.GetString("gemini.model"),
			Timeout:     v.GetDuration("gemini.timeout"),
			Temperature: v.GetFloat64("gemini.temperature"),
		},
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
		},
		Redis: RedisConfig{
			Address:  v.GetString("redis.address"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Study: StudyConfig{
			TTL:            v.GetDuration("study.ttl"),
			MaxSourceChars: v.GetInt("study.max_source_chars"),
		},
		Logger: LoggerConfig{
			Env:   v.GetString("logger.env"),
			Level: v.GetString("logger.level"),
		},
	}
}

// Validate checks the settings the pipeline cannot run without.
func (c *Config) Validate() error {
	if err := c.Gemini.Validate(); err != nil {
		return err
	}
	if c.Study.MaxSourceChars <= 0 {
		return domain.NewConfigurationError("study.max_source_chars must be positive")
	}
	return nil
}

// Validate reports a configuration error when no credential is available.
func (g GeminiConfig) Validate() error {
	if g.APIKey == "" {
		return domain.NewConfigurationError("GEMINI_API_KEY is not set")
	}
	if g.Model == "" {
		return domain.NewConfigurationError("gemini.model cannot be empty")
	}
	if g.Timeout <= 0 {
		return domain.NewConfigurationError("gemini.timeout must be positive")
	}
	return nil
}
