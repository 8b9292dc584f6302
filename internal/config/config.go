package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Server ServerConfig
	Model  ModelConfig
	Logger LoggerConfig
}

type ServerConfig struct {
	Host          string
	Port          int
	Mode          string
	TemplatesGlob string
}

type ModelConfig struct {
	ModelPath      string
	VectorizerPath string
}

type LoggerConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("SERVER_HOST", "0.0.0.0")
	v.SetDefault("SERVER_PORT", 3000)
	v.SetDefault("SERVER_MODE", "debug")
	v.SetDefault("TEMPLATES_GLOB", "web/templates/*")
	v.SetDefault("MODEL_PATH", "./data/model.json")
	v.SetDefault("VECTORIZER_PATH", "./data/vectorizer.json")
	v.SetDefault("LOGGER_LEVEL", "info")
	v.SetDefault("LOGGER_FORMAT", "json")

	// Env
	v.AutomaticEnv()

	cfg := &Config{
		Server: ServerConfig{
			Host:          v.GetString("SERVER_HOST"),
			Port:          v.GetInt("SERVER_PORT"),
			Mode:          v.GetString("SERVER_MODE"),
			TemplatesGlob: v.GetString("TEMPLATES_GLOB"),
		},
		Model: ModelConfig{
			ModelPath:      v.GetString("MODEL_PATH"),
			VectorizerPath: v.GetString("VECTORIZER_PATH"),
		},
		Logger: LoggerConfig{
			Level:  v.GetString("LOGGER_LEVEL"),
			Format: v.GetString("LOGGER_FORMAT"),
		},
	}

	return cfg, nil
}
