package config

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server       Server
	Database     Database
	Sandbox      Sandbox
	GeminiApiKey string
}

type Server struct {
	Port string
}
type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Sandbox holds the interpreter binaries and the per-run wall-clock budget for
// the code-execution engine.
type Sandbox struct {
	NodeBinary     string
	PythonBinary   string
	TimeoutSeconds int
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SANDBOX_NODE_BINARY", "node")
	viper.SetDefault("SANDBOX_PYTHON_BINARY", "python3")
	viper.SetDefault("SANDBOX_TIMEOUT_SECONDS", 5)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Sandbox.NodeBinary = viper.GetString("SANDBOX_NODE_BINARY")
	config.Sandbox.PythonBinary = viper.GetString("SANDBOX_PYTHON_BINARY")
	config.Sandbox.TimeoutSeconds = viper.GetInt("SANDBOX_TIMEOUT_SECONDS")

	config.GeminiApiKey = viper.GetString("GEMINI_API_KEY")

	log.Info().Str("port", config.Server.Port).Str("db_host", config.Database.Host).Msg("Config loaded")
	return &config, nil
}
