package config

import (
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. Draw parameters
// (ticket price, base pot contribution, prize tiers, ticket shape) are fixed
// by the engine and deliberately absent here.
type Config struct {
	Server  ServerConfig
	Verbose bool
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    string
	GinMode string
}

// Load loads configuration from a .env file, config files, and environment
// variables. Environment variables win.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// setDefaults sets default values for configuration
func setDefaults() {
	viper.SetDefault("Server.Port", "8080")
	viper.SetDefault("Server.GinMode", "release")
	viper.SetDefault("Verbose", true)
}
