package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// AgentConfig holds the connection settings for the agent service.
type AgentConfig struct {
	BaseURL         string `mapstructure:"base_url"`
	StreamPath      string `mapstructure:"stream_path"`
	InteractionPath string `mapstructure:"interaction_path"`
	TimeoutSeconds  int    `mapstructure:"timeout"`
}

// Timeout returns the agent request timeout as a duration.
func (a AgentConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// LoggingConfig holds logging-related configuration.
type LoggingConfig struct {
	LogFile string `mapstructure:"log_file"`
	Persist bool   `mapstructure:"persist"`
	Level   string `mapstructure:"level"`
}

// RenderConfig holds console renderer configuration.
type RenderConfig struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// SessionConfig holds session lifecycle configuration.
type SessionConfig struct {
	ReapIntervalSeconds int `mapstructure:"reap_interval"`
}

// ReapInterval returns how often finished streams are swept.
func (s SessionConfig) ReapInterval() time.Duration {
	return time.Duration(s.ReapIntervalSeconds) * time.Second
}

// Settings represents the application configuration.
type Settings struct {
	Agent   AgentConfig   `mapstructure:"agent"`
	Logging LoggingConfig `mapstructure:"logging"`
	Render  RenderConfig  `mapstructure:"render"`
	Session SessionConfig `mapstructure:"session"`
}

var settings *Settings

// Get returns the global settings instance.
func Get() *Settings {
	if settings == nil {
		panic("config not initialized")
	}
	return settings
}

// Load loads configuration from file and environment.
func Load(cfgFile string) (*Settings, error) {
	setDefaults()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome == "" {
			xdgConfigHome = filepath.Join(home, ".config")
		}

		viper.AddConfigPath("./.counsel") // Project directory first
		viper.AddConfigPath(filepath.Join(xdgConfigHome, "counsel"))
		viper.SetConfigType("yaml")
		viper.SetConfigName("settings")
	}

	viper.SetEnvPrefix("COUNSEL")
	viper.AutomaticEnv()

	// Missing config file is fine, defaults and env cover everything
	_ = viper.ReadInConfig()

	settings = &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return settings, nil
}

func setDefaults() {
	viper.SetDefault("agent.base_url", "http://localhost:8720")
	viper.SetDefault("agent.stream_path", "/api/turns/%s/events")
	viper.SetDefault("agent.interaction_path", "/api/interactions")
	viper.SetDefault("agent.timeout", 90)

	viper.SetDefault("logging.log_file", "./.counsel/system.log")
	viper.SetDefault("logging.persist", true)
	viper.SetDefault("logging.level", "info")

	viper.SetDefault("render.color", true)
	viper.SetDefault("render.width", 100)

	viper.SetDefault("session.reap_interval", 30)
}

// BaseSettingsDir resolves the directory holding the active settings file.
func BaseSettingsDir() string {
	if configPath := viper.GetString("config.path"); configPath != "" {
		return configPath
	}
	return filepath.Dir(viper.ConfigFileUsed())
}

// BuildSettingsPath joins target onto the settings directory.
func BuildSettingsPath(target string) string {
	return filepath.Join(BaseSettingsDir(), target)
}
