package app

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the site server.
type Config struct {
	Port       int    `mapstructure:"port"`
	ContentDir string `mapstructure:"contentDir"`
	SiteTitle  string `mapstructure:"siteTitle"`
	BaseURL    string `mapstructure:"baseURL"`
	Watch      bool   `mapstructure:"watch"`
}

// LoadConfig reads config.yaml (or the given file) plus CENTER_SITE_*
// environment overrides into a Config.
func LoadConfig(cfgFile string) (Config, error) {
	v := viper.New()

	v.SetDefault("port", 8080)
	v.SetDefault("contentDir", "content")
	v.SetDefault("siteTitle", "Research Center")
	v.SetDefault("baseURL", "")
	v.SetDefault("watch", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("CENTER_SITE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return Config{}, fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}
	return cfg, nil
}

// Error messages
const (
	ErrInvalidYear    = "Invalid year"
	ErrInvalidMonth   = "Invalid month"
	ErrInternalServer = "Internal server error"
)

// Empty-state messages (normal path, not errors)
const (
	MsgNoEvents         = "No upcoming events scheduled."
	MsgNoUpcomingEvents = "No upcoming events scheduled at this time."
	MsgNoResults        = "No results found."
)

// ICS constants
const (
	ICSProductID = "-//ResearchCenter//Events//EN"
	ICSDomain    = "events.center-site"
)

// EventPreviewLimit caps the home page events preview.
const EventPreviewLimit = 4
