package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

// AuthConfig holds the session/token lifecycle parameters. Access and
// refresh tokens are signed with separate secrets so a leak of one does not
// compromise the other.
type AuthConfig struct {
	AccessSecret           string `mapstructure:"access_secret"`
	RefreshSecret          string `mapstructure:"refresh_secret"`
	AccessTTLMinutes       int    `mapstructure:"access_ttl_minutes"`
	RefreshTTLDays         int    `mapstructure:"refresh_ttl_days"`
	InactivityLimitMinutes int    `mapstructure:"inactivity_limit_minutes"`
	BcryptCost             int    `mapstructure:"bcrypt_cost"`
}

type CORSConfig struct {
	ClientOrigin string `mapstructure:"client_origin"`
}

type AppSubConfig struct {
	PageSize int `mapstructure:"page_size"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	CORS     CORSConfig     `mapstructure:"cors"`
	App      AppSubConfig   `mapstructure:"app"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		// environment overrides, e.g. AKURA_SERVER_PORT=9000
		v.SetEnvPrefix("AKURA")
		v.AutomaticEnv()

		if err = v.ReadInConfig(); err != nil {
			err = fmt.Errorf("read config: %w", err)
			return
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		applyDefaults(&c)
		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

func applyDefaults(c *Config) {
	if c.Auth.AccessTTLMinutes <= 0 {
		c.Auth.AccessTTLMinutes = 15
	}
	if c.Auth.RefreshTTLDays <= 0 {
		c.Auth.RefreshTTLDays = 7
	}
	if c.Auth.InactivityLimitMinutes <= 0 {
		c.Auth.InactivityLimitMinutes = 30
	}
	if c.Auth.BcryptCost <= 0 {
		c.Auth.BcryptCost = 12
	}
	if c.App.PageSize <= 0 {
		c.App.PageSize = 10
	}
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
