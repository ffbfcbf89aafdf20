package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds everything the relay reads from the process environment.
// It is loaded once at startup; there is no reload path.
type Config struct {
	Port     int    // HTTP/WebSocket listen port
	Token    string // shared secret; empty string means open mode
	LogLevel string
}

const defaultPort = 6666

// Load reads the process environment via viper.
// PORT and WORMHOLE_TOKEN keep the names the original deployment used.
func Load() *Config {
	v := viper.New()
	v.SetDefault("port", defaultPort)
	v.SetDefault("log_level", "info")
	_ = v.BindEnv("port", "PORT")
	_ = v.BindEnv("token", "WORMHOLE_TOKEN")
	_ = v.BindEnv("log_level", "LOG_LEVEL")

	return &Config{
		Port:     v.GetInt("port"),
		Token:    v.GetString("token"),
		LogLevel: v.GetString("log_level"),
	}
}

// TokenEnabled reports whether the shared-secret gate is active.
func (c *Config) TokenEnabled() bool { return c.Token != "" }

func (c *Config) Addr() string { return fmt.Sprintf(":%d", c.Port) }
