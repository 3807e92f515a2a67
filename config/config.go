package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/echosite/echosite/utils"
	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file is absent or leaves fields unset
const (
	DefaultListenIP        = "::"
	DefaultPort            = 3000
	DefaultAssetsDir       = "assets"
	DefaultMaxBodyBytes    = 1 << 20 // 1 MiB cap on POST bodies
	DefaultMaxConns        = 256
	DefaultShutdownTimeout = 10 // seconds
)

// ServerConfig represents the web server configuration
type ServerConfig struct {
	ListenIP        string `yaml:"listen_ip"`
	Port            int    `yaml:"port"`
	AssetsDir       string `yaml:"assets_dir"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`
	MaxConns        int    `yaml:"max_conns"`
	ShutdownTimeout int    `yaml:"shutdown_timeout"` // seconds
}

// LoadServerConfig loads server configuration from a YAML file.
// A missing file is not an error: the server runs on defaults.
func LoadServerConfig(path string) (*ServerConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := &ServerConfig{}
			cfg.applyDefaults()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg ServerConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// SaveServerConfig saves server configuration to a YAML file
func SaveServerConfig(cfg *ServerConfig, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills unset fields
func (c *ServerConfig) applyDefaults() {
	if c.ListenIP == "" {
		c.ListenIP = DefaultListenIP
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.AssetsDir == "" {
		c.AssetsDir = DefaultAssetsDir
	}
	if c.MaxBodyBytes == 0 {
		c.MaxBodyBytes = DefaultMaxBodyBytes
	}
	if c.MaxConns == 0 {
		c.MaxConns = DefaultMaxConns
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = DefaultShutdownTimeout
	}
}

// ApplyEnv overrides the port from the PORT environment variable when set
func (c *ServerConfig) ApplyEnv() error {
	val, ok := os.LookupEnv("PORT")
	if !ok || val == "" {
		return nil
	}

	port, err := strconv.Atoi(val)
	if err != nil {
		return fmt.Errorf("invalid PORT value %q: %w", val, err)
	}

	c.Port = port
	return nil
}

// Validate checks the configuration for values the server cannot run with
func (c *ServerConfig) Validate() error {
	if !utils.ValidatePort(c.Port) {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if !utils.IsWildcard(c.ListenIP) && !utils.ValidateIP(c.ListenIP) {
		return fmt.Errorf("invalid listen IP: %s", c.ListenIP)
	}
	if c.MaxBodyBytes < 0 {
		return fmt.Errorf("invalid max body bytes: %d", c.MaxBodyBytes)
	}
	return nil
}

// Addr returns the listen address in IP:port form
func (c *ServerConfig) Addr() string {
	return utils.FormatAddress(c.ListenIP, c.Port)
}
