package server

import (
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config represents the complete daemon configuration
type Config struct {
	Server   ServerSettings    `hcl:"server,block"`
	Dealer   *DealerSettings   `hcl:"dealer,block"`
	Game     *GameSettings     `hcl:"game,block"`
	Database *DatabaseSettings `hcl:"database,block"`
}

// ServerSettings contains server-level configuration
type ServerSettings struct {
	Address  string `hcl:"address,optional"`
	Port     int    `hcl:"port,optional"`
	LogLevel string `hcl:"log_level,optional"`
}

// DealerSettings configures the remote dealer delegation
type DealerSettings struct {
	URL            string `hcl:"url,optional"`
	TimeoutSeconds int    `hcl:"timeout_seconds,optional"`
}

// GameSettings configures the table rules
type GameSettings struct {
	StartingBalance int  `hcl:"starting_balance,optional"`
	DebugTopUp      bool `hcl:"debug_top_up,optional"`
}

// DatabaseSettings configures snapshot persistence. Omitting the block
// disables persistence entirely.
type DatabaseSettings struct {
	Path string `hcl:"path,optional"`
}

// DefaultConfig returns default daemon configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerSettings{
			Address:  "localhost",
			Port:     8000,
			LogLevel: "info",
		},
		Dealer: &DealerSettings{
			TimeoutSeconds: 10,
		},
		Game: &GameSettings{
			StartingBalance: 1000,
			DebugTopUp:      true,
		},
	}
}

// LoadConfig loads daemon configuration from an HCL file. A missing
// file yields the defaults.
func LoadConfig(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config Config
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	// Apply defaults for missing values
	if config.Server.Address == "" {
		config.Server.Address = "localhost"
	}
	if config.Server.Port == 0 {
		config.Server.Port = 8000
	}
	if config.Server.LogLevel == "" {
		config.Server.LogLevel = "info"
	}
	if config.Dealer == nil {
		config.Dealer = &DealerSettings{}
	}
	if config.Dealer.TimeoutSeconds == 0 {
		config.Dealer.TimeoutSeconds = 10
	}
	if config.Game == nil {
		config.Game = &GameSettings{StartingBalance: 1000, DebugTopUp: true}
	}
	if config.Game.StartingBalance == 0 {
		config.Game.StartingBalance = 1000
	}

	return &config, nil
}

// Validate validates the daemon configuration
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Server.Port)
	}

	switch c.Server.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Server.LogLevel)
	}

	if c.Dealer != nil && c.Dealer.TimeoutSeconds < 0 {
		return fmt.Errorf("dealer timeout must not be negative")
	}

	if c.Game != nil && c.Game.StartingBalance <= 0 {
		return fmt.Errorf("starting balance must be positive")
	}

	return nil
}

// ListenAddress returns the full listen address
func (c *Config) ListenAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Address, c.Server.Port)
}

// DealerTimeout returns the configured dealer call timeout
func (c *Config) DealerTimeout() time.Duration {
	if c.Dealer == nil {
		return 10 * time.Second
	}
	return time.Duration(c.Dealer.TimeoutSeconds) * time.Second
}
