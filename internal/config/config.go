// Package config loads table configuration from HCL files.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/holdem-engine/internal/engine"
)

// Config is the complete engine configuration.
type Config struct {
	LogLevel string       `hcl:"log_level,optional"`
	Table    TableConfig  `hcl:"table,block"`
	Seats    []SeatConfig `hcl:"seat,block"`
}

// TableConfig defines the table stakes and limits.
type TableConfig struct {
	MaxPlayers       int `hcl:"max_players,optional"`
	SmallBlind       int `hcl:"small_blind"`
	BigBlind         int `hcl:"big_blind"`
	Ante             int `hcl:"ante,optional"`
	StartingStack    int `hcl:"starting_stack,optional"`
	MaxActionRetries int `hcl:"max_action_retries,optional"`
}

// SeatConfig defines one seat: who sits there and what strategy plays it.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
	Stack    int    `hcl:"stack,optional"`
}

// Default returns the configuration used when no file is present: a 6-max
// 5/10 table with two call bots.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Table: TableConfig{
			MaxPlayers:       6,
			SmallBlind:       5,
			BigBlind:         10,
			StartingStack:    1000,
			MaxActionRetries: 3,
		},
		Seats: []SeatConfig{
			{Name: "alice", Strategy: "call"},
			{Name: "bob", Strategy: "call"},
		},
	}
}

// Load reads configuration from an HCL file, falling back to defaults when
// the file does not exist.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Table.MaxPlayers == 0 {
		c.Table.MaxPlayers = def.Table.MaxPlayers
	}
	if c.Table.StartingStack == 0 {
		c.Table.StartingStack = def.Table.StartingStack
	}
	if c.Table.MaxActionRetries == 0 {
		c.Table.MaxActionRetries = def.Table.MaxActionRetries
	}
	if len(c.Seats) == 0 {
		c.Seats = def.Seats
	}
	for i := range c.Seats {
		if c.Seats[i].Strategy == "" {
			c.Seats[i].Strategy = "call"
		}
		if c.Seats[i].Stack == 0 {
			c.Seats[i].Stack = c.Table.StartingStack
		}
	}
}

// validStrategies lists the built-in bot strategies.
var validStrategies = map[string]bool{
	"call":  true,
	"fold":  true,
	"rand":  true,
	"chart": true,
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Table.SmallBlind <= 0 {
		return fmt.Errorf("small blind must be positive")
	}
	if c.Table.BigBlind < c.Table.SmallBlind {
		return fmt.Errorf("big blind %d below small blind %d", c.Table.BigBlind, c.Table.SmallBlind)
	}
	if c.Table.MaxPlayers < 2 || c.Table.MaxPlayers > 9 {
		return fmt.Errorf("max players must be between 2 and 9")
	}
	if len(c.Seats) < 2 || len(c.Seats) > c.Table.MaxPlayers {
		return fmt.Errorf("need between 2 and %d seats, have %d", c.Table.MaxPlayers, len(c.Seats))
	}
	for _, seat := range c.Seats {
		if !validStrategies[seat.Strategy] {
			return fmt.Errorf("seat %s: unknown strategy %q", seat.Name, seat.Strategy)
		}
		if seat.Stack <= 0 {
			return fmt.Errorf("seat %s: stack must be positive", seat.Name)
		}
	}
	return nil
}

// GameConfig converts the table settings into engine configuration.
func (c *Config) GameConfig() engine.GameConfig {
	return engine.GameConfig{
		MaxPlayers:       c.Table.MaxPlayers,
		SmallBlind:       c.Table.SmallBlind,
		BigBlind:         c.Table.BigBlind,
		Ante:             c.Table.Ante,
		StartingStack:    c.Table.StartingStack,
		MaxActionRetries: c.Table.MaxActionRetries,
	}
}

// Names returns the seat names in order.
func (c *Config) Names() []string {
	names := make([]string, len(c.Seats))
	for i, s := range c.Seats {
		names[i] = s.Name
	}
	return names
}

// Stacks returns the per-seat starting stacks in order.
func (c *Config) Stacks() []int {
	stacks := make([]int, len(c.Seats))
	for i, s := range c.Seats {
		stacks[i] = s.Stack
	}
	return stacks
}
