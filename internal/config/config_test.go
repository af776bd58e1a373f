package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "holdem.hcl")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Table.SmallBlind != 5 || cfg.Table.BigBlind != 10 {
		t.Errorf("blinds = %d/%d", cfg.Table.SmallBlind, cfg.Table.BigBlind)
	}
	if len(cfg.Seats) != 2 {
		t.Errorf("seats = %+v", cfg.Seats)
	}
}

func TestLoadFullConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log_level = "debug"

table {
  max_players   = 9
  small_blind   = 25
  big_blind     = 50
  ante          = 5
  starting_stack = 5000
}

seat "hero" {
  strategy = "chart"
}

seat "villain" {
  strategy = "rand"
  stack    = 2500
}

seat "fish" {}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	gc := cfg.GameConfig()
	if gc.SmallBlind != 25 || gc.BigBlind != 50 || gc.Ante != 5 || gc.MaxPlayers != 9 {
		t.Errorf("game config = %+v", gc)
	}
	if gc.MaxActionRetries != 3 {
		t.Errorf("retries = %d, want default 3", gc.MaxActionRetries)
	}

	wantNames := []string{"hero", "villain", "fish"}
	for i, name := range cfg.Names() {
		if name != wantNames[i] {
			t.Errorf("names = %v", cfg.Names())
		}
	}
	// Explicit stack wins, unset stacks take the table default, and an
	// empty seat block plays the call strategy.
	wantStacks := []int{5000, 2500, 5000}
	for i, stack := range cfg.Stacks() {
		if stack != wantStacks[i] {
			t.Errorf("stacks = %v", cfg.Stacks())
		}
	}
	if cfg.Seats[2].Strategy != "call" {
		t.Errorf("default strategy = %q", cfg.Seats[2].Strategy)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		hcl  string
	}{
		{"syntax error", `table {`},
		{"zero small blind", `
table {
  small_blind = 0
  big_blind   = 10
}`},
		{"big blind below small blind", `
table {
  small_blind = 50
  big_blind   = 10
}`},
		{"unknown strategy", `
table {
  small_blind = 5
  big_blind   = 10
}
seat "a" { strategy = "gto" }
seat "b" {}`},
		{"too many seats", `
table {
  small_blind = 5
  big_blind   = 10
  max_players = 2
}
seat "a" {}
seat "b" {}
seat "c" {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Load(writeConfig(t, tt.hcl)); err == nil {
				t.Error("expected error")
			}
		})
	}
}
