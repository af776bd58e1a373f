package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/bot"
	"github.com/lox/holdem-engine/internal/config"
	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/internal/phh"
	"github.com/lox/holdem-engine/internal/randutil"
	"github.com/lox/holdem-engine/poker"
)

type PlayCmd struct {
	Config    string `short:"c" default:"holdem.hcl" help:"HCL table configuration file"`
	Hands     int    `short:"n" default:"10" help:"Number of hands to play"`
	Seed      int64  `default:"0" help:"RNG seed (0 for time-based)"`
	ExportDir string `help:"Directory to write PHH hand histories to"`
}

func (c *PlayCmd) Run(logger *log.Logger) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := randutil.New(seed)
	logger.Info("Starting session", "seats", len(cfg.Seats), "hands", c.Hands, "seed", seed)

	sources := make([]engine.DecisionSource, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		switch seat.Strategy {
		case "call":
			sources[i] = bot.NewCallBot(logger)
		case "fold":
			sources[i] = bot.NewFoldBot()
		case "rand":
			sources[i] = bot.NewRandBot(rng)
		case "chart":
			sources[i] = bot.NewChartBot(logger)
		default:
			return fmt.Errorf("seat %s: unknown strategy %q", seat.Name, seat.Strategy)
		}
	}
	mux := bot.NewMux(sources...)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if c.ExportDir != "" {
		if err := os.MkdirAll(c.ExportDir, 0755); err != nil {
			return fmt.Errorf("creating export directory: %w", err)
		}
	}

	names := cfg.Names()
	stacks := cfg.Stacks()
	gameCfg := cfg.GameConfig()
	button := 0

	for i := 0; i < c.Hands; i++ {
		deck := poker.NewDeck(rng)
		handID := fmt.Sprintf("hand-%06d", i+1)

		hand, err := engine.NewHand(gameCfg, names, stacks, button, mux, engine.NewDeckCardSource(deck), logger,
			engine.WithHandID(handID))
		if err != nil {
			return err
		}

		result, err := hand.Run(ctx)
		if err != nil {
			return fmt.Errorf("hand %s: %w", handID, err)
		}

		logger.Info("Hand complete",
			"hand", handID,
			"button", result.Button,
			"pot", result.TotalPot,
			"board", poker.FormatCards(result.Board))
		for _, pot := range result.Pots {
			for _, w := range pot.Winners {
				logger.Info("Pot awarded", "hand", handID, "seat", w.Seat, "player", names[w.Seat], "amount", w.Amount, "hand_rank", pot.BestHand)
			}
		}

		if c.ExportDir != "" {
			if err := c.export(result, hand.State()); err != nil {
				return err
			}
		}

		stacks = result.FinalStacks
		if busted(stacks) {
			logger.Info("Seat busted, ending session", "hands_played", i+1)
			break
		}
		button = (button + 1) % len(names)
	}

	for i, name := range names {
		logger.Info("Final stack", "player", name, "stack", stacks[i], "net", stacks[i]-cfg.Seats[i].Stack)
	}
	return nil
}

func (c *PlayCmd) export(result *engine.Result, final engine.Snapshot) error {
	hist := phh.FromResult(result, final, time.Now())
	data, err := phh.EncodeToBytes(hist)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", result.HandID, err)
	}

	path := filepath.Join(c.ExportDir, result.HandID+".phh")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func busted(stacks []int) bool {
	for _, s := range stacks {
		if s <= 0 {
			return true
		}
	}
	return false
}
