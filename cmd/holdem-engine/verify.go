package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-engine/internal/handrecord"
)

type VerifyCmd struct {
	Files       []string `arg:"" type:"existingfile" help:"Canonical hand record JSON files"`
	Concurrency int      `short:"j" default:"4" help:"Number of records verified in parallel"`
}

func (c *VerifyCmd) Run(logger *log.Logger) error {
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(c.Concurrency)

	var mu sync.Mutex
	mismatched := 0

	for _, path := range c.Files {
		g.Go(func() error {
			rec, err := handrecord.LoadFile(path)
			if err != nil {
				return err
			}

			result, err := handrecord.Verify(ctx, rec, logger)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			mu.Lock()
			defer mu.Unlock()
			if result.OK() {
				logger.Info("Verified", "file", path, "hand", result.HandID)
				return nil
			}
			mismatched++
			for _, d := range result.Discrepancies {
				logger.Error("Mismatch", "file", path, "hand", result.HandID, "field", d.Field, "want", d.Want, "got", d.Got)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	if mismatched > 0 {
		return fmt.Errorf("%d of %d records did not match their declared results", mismatched, len(c.Files))
	}
	logger.Info("All records verified", "count", len(c.Files))
	return nil
}
