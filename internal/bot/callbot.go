package bot

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/engine"
)

// CallBot checks when it can and calls when it can't. It never folds and
// never raises, which makes it a useful baseline opponent and a handy way
// to drive hands to showdown in tests.
type CallBot struct {
	logger *log.Logger
}

// NewCallBot creates a new CallBot instance.
func NewCallBot(logger *log.Logger) *CallBot {
	return &CallBot{logger: logger.WithPrefix("callbot")}
}

func (c *CallBot) NextAction(ctx context.Context, state engine.Snapshot, seat int) (engine.Action, error) {
	act := checkOrCall(state, seat)
	c.logger.Debug("Decision", "seat", seat, "street", state.Street, "kind", act.Kind, "toCall", state.ToCall(seat))
	return act, nil
}
