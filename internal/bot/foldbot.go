package bot

import (
	"context"

	"github.com/lox/holdem-engine/internal/engine"
)

// FoldBot checks when it's free and folds to any bet.
type FoldBot struct{}

// NewFoldBot creates a new FoldBot instance.
func NewFoldBot() *FoldBot {
	return &FoldBot{}
}

func (f *FoldBot) NextAction(ctx context.Context, state engine.Snapshot, seat int) (engine.Action, error) {
	if state.CanCheck(seat) {
		return engine.Action{Seat: seat, Street: state.Street, Kind: engine.Check}, nil
	}
	return fold(state, seat), nil
}
