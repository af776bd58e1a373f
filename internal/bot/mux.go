package bot

import (
	"context"
	"fmt"

	"github.com/lox/holdem-engine/internal/engine"
)

// Mux routes each action request to the decision source seated at the
// acting seat, letting different strategies share one table.
type Mux struct {
	sources []engine.DecisionSource
}

// NewMux creates a seat-indexed decision source.
func NewMux(sources ...engine.DecisionSource) *Mux {
	return &Mux{sources: sources}
}

func (m *Mux) NextAction(ctx context.Context, state engine.Snapshot, seat int) (engine.Action, error) {
	if seat < 0 || seat >= len(m.sources) {
		return engine.Action{}, fmt.Errorf("no decision source for seat %d", seat)
	}
	return m.sources[seat].NextAction(ctx, state, seat)
}
