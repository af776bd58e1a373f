package bot

import (
	"context"
	"math/rand/v2"

	"github.com/lox/holdem-engine/internal/engine"
)

// RandBot picks uniformly among its legal options each turn. Useful for
// fuzzing the engine: any long random sequence of legal actions must keep
// chips conserved and terminate.
type RandBot struct {
	rng *rand.Rand
}

// NewRandBot creates a RandBot driven by the given generator.
func NewRandBot(rng *rand.Rand) *RandBot {
	return &RandBot{rng: rng}
}

func (r *RandBot) NextAction(ctx context.Context, state engine.Snapshot, seat int) (engine.Action, error) {
	var options []engine.Action

	if state.CanCheck(seat) {
		options = append(options, engine.Action{Seat: seat, Street: state.Street, Kind: engine.Check})
	} else {
		options = append(options,
			engine.Action{Seat: seat, Street: state.Street, Kind: engine.Fold},
			engine.Action{Seat: seat, Street: state.Street, Kind: engine.Call})
	}

	if state.CanRaise(seat) {
		kind := engine.Raise
		if state.CurrentBet == 0 {
			kind = engine.Bet
		}
		minTo := state.MinRaiseTo()
		maxTo := state.MaxRaiseTo(seat)
		if minTo > maxTo {
			// Short stack: only the all-in is available.
			minTo = maxTo
		}
		to := minTo + r.rng.IntN(maxTo-minTo+1)
		options = append(options, engine.Action{Seat: seat, Street: state.Street, Kind: kind, To: to})
	}

	return options[r.rng.IntN(len(options))], nil
}
