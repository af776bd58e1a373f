// Package bot provides built-in decision sources for running hands without
// human input. Every bot is stateless between hands and picks its action
// from the snapshot alone.
package bot

import (
	"github.com/lox/holdem-engine/internal/engine"
)

// checkOrCall returns a check when the seat faces no bet, a call otherwise.
func checkOrCall(state engine.Snapshot, seat int) engine.Action {
	if state.CanCheck(seat) {
		return engine.Action{Seat: seat, Street: state.Street, Kind: engine.Check}
	}
	return engine.Action{Seat: seat, Street: state.Street, Kind: engine.Call}
}

func fold(state engine.Snapshot, seat int) engine.Action {
	return engine.Action{Seat: seat, Street: state.Street, Kind: engine.Fold}
}
