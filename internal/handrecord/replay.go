package handrecord

import (
	"context"
	"fmt"
	"strconv"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/poker"
)

// voluntaryKinds maps recorded action names to engine kinds. Synthetic
// entries (blind posts, deals) some converters emit are skipped on load.
var voluntaryKinds = map[string]engine.ActionKind{
	"fold":  engine.Fold,
	"check": engine.Check,
	"call":  engine.Call,
	"bet":   engine.Bet,
	"raise": engine.Raise,
}

var syntheticKinds = map[string]bool{
	"post_blind": true,
	"ante":       true,
	"deal_hole":  true,
	"deal_board": true,
}

// ReplaySource replays a canonical record through the engine. It serves
// both roles the engine needs: the decision source returning the recorded
// actions in order, and the card source returning the recorded hole cards
// and boards. No shuffling happens on the replay path.
type ReplaySource struct {
	actions []engine.Action
	next    int
	hole    map[int][]poker.Card
	boards  map[engine.Street][]poker.Card
}

// NewReplaySource builds a replay source from a validated record. Actors
// are resolved to engine seats by seat number first, then by player id.
func NewReplaySource(rec *Record) (*ReplaySource, error) {
	seatFor := make(map[string]int, 2*len(rec.Seats))
	for i, s := range rec.Seats {
		seatFor[strconv.Itoa(s.SeatNo)] = i
		if s.PlayerID != "" {
			if _, clash := seatFor[s.PlayerID]; !clash {
				seatFor[s.PlayerID] = i
			}
		}
	}

	src := &ReplaySource{
		hole:   make(map[int][]poker.Card),
		boards: make(map[engine.Street][]poker.Card),
	}

	for i, s := range rec.Seats {
		if s.HoleCards == nil {
			continue
		}
		cards, err := poker.ParseCards(s.HoleCards)
		if err != nil {
			return nil, fmt.Errorf("%w: seat %d hole cards: %v", ErrMalformed, s.SeatNo, err)
		}
		src.hole[i] = cards
	}

	for _, so := range streetOrder {
		street, ok := rec.Streets[so.key]
		if !ok {
			continue
		}
		board, err := street.board(so.key)
		if err != nil {
			return nil, err
		}
		if board != nil {
			src.boards[so.street] = board
		}

		for _, ar := range street.Actions {
			if syntheticKinds[ar.Action] {
				continue
			}
			kind, ok := voluntaryKinds[ar.Action]
			if !ok {
				return nil, fmt.Errorf("%w: unknown action %q", ErrMalformed, ar.Action)
			}
			seat, ok := seatFor[ar.ActorID]
			if !ok {
				return nil, fmt.Errorf("%w: %q", ErrUnmappedActor, ar.ActorID)
			}

			act := engine.Action{Seat: seat, Street: so.street, Kind: kind}
			if kind == engine.Bet || kind == engine.Raise {
				act.To = ar.ToAmount
				if act.To == 0 {
					act.To = ar.Amount
				}
			}
			src.actions = append(src.actions, act)
		}
	}

	return src, nil
}

// NextAction returns the next recorded action. Asking for more actions
// than the record holds, or for a different seat than the record expects,
// means the replayed hand has diverged from the record.
func (r *ReplaySource) NextAction(ctx context.Context, state engine.Snapshot, seat int) (engine.Action, error) {
	if r.next >= len(r.actions) {
		return engine.Action{}, fmt.Errorf("%w: record exhausted, seat %d still to act on %s", ErrMalformed, seat, state.Street)
	}
	act := r.actions[r.next]
	if act.Seat != seat {
		return engine.Action{}, fmt.Errorf("%w: record has seat %d acting, engine expects seat %d", ErrMalformed, act.Seat, seat)
	}
	r.next++
	return act, nil
}

// Remaining returns how many recorded actions were not consumed.
func (r *ReplaySource) Remaining() int {
	return len(r.actions) - r.next
}

// HoleCards returns the recorded hole cards for a seat, or nil for seats
// whose cards were never shown.
func (r *ReplaySource) HoleCards(seat int) ([]poker.Card, error) {
	return r.hole[seat], nil
}

// BoardCards returns the street's recorded community cards.
func (r *ReplaySource) BoardCards(street engine.Street) ([]poker.Card, error) {
	board, ok := r.boards[street]
	if !ok {
		return nil, fmt.Errorf("%w: no recorded board for %s", ErrMalformed, street)
	}
	return board, nil
}
