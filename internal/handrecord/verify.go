package handrecord

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/internal/engine"
	"github.com/lox/holdem-engine/poker"
)

// Discrepancy is one mismatch between the engine's outcome and the
// record's declared results. Discrepancies are the verifier's output, not
// errors: a hand that replays cleanly but settles differently than the
// record claims produces discrepancies and a nil error.
type Discrepancy struct {
	Field string
	Want  string
	Got   string
}

func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: want %s, got %s", d.Field, d.Want, d.Got)
}

// VerifyResult is the outcome of replaying one record.
type VerifyResult struct {
	HandID        string
	Discrepancies []Discrepancy
	Result        *engine.Result
}

// OK reports whether the replay matched the record's declared results.
func (v *VerifyResult) OK() bool {
	return len(v.Discrepancies) == 0
}

// Verify replays a record through the engine and compares the final pot,
// stacks and board against the record's declared results. Errors are
// structural (unplayable record) or fatal engine failures; result
// mismatches come back as discrepancies.
func Verify(ctx context.Context, rec *Record, logger *log.Logger) (*VerifyResult, error) {
	src, err := NewReplaySource(rec)
	if err != nil {
		return nil, err
	}

	cfg := engine.GameConfig{
		MaxPlayers: rec.Metadata.MaxPlayers,
		SmallBlind: rec.Metadata.SmallBlind,
		BigBlind:   rec.Metadata.BigBlind,
		Ante:       rec.Metadata.Ante,
		// A replayed action has exactly one chance to validate; a
		// rejection means the record is not a legal hand.
		MaxActionRetries: 0,
	}
	if cfg.MaxPlayers < len(rec.Seats) {
		cfg.MaxPlayers = len(rec.Seats)
	}
	cfg.StartingStack = rec.Seats[0].StartingStack

	names := make([]string, len(rec.Seats))
	stacks := make([]int, len(rec.Seats))
	for i, s := range rec.Seats {
		names[i] = s.PlayerID
		if names[i] == "" {
			names[i] = fmt.Sprintf("seat%d", s.SeatNo)
		}
		stacks[i] = s.StartingStack
	}

	button := rec.inferButton(src)

	hand, err := engine.NewHand(cfg, names, stacks, button, src, src, logger, engine.WithHandID(rec.Metadata.HandID))
	if err != nil {
		return nil, err
	}

	result, err := hand.Run(ctx)
	if err != nil {
		return nil, fmt.Errorf("replaying hand %s: %w", rec.Metadata.HandID, err)
	}
	if n := src.Remaining(); n > 0 {
		return nil, fmt.Errorf("%w: hand ended with %d recorded actions unplayed", ErrMalformed, n)
	}

	vr := &VerifyResult{HandID: rec.Metadata.HandID, Result: result}

	if rec.Pots != nil {
		want := 0
		for _, p := range rec.Pots {
			want += p
		}
		if want != result.TotalPot {
			vr.add("pot", fmt.Sprint(want), fmt.Sprint(result.TotalPot))
		}
	}

	if rec.FinalStacks != nil {
		for i, want := range rec.FinalStacks {
			if got := result.FinalStacks[i]; got != want {
				vr.add(fmt.Sprintf("final_stacks[%d]", i), fmt.Sprint(want), fmt.Sprint(got))
			}
		}
	}

	if board := rec.declaredBoard(); board != nil {
		want := poker.FormatCards(board)
		got := poker.FormatCards(result.Board)
		if want != got {
			vr.add("board", want, got)
		}
	}

	return vr, nil
}

func (v *VerifyResult) add(field, want, got string) {
	v.Discrepancies = append(v.Discrepancies, Discrepancy{Field: field, Want: want, Got: got})
}

// declaredBoard concatenates the record's per-street boards in order.
func (r *Record) declaredBoard() []poker.Card {
	var board []poker.Card
	for _, so := range streetOrder {
		street, ok := r.Streets[so.key]
		if !ok {
			continue
		}
		cards, err := street.board(so.key)
		if err != nil {
			return nil
		}
		board = append(board, cards...)
	}
	return board
}

// inferButton returns the record's dealer seat. Explicit metadata wins;
// otherwise the dealer is derived from which seat opens the preflop
// action (the seat three after the button, or the button itself heads-up).
func (r *Record) inferButton(src *ReplaySource) int {
	if r.Metadata.Button != nil {
		return *r.Metadata.Button
	}
	n := len(r.Seats)
	if len(src.actions) == 0 {
		return 0
	}
	first := src.actions[0].Seat
	if n == 2 {
		return first
	}
	return ((first-3)%n + n) % n
}
