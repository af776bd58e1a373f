package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

// scriptSource plays back a fixed action sequence and fails if the engine
// asks for more actions than the script holds.
type scriptSource struct {
	actions []Action
}

func (s *scriptSource) NextAction(ctx context.Context, state Snapshot, seat int) (Action, error) {
	if len(s.actions) == 0 {
		return Action{}, fmt.Errorf("script exhausted, seat %d asked to act on %s", seat, state.Street)
	}
	act := s.actions[0]
	s.actions = s.actions[1:]
	if act.Seat != seat {
		return Action{}, fmt.Errorf("script expects seat %d to act, engine asked seat %d", act.Seat, seat)
	}
	return act, nil
}

func headsUpConfig() GameConfig {
	cfg := DefaultConfig()
	cfg.MaxPlayers = 2
	return cfg
}

func stackedCards(t *testing.T, strs ...string) *poker.Deck {
	t.Helper()
	cards, err := poker.ParseCards(strs)
	if err != nil {
		t.Fatal(err)
	}
	return poker.NewStackedDeck(cards)
}

func TestHandCheckedDownHeadsUp(t *testing.T) {
	t.Parallel()

	// Seat 0 is the button/SB, seat 1 the BB. SB completes, BB checks
	// the option, every street checks through to showdown.
	deck := stackedCards(t,
		"Ac", "Ad", // seat 0
		"Kc", "Kh", // seat 1
		"Ah", "Kd", "7c", // flop
		"7h", // turn
		"2s", // river
	)
	script := &scriptSource{actions: []Action{
		{Seat: 0, Street: Preflop, Kind: Call},
		{Seat: 1, Street: Preflop, Kind: Check},
		{Seat: 1, Street: Flop, Kind: Check},
		{Seat: 0, Street: Flop, Kind: Check},
		{Seat: 1, Street: Turn, Kind: Check},
		{Seat: 0, Street: Turn, Kind: Check},
		{Seat: 1, Street: River, Kind: Check},
		{Seat: 0, Street: River, Kind: Check},
	}}

	hand, err := NewHand(headsUpConfig(), []string{"sb", "bb"}, nil, 0, script, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	result, err := hand.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalPot != 20 {
		t.Errorf("pot = %d, want 20", result.TotalPot)
	}
	if result.FinalStacks[0] != 1010 || result.FinalStacks[1] != 990 {
		t.Errorf("stacks = %v, want [1010 990]", result.FinalStacks)
	}
	if result.FinalStacks[0]+result.FinalStacks[1] != 2000 {
		t.Errorf("chips not conserved: %v", result.FinalStacks)
	}
	if len(result.Board) != 5 {
		t.Errorf("board = %v, want 5 cards", result.Board)
	}
	if len(result.Pots) != 1 || result.Pots[0].BestHand == "" {
		t.Errorf("showdown should describe the winning hand: %+v", result.Pots)
	}
	if result.Won(0) != 20 {
		t.Errorf("seat 0 won %d, want 20", result.Won(0))
	}
	if len(script.actions) != 0 {
		t.Errorf("%d scripted actions unplayed", len(script.actions))
	}
}

func TestHandFoldAroundEndsImmediately(t *testing.T) {
	t.Parallel()

	deck := stackedCards(t,
		"2c", "7d", "2h", "7s", "2d", "7h", // hole cards, never shown
		"Ah", "Kd", "Qc", "Jh", "Ts", // board, never dealt
	)
	// Button folds, SB folds; BB wins the blinds with no showdown. The
	// script has nothing further: any extra request fails the hand.
	script := &scriptSource{actions: []Action{
		{Seat: 0, Street: Preflop, Kind: Fold},
		{Seat: 1, Street: Preflop, Kind: Fold},
	}}

	hand, err := NewHand(DefaultConfig(), []string{"btn", "sb", "bb"}, nil, 0, script, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	result, err := hand.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Board) != 0 {
		t.Errorf("fold-around should deal no board, got %v", result.Board)
	}
	if result.TotalPot != 10 {
		// The BB's own 10 was uncalled and refunded; only the SB's 5
		// and the BB's matching 5 form the pot.
		t.Errorf("pot = %d, want 10", result.TotalPot)
	}
	if result.Pots[0].BestHand != "" {
		t.Error("walkover must not evaluate hands")
	}
	if got := result.FinalStacks; got[0] != 1000 || got[1] != 995 || got[2] != 1005 {
		t.Errorf("stacks = %v, want [1000 995 1005]", got)
	}
}

func TestHandAllInRunoutDealsBoardWithoutRequests(t *testing.T) {
	t.Parallel()

	deck := stackedCards(t,
		"Ac", "Ad",
		"Kc", "Kh",
		"2h", "7d", "9c",
		"Jh",
		"3s",
	)
	// Button shoves preflop, BB calls all-in. No postflop actions may
	// be requested; the board still runs out to five cards.
	script := &scriptSource{actions: []Action{
		{Seat: 0, Street: Preflop, Kind: Raise, To: 1000},
		{Seat: 1, Street: Preflop, Kind: Call},
	}}

	hand, err := NewHand(headsUpConfig(), []string{"sb", "bb"}, nil, 0, script, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	result, err := hand.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if len(result.Board) != 5 {
		t.Fatalf("board = %v, want a full runout", result.Board)
	}
	if result.TotalPot != 2000 {
		t.Errorf("pot = %d, want 2000", result.TotalPot)
	}
	if result.FinalStacks[0] != 2000 || result.FinalStacks[1] != 0 {
		t.Errorf("stacks = %v, want [2000 0]", result.FinalStacks)
	}
}

func TestHandAllInFromBlinds(t *testing.T) {
	t.Parallel()

	// Both players are all-in just posting blinds: no actions at all,
	// full runout, and the BB's unmatched 5 comes back.
	deck := stackedCards(t,
		"Ac", "Ad",
		"Kc", "Kh",
		"2h", "7d", "9c",
		"Jh",
		"3s",
	)
	script := &scriptSource{}

	hand, err := NewHand(headsUpConfig(), []string{"sb", "bb"}, []int{5, 10}, 0, script, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	result, err := hand.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.TotalPot != 10 {
		t.Errorf("pot = %d, want 10", result.TotalPot)
	}
	if result.FinalStacks[0] != 10 || result.FinalStacks[1] != 5 {
		t.Errorf("stacks = %v, want [10 5]", result.FinalStacks)
	}
	if len(result.Board) != 5 {
		t.Errorf("board = %v, want a full runout", result.Board)
	}
}

func TestHandRetryBudgetExceeded(t *testing.T) {
	t.Parallel()

	// A source that keeps checking into a bet burns through the retry
	// budget and aborts the hand.
	bad := &scriptSource{actions: []Action{
		{Seat: 0, Street: Preflop, Kind: Check},
		{Seat: 0, Street: Preflop, Kind: Check},
		{Seat: 0, Street: Preflop, Kind: Check},
		{Seat: 0, Street: Preflop, Kind: Check},
	}}
	cfg := headsUpConfig()
	cfg.MaxActionRetries = 2

	deck := stackedCards(t,
		"Ac", "Ad", "Kc", "Kh",
		"2h", "7d", "9c", "Jh", "3s",
	)
	hand, err := NewHand(cfg, []string{"sb", "bb"}, nil, 0, bad, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}

	_, err = hand.Run(context.Background())
	if !errors.Is(err, ErrRetryBudgetExceeded) {
		t.Fatalf("got %v, want retry budget exceeded", err)
	}
}

func TestHandContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	deck := stackedCards(t,
		"Ac", "Ad", "Kc", "Kh",
		"2h", "7d", "9c", "Jh", "3s",
	)
	hand, err := NewHand(headsUpConfig(), []string{"sb", "bb"}, nil, 0, &scriptSource{}, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}

	_, err = hand.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestHandEmitsEvents(t *testing.T) {
	t.Parallel()

	deck := stackedCards(t,
		"Ac", "Ad", "Kc", "Kh",
		"2h", "7d", "9c", "Jh", "3s",
	)
	script := &scriptSource{actions: []Action{
		{Seat: 0, Street: Preflop, Kind: Raise, To: 1000},
		{Seat: 1, Street: Preflop, Kind: Call},
	}}

	var starts, ends, actions, streets int
	sink := SinkFunc(func(e Event) {
		switch e.Kind() {
		case EventHandStart:
			starts++
		case EventHandEnd:
			ends++
		case EventAction:
			actions++
		case EventStreetDealt:
			streets++
		}
	})

	hand, err := NewHand(headsUpConfig(), []string{"sb", "bb"}, nil, 0, script, NewDeckCardSource(deck), testLogger(),
		WithSink(sink), WithHandID("evt-1"))
	if err != nil {
		t.Fatal(err)
	}
	result, err := hand.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	if result.HandID != "evt-1" {
		t.Errorf("hand id = %q", result.HandID)
	}
	if starts != 1 || ends != 1 {
		t.Errorf("start/end events = %d/%d, want 1/1", starts, ends)
	}
	if streets != 3 {
		t.Errorf("street events = %d, want 3 (flop, turn, river)", streets)
	}
	// Blinds, deals, two voluntary actions and three board deals.
	if actions < 8 {
		t.Errorf("action events = %d, want at least 8", actions)
	}
}

func TestHandCannotRunTwice(t *testing.T) {
	t.Parallel()

	deck := stackedCards(t,
		"2c", "7d", "2h", "7s",
		"Ah", "Kd", "Qc", "Jh", "Ts",
	)
	script := &scriptSource{actions: []Action{
		{Seat: 0, Street: Preflop, Kind: Fold},
	}}

	hand, err := NewHand(headsUpConfig(), []string{"sb", "bb"}, nil, 0, script, NewDeckCardSource(deck), testLogger())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := hand.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if _, err := hand.Run(context.Background()); !errors.Is(err, ErrBadPhaseTransition) {
		t.Fatalf("got %v, want bad phase transition", err)
	}
}
