package engine

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/lox/holdem-engine/poker"
)

// handSeq numbers hands that were not given an explicit identifier.
var handSeq atomic.Int64

// HandPhase is the state of the hand-level state machine. Transitions are
// linear except for early termination, which jumps straight to showdown.
type HandPhase int

const (
	PhaseStartHand HandPhase = iota
	PhasePostBlinds
	PhaseDealHole
	PhasePreflopBetting
	PhaseDealFlop
	PhaseFlopBetting
	PhaseDealTurn
	PhaseTurnBetting
	PhaseDealRiver
	PhaseRiverBetting
	PhaseShowdown
	PhaseEndHand
)

func (p HandPhase) String() string {
	switch p {
	case PhaseStartHand:
		return "start_hand"
	case PhasePostBlinds:
		return "post_blinds"
	case PhaseDealHole:
		return "deal_hole"
	case PhasePreflopBetting:
		return "preflop_betting"
	case PhaseDealFlop:
		return "deal_flop"
	case PhaseFlopBetting:
		return "flop_betting"
	case PhaseDealTurn:
		return "deal_turn"
	case PhaseTurnBetting:
		return "turn_betting"
	case PhaseDealRiver:
		return "deal_river"
	case PhaseRiverBetting:
		return "river_betting"
	case PhaseShowdown:
		return "showdown"
	case PhaseEndHand:
		return "end_hand"
	default:
		return "unknown"
	}
}

// CardSource supplies hole and board cards. The engine does not shuffle or
// own a deck itself: a random deck and a recorded hand are just different
// sources.
type CardSource interface {
	HoleCards(seat int) ([]poker.Card, error)
	BoardCards(street Street) ([]poker.Card, error)
}

// DeckCardSource deals from a shuffled deck.
type DeckCardSource struct {
	deck *poker.Deck
}

// NewDeckCardSource wraps a deck as a card source.
func NewDeckCardSource(deck *poker.Deck) *DeckCardSource {
	return &DeckCardSource{deck: deck}
}

func (d *DeckCardSource) HoleCards(seat int) ([]poker.Card, error) {
	cards := d.deck.Deal(2)
	if cards == nil {
		return nil, fmt.Errorf("deck exhausted dealing to seat %d", seat)
	}
	return cards, nil
}

func (d *DeckCardSource) BoardCards(street Street) ([]poker.Card, error) {
	n := 1
	if street == Flop {
		n = 3
	}
	cards := d.deck.Deal(n)
	if cards == nil {
		return nil, fmt.Errorf("deck exhausted dealing %s", street)
	}
	return cards, nil
}

// Result is the outcome of a completed hand.
type Result struct {
	HandID         string
	Button         int
	Board          []poker.Card
	Pots           []PotResult
	TotalPot       int
	StartingStacks []int
	FinalStacks    []int
	HoleCards      [][]poker.Card
	Log            []Action
}

// Won returns how many chips the seat was awarded across all pots.
func (r *Result) Won(seat int) int {
	won := 0
	for _, pot := range r.Pots {
		for _, w := range pot.Winners {
			if w.Seat == seat {
				won += w.Amount
			}
		}
	}
	return won
}

// Hand drives a single hand from blinds to payout. It owns its GameState
// exclusively: all mutation happens on the calling goroutine inside Run,
// and observers only ever see snapshots.
type Hand struct {
	id     string
	state  *GameState
	source DecisionSource
	cards  CardSource
	bus    *Bus
	logger *log.Logger
	phase  HandPhase

	startingStacks []int
}

// Option configures a Hand.
type Option func(*Hand)

// WithHandID sets a caller-provided hand identifier.
func WithHandID(id string) Option {
	return func(h *Hand) { h.id = id }
}

// WithSink subscribes an event sink before the hand starts.
func WithSink(s Sink) Option {
	return func(h *Hand) { h.bus.Subscribe(s) }
}

// NewHand seats the players and prepares a hand. Stacks may be nil to use
// the configured starting stack for every seat. The decision source and
// card source are injected so interactive play, bot play and replay all
// run through the identical state machine.
func NewHand(cfg GameConfig, names []string, stacks []int, button int, source DecisionSource, cards CardSource, logger *log.Logger, opts ...Option) (*Hand, error) {
	if source == nil || cards == nil {
		return nil, fmt.Errorf("engine: decision source and card source are required")
	}

	state, err := NewGameState(cfg, names, stacks, button)
	if err != nil {
		return nil, err
	}

	h := &Hand{
		id:     fmt.Sprintf("hand-%d", handSeq.Add(1)),
		state:  state,
		source: source,
		cards:  cards,
		bus:    NewBus(),
		logger: logger.WithPrefix("hand"),
		phase:  PhaseStartHand,
	}
	for _, p := range state.Players {
		h.startingStacks = append(h.startingStacks, p.Stack)
	}
	for _, opt := range opts {
		opt(h)
	}
	return h, nil
}

// State returns an unredacted snapshot of the hand, for inspection after
// completion or abort.
func (h *Hand) State() Snapshot {
	return h.state.snapshotFor(h.id, -1)
}

// Phase returns the current state-machine phase.
func (h *Hand) Phase() HandPhase {
	return h.phase
}

// Run drives the hand to completion. A cancelled context aborts between
// actions, leaving a consistent, inspectable state behind. Fatal errors
// (conservation violations, exhausted retry budgets, misbehaving sources)
// abort the hand; rejected actions are retried internally and never
// surface here.
func (h *Hand) Run(ctx context.Context) (*Result, error) {
	if h.phase != PhaseStartHand {
		return nil, fmt.Errorf("%w: hand already ran", ErrBadPhaseTransition)
	}
	g := h.state

	h.toPhase(PhasePostBlinds)
	if err := h.postBlinds(); err != nil {
		return nil, err
	}

	h.toPhase(PhaseDealHole)
	if err := h.dealHole(); err != nil {
		return nil, err
	}
	h.bus.Publish(HandStartEvent{now(), g.snapshotFor(h.id, -1)})

	streets := []struct {
		street    Street
		dealPhase HandPhase
		betPhase  HandPhase
	}{
		{Preflop, PhaseDealHole, PhasePreflopBetting},
		{Flop, PhaseDealFlop, PhaseFlopBetting},
		{Turn, PhaseDealTurn, PhaseTurnBetting},
		{River, PhaseDealRiver, PhaseRiverBetting},
	}

	for _, s := range streets {
		if s.street != Preflop {
			h.toPhase(s.dealPhase)
			if err := h.dealBoard(s.street); err != nil {
				return nil, err
			}
		}

		// Once the hand locks up (everyone all-in) the remaining
		// streets are dealt without requesting any actions. Wagers
		// already posted (blinds, antes) still get collected.
		if !g.HandLocked() {
			h.toPhase(s.betPhase)
			if err := h.bettingRound(ctx); err != nil {
				return nil, err
			}
		}
		g.Pots.Collect(g.Players)

		// Fold-around: the hand ends at once, no further cards.
		if g.LiveCount() <= 1 {
			break
		}
	}

	h.toPhase(PhaseShowdown)
	g.Street = Showdown
	g.Acting = -1
	pots, err := g.Pots.Payout(g.Players, g.Board, g.Button)
	if err != nil {
		return nil, err
	}
	if err := g.checkConservation(); err != nil {
		return nil, err
	}

	h.toPhase(PhaseEndHand)
	result := &Result{
		HandID:         h.id,
		Button:         g.Button,
		Board:          append([]poker.Card(nil), g.Board...),
		Pots:           pots,
		StartingStacks: h.startingStacks,
		Log:            append([]Action(nil), g.Log...),
	}
	for _, pot := range pots {
		result.TotalPot += pot.Amount
	}
	for _, p := range g.Players {
		result.FinalStacks = append(result.FinalStacks, p.Stack)
		result.HoleCards = append(result.HoleCards, append([]poker.Card(nil), p.HoleCards...))
	}

	h.bus.Publish(HandEndEvent{now(), result, g.snapshotFor(h.id, -1)})
	h.logger.Debug("Hand complete", "id", h.id, "pot", result.TotalPot, "board", poker.FormatCards(result.Board))
	return result, nil
}

// toPhase advances the state machine and announces the transition.
func (h *Hand) toPhase(next HandPhase) {
	prev := h.phase
	h.phase = next
	h.bus.Publish(PhaseChangeEvent{now(), prev, next, h.state.snapshotFor(h.id, -1)})
}

// postBlinds posts antes, small blind and big blind as synthetic actions.
// Blind posts do not count as having acted: the big blind keeps its option.
func (h *Hand) postBlinds() error {
	g := h.state
	n := len(g.Players)

	if g.Config.Ante > 0 {
		for _, p := range g.Players {
			ante := min(g.Config.Ante, p.Stack)
			p.Stack -= ante
			p.TotalBet += ante
			g.Pots.contrib[p.Seat] += ante
			if p.Stack == 0 {
				p.AllIn = true
			}
			h.publishAction(g.record(Action{Seat: p.Seat, Street: Preflop, Kind: PostBlind, Amount: ante, To: 0}))
		}
	}

	sb := SmallBlindSeat(n, g.Button)
	bb := BigBlindSeat(n, g.Button)
	for _, post := range []struct {
		seat   int
		amount int
	}{
		{sb, g.Config.SmallBlind},
		{bb, g.Config.BigBlind},
	} {
		p := g.Players[post.seat]
		amount := min(post.amount, p.Stack)
		g.commit(p, amount)
		h.publishAction(g.record(Action{Seat: p.Seat, Street: Preflop, Kind: PostBlind, Amount: amount, To: p.Bet}))
	}

	// The bet level is the full big blind even when the big blind seat
	// could only post short.
	g.CurrentBet = g.Config.BigBlind
	g.MinRaise = g.Config.BigBlind
	g.Acting = g.nextToAct(FirstToActPreflop(n, g.Button))
	return g.checkConservation()
}

// dealHole deals two cards to every seat.
func (h *Hand) dealHole() error {
	g := h.state
	for _, p := range g.Players {
		cards, err := h.cards.HoleCards(p.Seat)
		if err != nil {
			return fmt.Errorf("dealing hole cards to seat %d: %w", p.Seat, err)
		}
		p.HoleCards = cards
		h.publishAction(g.record(Action{Seat: p.Seat, Street: Preflop, Kind: DealHole}))
	}
	return nil
}

// dealBoard appends the street's community cards and resets the betting
// substate for the new street.
func (h *Hand) dealBoard(street Street) error {
	g := h.state
	want := 1
	if street == Flop {
		want = 3
	}

	cards, err := h.cards.BoardCards(street)
	if err != nil {
		return fmt.Errorf("dealing %s: %w", street, err)
	}
	if len(cards) != want {
		return fmt.Errorf("dealing %s: got %d cards, want %d", street, len(cards), want)
	}

	g.beginStreet(street)
	g.Board = append(g.Board, cards...)
	h.publishAction(g.record(Action{Seat: -1, Street: street, Kind: DealBoard}))
	h.bus.Publish(StreetDealtEvent{now(), street, cards, g.snapshotFor(h.id, -1)})
	return nil
}

// bettingRound requests, validates and applies actions until the street's
// betting completes. Rejected actions are re-requested up to the configured
// retry bound; exceeding it indicates a misbehaving decision source and is
// fatal.
func (h *Hand) bettingRound(ctx context.Context) error {
	g := h.state

	for !g.RoundComplete() {
		seat := g.Acting
		if seat < 0 {
			break
		}
		snap := g.snapshotFor(h.id, seat)

		retries := 0
		for {
			if err := ctx.Err(); err != nil {
				return err
			}

			act, err := h.source.NextAction(ctx, snap, seat)
			if err != nil {
				return fmt.Errorf("decision source for seat %d: %w", seat, err)
			}

			move, err := Validate(g, act)
			if err == nil {
				applied := g.apply(act, move)
				h.publishAction(applied)
				break
			}

			rej, ok := IsRejection(err)
			if !ok {
				return err
			}
			retries++
			h.logger.Warn("Rejected action", "seat", seat, "kind", act.Kind, "reject", rej.Kind, "reason", rej.Reason, "attempt", retries)
			if retries > g.Config.MaxActionRetries {
				return fmt.Errorf("%w: seat %d rejected %d times, last: %s", ErrRetryBudgetExceeded, seat, retries, rej.Reason)
			}
		}

		if err := g.checkConservation(); err != nil {
			return err
		}
	}
	return nil
}

func (h *Hand) publishAction(act Action) {
	h.bus.Publish(ActionEvent{now(), act, h.state.snapshotFor(h.id, -1)})
}
