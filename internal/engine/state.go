package engine

import (
	"fmt"

	"github.com/lox/holdem-engine/poker"
)

// GameConfig holds the immutable parameters of one hand.
type GameConfig struct {
	MaxPlayers    int
	SmallBlind    int
	BigBlind      int
	Ante          int
	StartingStack int

	// MaxActionRetries bounds how many times a rejected action is
	// re-requested from a decision source before the hand aborts.
	MaxActionRetries int
}

// DefaultConfig returns a 6-max 5/10 game with 1000 chip stacks.
func DefaultConfig() GameConfig {
	return GameConfig{
		MaxPlayers:       6,
		SmallBlind:       5,
		BigBlind:         10,
		StartingStack:    1000,
		MaxActionRetries: 3,
	}
}

func (c GameConfig) validate() error {
	if c.MaxPlayers < 2 || c.MaxPlayers > 9 {
		return fmt.Errorf("engine: max players %d out of range [2,9]", c.MaxPlayers)
	}
	if c.SmallBlind <= 0 || c.BigBlind <= 0 || c.SmallBlind > c.BigBlind {
		return fmt.Errorf("engine: invalid blinds %d/%d", c.SmallBlind, c.BigBlind)
	}
	if c.Ante < 0 {
		return fmt.Errorf("engine: negative ante %d", c.Ante)
	}
	return nil
}

// Player is one seat's state within a hand. All mutation goes through the
// betting engine; nothing outside this package touches these fields.
type Player struct {
	Seat      int
	Name      string
	Role      Role
	Stack     int
	Bet       int // wager this street, not yet collected
	TotalBet  int // whole-hand contribution
	HoleCards []poker.Card
	Folded    bool
	AllIn     bool
	Acted     bool // acted this round at the current bet level
}

// CanAct reports whether the player may still act voluntarily.
func (p *Player) CanAct() bool {
	return !p.Folded && !p.AllIn
}

// GameState is the mutable record of one hand in progress.
type GameState struct {
	Config  GameConfig
	Players []*Player
	Board   []poker.Card
	Street  Street
	Button  int

	// Acting is the seat currently on act, or -1 when no action is
	// pending (between streets, or once the hand locks up).
	Acting int

	// CurrentBet is the highest total wager any player has posted this
	// street. MinRaise is the minimum legal raise increment over it;
	// it grows only on full raises, never on under-raise all-ins.
	CurrentBet    int
	MinRaise      int
	LastAggressor int

	Pots *PotManager
	Log  []Action

	seq         int
	chipsInPlay int
}

// NewGameState seats the given players and computes roles. Stacks may be
// nil, in which case every seat gets the configured starting stack.
func NewGameState(cfg GameConfig, names []string, stacks []int, button int) (*GameState, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	n := len(names)
	if n < 2 || n > cfg.MaxPlayers {
		return nil, fmt.Errorf("engine: %d players outside [2,%d]", n, cfg.MaxPlayers)
	}
	if stacks != nil && len(stacks) != n {
		return nil, fmt.Errorf("engine: %d stacks for %d players", len(stacks), n)
	}

	roles, err := AssignRoles(n, button)
	if err != nil {
		return nil, err
	}

	players := make([]*Player, n)
	total := 0
	for i, name := range names {
		stack := cfg.StartingStack
		if stacks != nil {
			stack = stacks[i]
		}
		if stack <= 0 {
			return nil, fmt.Errorf("engine: seat %d has no chips", i)
		}
		players[i] = &Player{Seat: i, Name: name, Role: roles[i], Stack: stack}
		total += stack
	}

	return &GameState{
		Config:        cfg,
		Players:       players,
		Street:        Preflop,
		Button:        button,
		Acting:        -1,
		MinRaise:      cfg.BigBlind,
		LastAggressor: -1,
		Pots:          NewPotManager(n),
		chipsInPlay:   total,
	}, nil
}

// ChipsInPlay returns the fixed chip total the hand started with.
func (g *GameState) ChipsInPlay() int { return g.chipsInPlay }

// LiveCount returns the number of players who have not folded.
func (g *GameState) LiveCount() int {
	n := 0
	for _, p := range g.Players {
		if !p.Folded {
			n++
		}
	}
	return n
}

// activeCount returns the number of players who can still act.
func (g *GameState) activeCount() int {
	n := 0
	for _, p := range g.Players {
		if p.CanAct() {
			n++
		}
	}
	return n
}

// uncollected sums the street wagers not yet moved into a pot.
func (g *GameState) uncollected() int {
	n := 0
	for _, p := range g.Players {
		n += p.Bet
	}
	return n
}

// PotTotal returns collected pots plus uncollected street wagers.
func (g *GameState) PotTotal() int {
	return g.Pots.Total() + g.uncollected()
}

// checkConservation verifies stacks + pots + uncollected wagers still equal
// the chips the hand started with. A violation is an engine defect.
func (g *GameState) checkConservation() error {
	total := g.Pots.Total() + g.uncollected()
	for _, p := range g.Players {
		total += p.Stack
	}
	if total != g.chipsInPlay {
		return fmt.Errorf("%w: have %d chips, started with %d", ErrChipConservation, total, g.chipsInPlay)
	}
	return nil
}

// nextToAct walks clockwise from the given seat and returns the first seat
// that still owes an action this round, or -1 if nobody does.
func (g *GameState) nextToAct(from int) int {
	n := len(g.Players)
	for i := 0; i < n; i++ {
		seat := (from + i) % n
		p := g.Players[seat]
		if p.CanAct() && (!p.Acted || p.Bet != g.CurrentBet) {
			return seat
		}
	}
	return -1
}

func (g *GameState) nextSeq() int {
	g.seq++
	return g.seq
}

// record appends an action to the hand's total-ordered log.
func (g *GameState) record(a Action) Action {
	a.Seq = g.nextSeq()
	g.Log = append(g.Log, a)
	return a
}
