package engine

import (
	"github.com/lox/holdem-engine/poker"
)

// SeatSnapshot is the read-only view of one seat.
type SeatSnapshot struct {
	Seat      int
	Name      string
	Role      Role
	Stack     int
	Bet       int
	TotalBet  int
	Folded    bool
	AllIn     bool
	Acted     bool
	HoleCards []poker.Card // nil unless visible to the snapshot's viewer
}

// Snapshot is an immutable copy of the observable game state. Decision
// sources receive a snapshot redacted to their own hole cards; event
// consumers receive unredacted ones. Mutating a snapshot has no effect on
// the hand.
type Snapshot struct {
	HandID        string
	Street        Street
	Board         []poker.Card
	Button        int
	Acting        int
	CurrentBet    int
	MinRaise      int
	LastAggressor int
	Pot           int
	SmallBlind    int
	BigBlind      int
	Seats         []SeatSnapshot
}

// snapshotFor builds a snapshot with hole cards visible only to the given
// seat. Pass -1 for an unredacted snapshot.
func (g *GameState) snapshotFor(handID string, viewer int) Snapshot {
	snap := Snapshot{
		HandID:        handID,
		Street:        g.Street,
		Board:         append([]poker.Card(nil), g.Board...),
		Button:        g.Button,
		Acting:        g.Acting,
		CurrentBet:    g.CurrentBet,
		MinRaise:      g.MinRaise,
		LastAggressor: g.LastAggressor,
		Pot:           g.PotTotal(),
		SmallBlind:    g.Config.SmallBlind,
		BigBlind:      g.Config.BigBlind,
		Seats:         make([]SeatSnapshot, len(g.Players)),
	}

	for i, p := range g.Players {
		s := SeatSnapshot{
			Seat:     p.Seat,
			Name:     p.Name,
			Role:     p.Role,
			Stack:    p.Stack,
			Bet:      p.Bet,
			TotalBet: p.TotalBet,
			Folded:   p.Folded,
			AllIn:    p.AllIn,
			Acted:    p.Acted,
		}
		if viewer == -1 || viewer == p.Seat {
			s.HoleCards = append([]poker.Card(nil), p.HoleCards...)
		}
		snap.Seats[i] = s
	}
	return snap
}

// ToCall returns how many chips the seat must put in to match the current
// bet level, capped at its stack.
func (s Snapshot) ToCall(seat int) int {
	p := s.Seats[seat]
	owed := s.CurrentBet - p.Bet
	if owed < 0 {
		owed = 0
	}
	if owed > p.Stack {
		owed = p.Stack
	}
	return owed
}

// CanCheck reports whether the seat faces no outstanding bet.
func (s Snapshot) CanCheck(seat int) bool {
	return s.Seats[seat].Bet == s.CurrentBet
}

// MinRaiseTo returns the smallest legal total-for-street a full raise (or
// opening bet) must reach.
func (s Snapshot) MinRaiseTo() int {
	if s.CurrentBet == 0 {
		return s.BigBlind
	}
	return s.CurrentBet + s.MinRaise
}

// MaxRaiseTo returns the seat's all-in total-for-street.
func (s Snapshot) MaxRaiseTo(seat int) int {
	p := s.Seats[seat]
	return p.Bet + p.Stack
}

// CanRaise reports whether the seat is still allowed to bet or raise this
// round. A seat that already acted may not raise again until a full raise
// reopens the action.
func (s Snapshot) CanRaise(seat int) bool {
	p := s.Seats[seat]
	if p.Folded || p.AllIn || p.Acted {
		return false
	}
	return p.Stack > s.ToCall(seat)
}
