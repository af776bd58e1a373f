package engine

import (
	"fmt"
	"sort"

	"github.com/lox/holdem-engine/poker"
)

// Pot is one tier of the pot: the main pot or a side pot created by an
// all-in. Eligible lists the non-folded seats that can win it.
type Pot struct {
	Amount   int
	Eligible []int
	Cap      int // per-player contribution ceiling for this tier
}

// Winner is one seat's share of a paid-out pot.
type Winner struct {
	Seat   int
	Amount int
}

// PotResult describes how one pot was awarded at showdown.
type PotResult struct {
	Amount   int
	Eligible []int
	Winners  []Winner
	BestHand string // empty when the pot was won without evaluation
}

// PotManager accumulates collected wagers per seat and derives main and
// side pots from them. It never touches uncollected street wagers; those
// stay on the players until Collect moves them over.
type PotManager struct {
	contrib []int
}

// NewPotManager creates a pot manager for n seats.
func NewPotManager(n int) *PotManager {
	return &PotManager{contrib: make([]int, n)}
}

// Total returns all chips collected so far.
func (pm *PotManager) Total() int {
	total := 0
	for _, c := range pm.contrib {
		total += c
	}
	return total
}

// Contribution returns the chips collected from one seat.
func (pm *PotManager) Contribution(seat int) int {
	return pm.contrib[seat]
}

// Collect moves every player's street wager into the pot. If the deepest
// wager went partially uncalled, the excess is returned to that player's
// stack before collection: those chips were never matched and belong to no
// pot. Returns the refunded seat and amount (-1, 0 when nothing was
// uncalled).
func (pm *PotManager) Collect(players []*Player) (int, int) {
	top, second, topSeat := 0, 0, -1
	for _, p := range players {
		if p.Bet > top {
			top, second, topSeat = p.Bet, top, p.Seat
		} else if p.Bet > second {
			second = p.Bet
		}
	}

	refundSeat, refund := -1, 0
	if topSeat >= 0 && top > second {
		refund = top - second
		refundSeat = topSeat
		p := players[topSeat]
		p.Stack += refund
		p.Bet -= refund
		p.TotalBet -= refund
		if p.AllIn && p.Stack > 0 {
			p.AllIn = false
		}
	}

	for _, p := range players {
		pm.contrib[p.Seat] += p.Bet
		p.Bet = 0
	}
	return refundSeat, refund
}

// Build derives the current pot tiers from collected contributions. Tiers
// are created at each distinct all-in contribution level, ascending; the
// first tier is the main pot.
func (pm *PotManager) Build(players []*Player) []Pot {
	caps := make([]int, 0, len(players))
	maxContrib := 0
	for _, p := range players {
		c := pm.contrib[p.Seat]
		if c > maxContrib {
			maxContrib = c
		}
		if p.AllIn && !p.Folded && c > 0 {
			caps = append(caps, c)
		}
	}
	if maxContrib == 0 {
		return nil
	}

	sort.Ints(caps)
	caps = append(caps, maxContrib)

	var pots []Pot
	prev := 0
	for _, cap := range caps {
		if cap <= prev {
			continue // duplicate all-in level, or capped below the main pot
		}
		pot := Pot{Cap: cap}
		for _, p := range players {
			c := pm.contrib[p.Seat]
			if c > prev {
				slice := min(c, cap) - prev
				pot.Amount += slice
				if !p.Folded {
					pot.Eligible = append(pot.Eligible, p.Seat)
				}
			}
		}
		if pot.Amount > 0 {
			pots = append(pots, pot)
		}
		prev = cap
	}
	return pots
}

// Payout awards every pot to the best eligible hand, splitting ties evenly
// with any odd chips going to the first tied winner clockwise from the
// button. A pot with a single eligible seat is awarded without evaluation.
// Winnings are credited to player stacks and the pot is emptied.
func (pm *PotManager) Payout(players []*Player, board []poker.Card, button int) ([]PotResult, error) {
	pots := pm.Build(players)
	results := make([]PotResult, 0, len(pots))

	for _, pot := range pots {
		res := PotResult{Amount: pot.Amount, Eligible: pot.Eligible}

		if len(pot.Eligible) == 0 {
			return nil, fmt.Errorf("pot of %d has no eligible seats", pot.Amount)
		}

		if len(pot.Eligible) == 1 {
			seat := pot.Eligible[0]
			players[seat].Stack += pot.Amount
			res.Winners = []Winner{{Seat: seat, Amount: pot.Amount}}
			results = append(results, res)
			continue
		}

		if len(board) != 5 {
			return nil, fmt.Errorf("showdown with %d board cards", len(board))
		}

		var best poker.HandRank
		var winners []int
		for _, seat := range pot.Eligible {
			p := players[seat]
			if len(p.HoleCards) != 2 {
				return nil, fmt.Errorf("seat %d reached showdown without hole cards", seat)
			}
			rank, err := poker.EvaluateHoldem(p.HoleCards, board)
			if err != nil {
				return nil, err
			}
			switch {
			case len(winners) == 0 || poker.Compare(rank, best) > 0:
				best = rank
				winners = []int{seat}
			case poker.Compare(rank, best) == 0:
				winners = append(winners, seat)
			}
		}

		// Order tied winners clockwise from the seat after the
		// button; the first of them takes the indivisible remainder.
		n := len(players)
		sort.Slice(winners, func(i, j int) bool {
			return (winners[i]-button-1+2*n)%n < (winners[j]-button-1+2*n)%n
		})

		share := pot.Amount / len(winners)
		remainder := pot.Amount % len(winners)
		for i, seat := range winners {
			amount := share
			if i == 0 {
				amount += remainder
			}
			players[seat].Stack += amount
			res.Winners = append(res.Winners, Winner{Seat: seat, Amount: amount})
		}
		if p := players[winners[0]]; len(p.HoleCards) == 2 {
			res.BestHand = poker.Describe(append(append([]poker.Card(nil), p.HoleCards...), board...))
		}
		results = append(results, res)
	}

	for i := range pm.contrib {
		pm.contrib[i] = 0
	}
	return results, nil
}
