package poker

import (
	"fmt"

	ph "github.com/paulhankin/poker"
)

// HandRank scores a 5-card poker hand. Higher values beat lower values.
type HandRank int16

// toPH converts a Card into the evaluator library's representation. The
// library counts aces as rank 1.
func toPH(c Card) ph.Card {
	var s ph.Suit
	switch c.Suit {
	case Clubs:
		s = ph.Club
	case Diamonds:
		s = ph.Diamond
	case Hearts:
		s = ph.Heart
	default:
		s = ph.Spade
	}

	r := ph.Rank(c.Rank)
	if c.Rank == Ace {
		r = ph.Rank(1)
	}

	card, _ := ph.MakeCard(s, r)
	return card
}

// Evaluate scores the best 5-card hand from 5 or 7 cards.
func Evaluate(cards []Card) (HandRank, error) {
	switch len(cards) {
	case 7:
		var a7 [7]ph.Card
		for i, c := range cards {
			a7[i] = toPH(c)
		}
		return HandRank(ph.Eval7(&a7)), nil
	case 5:
		var a5 [5]ph.Card
		for i, c := range cards {
			a5[i] = toPH(c)
		}
		return HandRank(ph.Eval5(&a5)), nil
	default:
		return 0, fmt.Errorf("poker: cannot evaluate %d cards", len(cards))
	}
}

// EvaluateHoldem scores two hole cards against a 5-card board.
func EvaluateHoldem(hole, board []Card) (HandRank, error) {
	if len(hole) != 2 || len(board) != 5 {
		return 0, fmt.Errorf("poker: need 2 hole cards and 5 board cards, got %d and %d", len(hole), len(board))
	}
	all := make([]Card, 0, 7)
	all = append(all, hole...)
	all = append(all, board...)
	return Evaluate(all)
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 on a tie.
func Compare(a, b HandRank) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Describe returns a human-readable description of the best hand formed by
// the cards, e.g. "FullHouse(9-4)".
func Describe(cards []Card) string {
	pcs := make([]ph.Card, len(cards))
	for i, c := range cards {
		pcs[i] = toPH(c)
	}
	desc, err := ph.Describe(pcs)
	if err != nil {
		return "unknown"
	}
	return desc
}
