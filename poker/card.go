package poker

import (
	"fmt"
	"strings"
)

// Suit represents a card suit.
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the lowercase suit letter used in hand records.
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank values run 2..14 with ace high.
const (
	Two = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankChars = "23456789TJQKA"

// Card is a single playing card.
type Card struct {
	Rank int
	Suit Suit
}

// NewCard creates a card. Rank must be 2..14.
func NewCard(rank int, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// String formats the card in the compact two-character form, e.g. "Ah" or "Td".
func (c Card) String() string {
	if c.Rank < Two || c.Rank > Ace {
		return "??"
	}
	return string(rankChars[c.Rank-2]) + c.Suit.String()
}

// IsRed returns true for hearts and diamonds.
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// ParseCard parses the two-character card form, e.g. "Ah", "td", "9S".
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("poker: invalid card %q", s)
	}

	r := s[0]
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	rankIdx := strings.IndexByte(rankChars, r)
	if rankIdx < 0 {
		return Card{}, fmt.Errorf("poker: invalid rank in card %q", s)
	}

	var suit Suit
	switch s[1] | 0x20 {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("poker: invalid suit in card %q", s)
	}

	return Card{Rank: rankIdx + 2, Suit: suit}, nil
}

// ParseCards parses a list of two-character card strings.
func ParseCards(strs []string) ([]Card, error) {
	cards := make([]Card, 0, len(strs))
	for _, s := range strs {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// FormatCards renders cards in the compact space-separated form.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
