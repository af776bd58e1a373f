package poker

import (
	rand "math/rand/v2"
)

// Deck is a standard 52-card deck dealt from the top.
type Deck struct {
	cards [52]Card
	size  int
	next  int
	rng   *rand.Rand
}

// NewDeck creates a new shuffled deck using the provided RNG. The RNG is
// required so shuffles are reproducible in tests.
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng, size: 52}

	i := 0
	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards[i] = NewCard(rank, suit)
			i++
		}
	}

	d.Shuffle()
	return d
}

// NewStackedDeck creates an unshuffled deck that deals the given cards in
// order and nothing beyond them. Used for deterministic tests.
func NewStackedDeck(cards []Card) *Deck {
	d := &Deck{size: len(cards)}
	copy(d.cards[:], cards)
	return d
}

// Shuffle reshuffles the entire deck with Fisher-Yates and resets the deal
// position.
func (d *Deck) Shuffle() {
	d.next = 0
	for i := d.size - 1; i > 0; i-- {
		j := d.rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns n cards from the top of the deck. Returns nil if
// fewer than n cards remain.
func (d *Deck) Deal(n int) []Card {
	if d.next+n > d.size {
		return nil
	}
	cards := make([]Card, n)
	copy(cards, d.cards[d.next:d.next+n])
	d.next += n
	return cards
}

// Remaining returns the number of undealt cards.
func (d *Deck) Remaining() int {
	return d.size - d.next
}