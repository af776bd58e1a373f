package poker

import (
	"testing"
)

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Card
	}{
		{"Ah", Card{Rank: Ace, Suit: Hearts}},
		{"as", Card{Rank: Ace, Suit: Spades}},
		{"Td", Card{Rank: Ten, Suit: Diamonds}},
		{"2c", Card{Rank: Two, Suit: Clubs}},
		{"kH", Card{Rank: King, Suit: Hearts}},
	}

	for _, tt := range tests {
		got, err := ParseCard(tt.in)
		if err != nil {
			t.Fatalf("ParseCard(%q) returned error: %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseCard(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCardInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "A", "1h", "Ax", "10h", "Ahh"} {
		if _, err := ParseCard(in); err == nil {
			t.Errorf("ParseCard(%q) should have failed", in)
		}
	}
}

func TestCardStringRoundTrip(t *testing.T) {
	t.Parallel()

	for suit := Clubs; suit <= Spades; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			c := NewCard(rank, suit)
			parsed, err := ParseCard(c.String())
			if err != nil {
				t.Fatalf("ParseCard(%q): %v", c.String(), err)
			}
			if parsed != c {
				t.Errorf("round trip %v != %v", parsed, c)
			}
		}
	}
}

func TestParseCards(t *testing.T) {
	t.Parallel()

	cards, err := ParseCards([]string{"Ah", "Kd", "Qs"})
	if err != nil {
		t.Fatalf("ParseCards: %v", err)
	}
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}
	if got := FormatCards(cards); got != "Ah Kd Qs" {
		t.Errorf("FormatCards = %q", got)
	}

	if _, err := ParseCards([]string{"Ah", "bogus"}); err == nil {
		t.Error("ParseCards should reject invalid cards")
	}
}
