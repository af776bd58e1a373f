// Package phh exports completed hands in the Poker Hand History file
// format (PHH), a TOML-based interchange format readable by most hand
// analysis tooling.
package phh

import "time"

// HandHistory represents a single poker hand encoded in PHH format.
type HandHistory struct {
	Variant           string   `toml:"variant"`
	SeatCount         int      `toml:"seat_count,omitempty"`
	Antes             []int    `toml:"antes"`
	BlindsOrStraddles []int    `toml:"blinds_or_straddles"`
	MinBet            int      `toml:"min_bet"`
	StartingStacks    []int    `toml:"starting_stacks"`
	FinishingStacks   []int    `toml:"finishing_stacks,omitempty"`
	Actions           []string `toml:"actions"`
	Players           []string `toml:"players,omitempty"`
	HandID            string   `toml:"hand"`
	Day               int      `toml:"day,omitempty"`
	Month             int      `toml:"month,omitempty"`
	Year              int      `toml:"year,omitempty"`

	Timestamp time.Time `toml:"-"`
}
