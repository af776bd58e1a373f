package engine

import "fmt"

// Role is a seat's position label for one hand.
type Role int

const (
	RoleButton Role = iota
	RoleSmallBlind
	RoleBigBlind
	RoleUnderTheGun
	RoleMiddle
	RoleLojack
	RoleHijack
	RoleCutoff
)

func (r Role) String() string {
	switch r {
	case RoleButton:
		return "BTN"
	case RoleSmallBlind:
		return "SB"
	case RoleBigBlind:
		return "BB"
	case RoleUnderTheGun:
		return "UTG"
	case RoleMiddle:
		return "MP"
	case RoleLojack:
		return "LJ"
	case RoleHijack:
		return "HJ"
	case RoleCutoff:
		return "CO"
	default:
		return "unknown"
	}
}

// SmallBlindSeat returns the seat posting the small blind. Heads-up the
// button posts it.
func SmallBlindSeat(n, button int) int {
	if n == 2 {
		return button
	}
	return (button + 1) % n
}

// BigBlindSeat returns the seat posting the big blind.
func BigBlindSeat(n, button int) int {
	if n == 2 {
		return (button + 1) % n
	}
	return (button + 2) % n
}

// AssignRoles computes the per-seat role labels for an n-handed table with
// the given button seat. Supports 2 to 9 players.
//
// Heads-up the button doubles as the small blind and is labelled BTN. For
// larger tables roles run BTN, SB, BB, UTG around the table with CO, HJ and
// LJ filled in from the seat before the button backwards and any remaining
// seats labelled MP.
func AssignRoles(n, button int) ([]Role, error) {
	if n < 2 || n > 9 {
		return nil, fmt.Errorf("engine: table size %d out of range [2,9]", n)
	}
	if button < 0 || button >= n {
		return nil, fmt.Errorf("engine: button seat %d out of range for %d players", button, n)
	}

	roles := make([]Role, n)
	roles[button] = RoleButton
	roles[BigBlindSeat(n, button)] = RoleBigBlind
	if n == 2 {
		return roles, nil
	}
	roles[SmallBlindSeat(n, button)] = RoleSmallBlind

	// Seats between the big blind and the button, in acting order.
	middle := n - 3
	if middle == 0 {
		return roles, nil
	}

	labels := make([]Role, middle)
	labels[0] = RoleUnderTheGun
	for i := 1; i < middle; i++ {
		labels[i] = RoleMiddle
	}
	late := []Role{RoleCutoff, RoleHijack, RoleLojack}
	for i, j := middle-1, 0; i >= 1 && j < len(late); i, j = i-1, j+1 {
		labels[i] = late[j]
	}

	for i := 0; i < middle; i++ {
		roles[(button+3+i)%n] = labels[i]
	}
	return roles, nil
}

// FirstToActPreflop returns the seat that opens the preflop betting, before
// any eligibility skipping. Heads-up the button/small blind acts first;
// otherwise the seat after the big blind does.
func FirstToActPreflop(n, button int) int {
	if n == 2 {
		return button
	}
	return (button + 3) % n
}

// FirstToActPostflop returns the seat that would open postflop betting
// before eligibility skipping: the first seat after the button. For three
// or more players that is the small blind; heads-up it is the big blind,
// since the button posts the small blind and acts last after the flop.
func FirstToActPostflop(n, button int) int {
	return (button + 1) % n
}
