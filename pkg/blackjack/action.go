package blackjack

import (
	"fmt"
	"strings"
)

// Action is a choice the player makes on their turn
type Action int

// Action constants
const (
	ActionHit Action = iota + 1
	ActionStay
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStay:
		return "stay"
	}

	return fmt.Sprintf("Action(%d)", int(a))
}

// ActionFromString returns an action from user input (hit or stay, case-insensitive)
func ActionFromString(s string) (Action, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hit", "h":
		return ActionHit, nil
	case "stay", "s":
		return ActionStay, nil
	}

	return 0, fmt.Errorf("invalid action: %q", s)
}
