package input

import "fmt"

// Action names one of the player's input intents.
type Action int

const (
	ActionShoot Action = iota
	ActionBoost
	ActionRotateLeft
	ActionRotateRight
)

var actionNames = [...]string{
	ActionShoot:       "shoot",
	ActionBoost:       "boost",
	ActionRotateLeft:  "rotate_left",
	ActionRotateRight: "rotate_right",
}

// String returns the action's name.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction looks up an action by name.
func ParseAction(name string) (Action, error) {
	for i, n := range actionNames {
		if n == name {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}

// Actions is the current snapshot of the player's intents. Any combination is legal.
type Actions struct {
	Shoot       bool
	Boost       bool
	RotateLeft  bool
	RotateRight bool
}

// Set switches a single intent on or off. Unknown actions are ignored.
func (a *Actions) Set(action Action, on bool) {
	switch action {
	case ActionShoot:
		a.Shoot = on
	case ActionBoost:
		a.Boost = on
	case ActionRotateLeft:
		a.RotateLeft = on
	case ActionRotateRight:
		a.RotateRight = on
	}
}
