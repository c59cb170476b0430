package types

type Action int

const (
	Idle Action = iota
	Blocked
	MoveUp
	MoveDown
	OpenDoors
	OpenDoorsLobby
)

// Ticks is how long an action occupies the elevator. The lobby dwell is longer than any other floor.
func (a Action) Ticks() int {
	switch a {
	case Blocked, MoveUp, MoveDown:
		return 1
	case OpenDoors:
		return 5
	case OpenDoorsLobby:
		return 30
	default:
		return 0
	}
}

func (a Action) String() string {
	switch a {
	case Idle:
		return "IDLE"
	case Blocked:
		return "BLOCKED"
	case MoveUp:
		return "MOVE_UP"
	case MoveDown:
		return "MOVE_DOWN"
	case OpenDoors:
		return "OPEN_DOORS"
	case OpenDoorsLobby:
		return "OPEN_DOORS_LOBBY"
	}
	return "UNKNOWN"
}
