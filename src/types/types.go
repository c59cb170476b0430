package types

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "Up"
	case MD_Down:
		return "Down"
	default:
		return "Stop"
	}
}

type DoorState int

const (
	DoorClosed DoorState = iota
	DoorOpen
)

func (d DoorState) String() string {
	if d == DoorOpen {
		return "Open"
	}
	return "Closed"
}

// Call is a request from CallFloor to DestinationFloor for People passengers, made at Time.
type Call struct {
	Time             int
	CallFloor        int
	DestinationFloor int
	People           int
}

// ActionEvent records a non-blocked action taken by one elevator during one tick.
// Floor is the elevator's floor after the action.
type ActionEvent struct {
	Time     int
	Elevator int
	Action   Action
	Floor    int
}
