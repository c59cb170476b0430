package dispatcher

import (
	"errors"
	"fmt"
	"strings"

	"elevsim/src/elev"
)

var ErrUnknownPolicy = errors.New("unknown dispatch policy")

// Policy decides which elevator serves a call and updates that elevator's destinations.
// ok is false when no elevator could be selected, e.g. for an empty bank.
type Policy interface {
	Name() string
	Assign(elevators []*elev.Elevator, callFloor, destinationFloor int) (index int, ok bool)
}

const (
	RoundRobinAppendName   = "round-robin-append"
	ClosestCallPrependName = "closest-call-prepend"
	LeastBusyAppendName    = "least-busy-append"
	StandardElevatorName   = "standard-elevator"
)

// Names lists every policy ByName accepts, in a stable order.
func Names() []string {
	return []string{RoundRobinAppendName, ClosestCallPrependName, LeastBusyAppendName, StandardElevatorName}
}

// ByName returns a fresh policy. Both the dashed names and the type names are accepted.
func ByName(name string) (Policy, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "-", "")) {
	case "roundrobinappend":
		return NewRoundRobinAppend(), nil
	case "closestcallprepend":
		return NewClosestCallPrepend(), nil
	case "leastbusyappend":
		return NewLeastBusyAppend(), nil
	case "standardelevator":
		return NewStandardElevator(), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}
