package bank

import (
	"errors"
	"fmt"
	"log/slog"

	"elevsim/src/dispatcher"
	"elevsim/src/elev"
)

var (
	ErrFloorOutOfRange = errors.New("floor out of range")
	ErrNoElevators     = errors.New("no elevator available")
)

// Bank validates calls and hands them to the active dispatch policy.
type Bank struct {
	Elevators   []*elev.Elevator
	Policy      dispatcher.Policy
	TotalFloors int
}

func New(elevators []*elev.Elevator, policy dispatcher.Policy, totalFloors int) *Bank {
	return &Bank{
		Elevators:   elevators,
		Policy:      policy,
		TotalFloors: totalFloors,
	}
}

// ValidateCall checks that both floors exist.
func (b *Bank) ValidateCall(callFloor, destinationFloor int) error {
	if callFloor < 0 || callFloor >= b.TotalFloors {
		return fmt.Errorf("%w: call from floor %d, building has %d floors", ErrFloorOutOfRange, callFloor, b.TotalFloors)
	}
	if destinationFloor < 0 || destinationFloor >= b.TotalFloors {
		return fmt.Errorf("%w: call to floor %d, building has %d floors", ErrFloorOutOfRange, destinationFloor, b.TotalFloors)
	}
	return nil
}

// IngestCall returns the index of the elevator the caller should enter.
func (b *Bank) IngestCall(callFloor, destinationFloor int) (int, error) {
	if err := b.ValidateCall(callFloor, destinationFloor); err != nil {
		return -1, err
	}
	index, ok := b.Policy.Assign(b.Elevators, callFloor, destinationFloor)
	if !ok {
		return -1, fmt.Errorf("%w: policy %s, %d elevators", ErrNoElevators, b.Policy.Name(), len(b.Elevators))
	}
	slog.Debug("Call assigned", "from", callFloor, "to", destinationFloor, "elevator", index, "policy", b.Policy.Name())
	return index, nil
}
