// Contains the single elevator state machine, advanced one simulated tick at a time.
package elev

import (
	"log/slog"

	"elevsim/src/timer"
	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Elevator is one car of the bank. Destinations are only reordered by a dispatch policy,
// and popped by the elevator itself when it arrives at the front entry.
type Elevator struct {
	Capacity     int
	CurrentFloor int
	Destinations []int
	BlockedFor   timer.Countdown
	Door         types.DoorState
}

func New(capacity, startFloor int) *Elevator {
	return &Elevator{
		Capacity:     capacity,
		CurrentFloor: startFloor,
		Door:         types.DoorClosed,
	}
}

// NewBank creates n identical elevators.
func NewBank(n, capacity, startFloor int) []*Elevator {
	elevators := make([]*Elevator, n)
	for i := range elevators {
		elevators[i] = New(capacity, startFloor)
	}
	return elevators
}

// Tick advances the elevator one time step and returns the action taken.
//  1. While blocked, count down and do nothing else
//  2. Idle when there is nowhere to go
//  3. Open doors when the next destination is the current floor
//  4. Otherwise close doors and move one floor towards the next destination
func (e *Elevator) Tick() types.Action {
	if e.BlockedFor.Step() {
		return types.Blocked
	}

	if len(e.Destinations) == 0 {
		return types.Idle
	}

	next := e.Destinations[0]
	if e.CurrentFloor == next {
		e.Destinations = e.Destinations[1:]
		e.Door = types.DoorOpen
		action := types.OpenDoors
		if e.CurrentFloor == 0 {
			action = types.OpenDoorsLobby
		}
		e.BlockedFor.Start(action.Ticks() - 1)
		slog.Debug("Opening doors", "floor", e.CurrentFloor, "remaining", len(e.Destinations))
		return action
	}

	e.Door = types.DoorClosed
	if e.CurrentFloor < next {
		e.CurrentFloor++
		return types.MoveUp
	}
	e.CurrentFloor--
	return types.MoveDown
}

func (e *Elevator) Idle() bool {
	return !e.BlockedFor.Running() && len(e.Destinations) == 0
}

// Clone returns a deep copy that shares no destination storage with e.
func (e *Elevator) Clone() *Elevator {
	clone := new(Elevator)
	if err := deepcopy.Copy(clone, e); err != nil {
		panic(err)
	}
	return clone
}
