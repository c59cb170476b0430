package dispatcher

import (
	"log/slog"
	"slices"

	"elevsim/src/elev"
)

// roundRobin is a cursor over elevator indices. It advances before it is read,
// so with more than one elevator the first call goes to index 1.
type roundRobin struct {
	current int
}

func (r *roundRobin) next(n int) (int, bool) {
	if n == 0 {
		return -1, false
	}
	r.current = (r.current + 1) % n
	return r.current, true
}

// RoundRobinAppend picks elevators in turn and appends call and destination to the end of the queue.
type RoundRobinAppend struct {
	cursor roundRobin
}

func NewRoundRobinAppend() *RoundRobinAppend {
	return &RoundRobinAppend{}
}

func (p *RoundRobinAppend) Name() string { return RoundRobinAppendName }

func (p *RoundRobinAppend) Assign(elevators []*elev.Elevator, callFloor, destinationFloor int) (int, bool) {
	index, ok := p.cursor.next(len(elevators))
	if !ok {
		return index, false
	}
	e := elevators[index]
	e.Destinations = append(e.Destinations, callFloor, destinationFloor)
	slog.Debug("Round robin assignment", "elevator", index, "destinations", e.Destinations)
	return index, true
}

// ClosestCallPrepend picks the closest elevator and makes it detour to the call immediately.
type ClosestCallPrepend struct{}

func NewClosestCallPrepend() *ClosestCallPrepend {
	return &ClosestCallPrepend{}
}

func (p *ClosestCallPrepend) Name() string { return ClosestCallPrependName }

func (p *ClosestCallPrepend) Assign(elevators []*elev.Elevator, callFloor, destinationFloor int) (int, bool) {
	index, ok := ClosestElevatorToFloor(elevators, callFloor)
	if !ok {
		return index, false
	}
	e := elevators[index]
	e.Destinations = slices.Insert(e.Destinations, 0, destinationFloor)
	e.Destinations = slices.Insert(e.Destinations, 0, callFloor)
	slog.Debug("Closest elevator assignment", "elevator", index, "floor", e.CurrentFloor, "destinations", e.Destinations)
	return index, true
}

// LeastBusyAppend picks the elevator with the fewest destinations and appends to the end of its queue.
type LeastBusyAppend struct{}

func NewLeastBusyAppend() *LeastBusyAppend {
	return &LeastBusyAppend{}
}

func (p *LeastBusyAppend) Name() string { return LeastBusyAppendName }

func (p *LeastBusyAppend) Assign(elevators []*elev.Elevator, callFloor, destinationFloor int) (int, bool) {
	index, ok := LeastBusyElevator(elevators)
	if !ok {
		return index, false
	}
	e := elevators[index]
	e.Destinations = append(e.Destinations, callFloor, destinationFloor)
	slog.Debug("Least busy assignment", "elevator", index, "destinations", e.Destinations)
	return index, true
}
