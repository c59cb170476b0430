package dispatcher

import (
	"log/slog"
	"slices"

	"elevsim/src/elev"
	"elevsim/src/types"
)

// StandardElevator picks elevators in turn, but keeps each queue in sweeps:
// the car goes all the way in one direction before it turns around.
type StandardElevator struct {
	cursor roundRobin
}

func NewStandardElevator() *StandardElevator {
	return &StandardElevator{}
}

func (p *StandardElevator) Name() string { return StandardElevatorName }

func (p *StandardElevator) Assign(elevators []*elev.Elevator, callFloor, destinationFloor int) (int, bool) {
	index, ok := p.cursor.next(len(elevators))
	if !ok {
		return index, false
	}
	e := elevators[index]
	dir := getDirection(callFloor, destinationFloor)

	// The route starts at the present floor so the first segment has a direction.
	route := make([]int, 0, len(e.Destinations)+3)
	route = append(route, e.CurrentFloor)
	route = append(route, e.Destinations...)

	route, pickup := InsertFloor(route, callFloor, dir, 0)
	route, dropoff := InsertFloor(route, destinationFloor, dir, pickup)
	e.Destinations = route[1:]

	slog.Debug("Standard elevator assignment",
		"elevator", index,
		"direction", dir,
		"pickup", pickup-1,
		"dropoff", dropoff-1,
		"destinations", e.Destinations)
	return index, true
}

// InsertFloor inserts floor into a route of alternating ascending and descending runs,
// only where the route is already moving in direction want (MD_Stop accepts any run).
// route[0] is the elevator's present floor. Nothing before index after+1 is considered,
// which keeps a drop-off behind its pick-up. Returns the updated route and the index of
// floor in it; an existing stop is reused instead of duplicated.
func InsertFloor(route []int, floor int, want types.MotorDirection, after int) ([]int, int) {
	prev, cur := types.MD_Stop, types.MD_Stop

	for i := 1; i < len(route); i++ {
		cur = segmentDirection(route[i-1], route[i], cur)

		// Track direction changes up to the given point, but don't insert.
		if i <= after {
			prev = cur
			continue
		}

		if cur == want || want == types.MD_Stop {
			if route[i] == floor {
				return route, i
			}
			if (cur == types.MD_Up && route[i-1] < floor && floor < route[i]) ||
				(cur == types.MD_Down && route[i] < floor && floor < route[i-1]) {
				return slices.Insert(route, i, floor), i
			}
		}

		// At the top
		if cur == types.MD_Down && prev == types.MD_Up {
			if floor > route[i-1] {
				return slices.Insert(route, i, floor), i
			}
			if floor == route[i-1] {
				return route, i - 1
			}
		}

		// At the bottom
		if cur == types.MD_Up && prev == types.MD_Down {
			if floor < route[i-1] {
				return slices.Insert(route, i, floor), i
			}
			if floor == route[i-1] {
				return route, i - 1
			}
		}

		prev = cur
	}

	if len(route) <= 1 || route[len(route)-1] != floor {
		route = append(route, floor)
	}
	return route, len(route) - 1
}

// segmentDirection keeps the previous direction across a repeated floor.
func segmentDirection(from, to int, prev types.MotorDirection) types.MotorDirection {
	if from == to {
		return prev
	}
	return getDirection(from, to)
}
