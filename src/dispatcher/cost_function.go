package dispatcher

import (
	"elevsim/src/elev"
	"elevsim/src/types"
)

// ClosestElevatorToFloor returns the elevator with the smallest distance to floor.
// Ties go to the lowest index.
func ClosestElevatorToFloor(elevators []*elev.Elevator, floor int) (int, bool) {
	closest := -1
	for i, e := range elevators {
		if closest == -1 || abs(e.CurrentFloor-floor) < abs(elevators[closest].CurrentFloor-floor) {
			closest = i
		}
	}
	return closest, closest != -1
}

// LeastBusyElevator returns the elevator with the fewest pending destinations.
// Ties go to the lowest index.
func LeastBusyElevator(elevators []*elev.Elevator) (int, bool) {
	leastBusy := -1
	for i, e := range elevators {
		if leastBusy == -1 || len(e.Destinations) < len(elevators[leastBusy].Destinations) {
			leastBusy = i
		}
	}
	return leastBusy, leastBusy != -1
}

func getDirection(from, to int) types.MotorDirection {
	if from < to {
		return types.MD_Up
	}
	if from > to {
		return types.MD_Down
	}
	return types.MD_Stop
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
