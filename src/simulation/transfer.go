package simulation

import (
	"log/slog"

	"elevsim/src/elev"
	"elevsim/src/types"
	"elevsim/src/utils"
)

// alight removes everyone whose target is the elevator's floor and records their journey.
func (s *Engine) alight(index int, e *elev.Elevator) {
	leaving, staying := utils.Split(s.InElevator[index], func(p *types.Person) bool {
		return p.TargetFloor == e.CurrentFloor
	})
	if len(leaving) == 0 {
		return
	}
	for _, person := range leaving {
		person.Alight(s.Time)
		s.Stats.recordServed(person, s.Time)
	}
	s.InElevator[index] = staying
	slog.Debug("People exited", "time", s.Time, "elevator", index, "floor", e.CurrentFloor, "count", len(leaving))
}

// board lets people assigned to this elevator enter, earliest first, up to the free capacity.
// Anyone assigned here who does not fit is turned away for good.
func (s *Engine) board(index int, e *elev.Elevator) {
	floor := e.CurrentFloor
	assigned, others := utils.Split(s.WaitingAtFloor[floor], func(p *types.Person) bool {
		return p.AssignedElevator == index
	})
	if len(assigned) == 0 {
		return
	}

	room := max(e.Capacity-len(s.InElevator[index]), 0)
	entering := assigned[:min(room, len(assigned))]
	turnedAway := len(assigned) - len(entering)

	for _, person := range entering {
		person.Board(s.Time)
	}
	s.InElevator[index] = append(s.InElevator[index], entering...)
	s.WaitingAtFloor[floor] = others
	s.Stats.PeopleTurnedAway += turnedAway

	slog.Debug("People entered", "time", s.Time, "elevator", index, "floor", floor, "count", len(entering))
	if turnedAway > 0 {
		slog.Warn("Elevator full, people turned away", "time", s.Time, "elevator", index, "floor", floor, "count", turnedAway)
	}
}
