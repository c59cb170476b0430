package simulation

import (
	"errors"
	"fmt"
	"log/slog"

	"elevsim/src/bank"
	"elevsim/src/elev"
	"elevsim/src/types"
	"elevsim/src/utils"

	"github.com/tiendc/go-deepcopy"
)

var ErrCallOutOfOrder = errors.New("call is earlier than simulation time")

// Stats only count successful journeys, except TotalPeople and PeopleTurnedAway.
type Stats struct {
	TotalPeople           int
	PeopleTurnedAway      int
	PeopleServed          int
	TotalWaitingTime      int
	TotalTimeInElevator   int
	AverageTimeWaiting    float64
	AverageTimeInElevator float64
}

func (s *Stats) recordServed(person *types.Person, now int) {
	s.PeopleServed++
	s.TotalWaitingTime += person.WaitingTime()
	s.AverageTimeWaiting = float64(s.TotalWaitingTime) / float64(s.PeopleServed)
	s.TotalTimeInElevator += person.TimeInElevator(now)
	s.AverageTimeInElevator = float64(s.TotalTimeInElevator) / float64(s.PeopleServed)
}

// Engine owns simulated time, the people waiting at each floor and the people inside each elevator.
type Engine struct {
	bank *bank.Bank

	Time           int
	WaitingAtFloor [][]*types.Person // floor -> people, in arrival order
	InElevator     [][]*types.Person // elevator -> people, in boarding order
	Calls          []types.Call
	Actions        []types.ActionEvent
	Stats          Stats
}

func New(b *bank.Bank) *Engine {
	engine := &Engine{bank: b}
	engine.Reset()
	return engine
}

// Reset clears all simulation state. Elevators are left as they are.
func (s *Engine) Reset() {
	s.WaitingAtFloor = make([][]*types.Person, s.bank.TotalFloors)
	s.InElevator = make([][]*types.Person, len(s.bank.Elevators))
	s.Time = 0
	s.Calls = nil
	s.Actions = nil
	s.Stats = Stats{}
}

func (s *Engine) Elevators() []*elev.Elevator {
	return s.bank.Elevators
}

// SubmitCalls feeds calls into the simulation in time order, then runs until every elevator is idle.
func (s *Engine) SubmitCalls(calls []types.Call) error {
	for _, call := range calls {
		if err := s.SubmitCall(call); err != nil {
			return err
		}
	}

	s.RunUntilIdle()
	slog.Info("All elevator actions completed", "time", s.Time, "served", s.Stats.PeopleServed)
	s.warnStranded()
	return nil
}

// warnStranded logs anyone still waiting or riding once every elevator is idle.
func (s *Engine) warnStranded() {
	utils.ForEachPerson(s.WaitingAtFloor, func(floor int, person *types.Person) {
		slog.Warn("Person still waiting", "floor", floor, "callTime", person.CallTime, "elevator", person.AssignedElevator)
	})
	utils.ForEachPerson(s.InElevator, func(elevator int, person *types.Person) {
		slog.Warn("Person still inside", "elevator", elevator, "targetFloor", person.TargetFloor)
	})
}

// SubmitCall ticks up to the call's time, dispatches it and puts its people at the call floor.
// A call rejected for its time or floors leaves the simulation untouched.
func (s *Engine) SubmitCall(call types.Call) error {
	if call.Time < s.Time {
		return fmt.Errorf("%w: call at time %d, simulation time is %d", ErrCallOutOfOrder, call.Time, s.Time)
	}
	if err := s.bank.ValidateCall(call.CallFloor, call.DestinationFloor); err != nil {
		return err
	}
	s.Calls = append(s.Calls, call)

	for s.Time < call.Time {
		s.Tick()
	}

	assigned, err := s.bank.IngestCall(call.CallFloor, call.DestinationFloor)
	if err != nil {
		return err
	}

	for range call.People {
		person := types.NewPerson(s.Time, call.DestinationFloor, assigned)
		s.WaitingAtFloor[call.CallFloor] = append(s.WaitingAtFloor[call.CallFloor], person)
		s.Stats.TotalPeople++
	}
	return nil
}

// RunUntilIdle ticks until a tick where no elevator did anything.
func (s *Engine) RunUntilIdle() {
	for !s.Tick() {
	}
}

// Tick advances every elevator one step, in index order, and moves people in and out of
// elevators with open doors. Returns true if all elevators were idle.
func (s *Engine) Tick() bool {
	finished := true
	for index, e := range s.bank.Elevators {
		action := e.Tick()
		if action != types.Idle {
			finished = false
			if action != types.Blocked {
				s.Actions = append(s.Actions, types.ActionEvent{
					Time:     s.Time,
					Elevator: index,
					Action:   action,
					Floor:    e.CurrentFloor,
				})
				slog.Debug("Elevator action", "time", s.Time, "elevator", index, "action", action, "floor", e.CurrentFloor)
			}
		}

		// Doors stay open while blocked, so people keep moving on those ticks too.
		if e.Door == types.DoorOpen {
			s.alight(index, e)
			s.board(index, e)
		}
	}

	s.Time++
	return finished
}

func (s *Engine) PeopleWaiting() int {
	return utils.CountPeople(s.WaitingAtFloor)
}

func (s *Engine) PeopleInElevators() int {
	return utils.CountPeople(s.InElevator)
}

// Snapshot is a deep copy of the engine and its elevators, safe to read after the run continues.
type Snapshot struct {
	Policy         string
	TotalFloors    int
	Time           int
	Elevators      []*elev.Elevator
	WaitingAtFloor [][]*types.Person
	InElevator     [][]*types.Person
	Calls          []types.Call
	Actions        []types.ActionEvent
	Stats          Stats
}

func (s *Snapshot) PeopleWaiting() int {
	return utils.CountPeople(s.WaitingAtFloor)
}

func (s *Snapshot) PeopleInElevators() int {
	return utils.CountPeople(s.InElevator)
}

func (s *Engine) Snapshot() Snapshot {
	live := Snapshot{
		TotalFloors:    s.bank.TotalFloors,
		Time:           s.Time,
		Elevators:      s.bank.Elevators,
		WaitingAtFloor: s.WaitingAtFloor,
		InElevator:     s.InElevator,
		Calls:          s.Calls,
		Actions:        s.Actions,
		Stats:          s.Stats,
	}
	if s.bank.Policy != nil {
		live.Policy = s.bank.Policy.Name()
	}
	var snapshot Snapshot
	if err := deepcopy.Copy(&snapshot, &live); err != nil {
		panic(err)
	}
	return snapshot
}
