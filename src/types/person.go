package types

// Person is a single passenger. EntranceTime and ExitTime stay nil until the person boards and alights.
type Person struct {
	CallTime         int
	EntranceTime     *int
	ExitTime         *int
	TargetFloor      int
	AssignedElevator int
}

func NewPerson(callTime, targetFloor, assignedElevator int) *Person {
	return &Person{
		CallTime:         callTime,
		TargetFloor:      targetFloor,
		AssignedElevator: assignedElevator,
	}
}

func (p *Person) Board(time int) {
	p.EntranceTime = &time
}

func (p *Person) Alight(time int) {
	p.ExitTime = &time
}

func (p *Person) HasBoarded() bool {
	return p.EntranceTime != nil
}

// WaitingTime is the number of ticks between the call and boarding. Zero if not boarded yet.
func (p *Person) WaitingTime() int {
	if !p.HasBoarded() {
		return 0
	}
	return *p.EntranceTime - p.CallTime
}

// TimeInElevator is the number of ticks between boarding and now.
func (p *Person) TimeInElevator(now int) int {
	if !p.HasBoarded() {
		return 0
	}
	return now - *p.EntranceTime
}
