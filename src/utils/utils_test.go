package utils

import (
	"testing"

	"elevsim/src/types"
)

func TestCountPeople(t *testing.T) {
	groups := [][]*types.Person{
		{types.NewPerson(0, 1, 0)},
		nil,
		{types.NewPerson(0, 2, 0), types.NewPerson(1, 3, 1)},
	}
	if got := CountPeople(groups); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestForEachPerson(t *testing.T) {
	groups := [][]*types.Person{
		{types.NewPerson(0, 1, 0)},
		{},
		{types.NewPerson(0, 2, 0)},
	}
	var visited []int
	ForEachPerson(groups, func(group int, person *types.Person) {
		visited = append(visited, group*10+person.TargetFloor)
	})
	if len(visited) != 2 || visited[0] != 1 || visited[1] != 22 {
		t.Errorf("Expected [1 22], got %v", visited)
	}
}

func TestSplitPreservesOrder(t *testing.T) {
	a := types.NewPerson(0, 1, 0)
	b := types.NewPerson(1, 2, 1)
	c := types.NewPerson(2, 3, 0)

	kept, rest := Split([]*types.Person{a, b, c}, func(p *types.Person) bool {
		return p.AssignedElevator == 0
	})

	if len(kept) != 2 || kept[0] != a || kept[1] != c {
		t.Errorf("Expected [a c], got %v", kept)
	}
	if len(rest) != 1 || rest[0] != b {
		t.Errorf("Expected [b], got %v", rest)
	}
}
