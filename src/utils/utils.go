package utils

import "elevsim/src/types"

// ForEachPerson is a helper function that reduces indentation when visiting every person
// held in per-floor or per-elevator groups.
func ForEachPerson(groups [][]*types.Person, action func(group int, person *types.Person)) {
	for group := range groups {
		for _, person := range groups[group] {
			action(group, person)
		}
	}
}

// CountPeople returns the number of people across all groups.
func CountPeople(groups [][]*types.Person) (result int) {
	for _, group := range groups {
		result += len(group)
	}
	return result
}

// Split partitions people by keep, preserving order on both sides.
func Split(people []*types.Person, keep func(*types.Person) bool) (kept, rest []*types.Person) {
	for _, person := range people {
		if keep(person) {
			kept = append(kept, person)
		} else {
			rest = append(rest, person)
		}
	}
	return kept, rest
}
