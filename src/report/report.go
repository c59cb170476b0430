// Prints simulation results, either a full dump of one run or a table comparing dispatch policies.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"elevsim/src/bank"
	"elevsim/src/dispatcher"
	"elevsim/src/elev"
	"elevsim/src/simulation"
	"elevsim/src/types"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Print writes every call, every action and the run statistics.
func Print(w io.Writer, s simulation.Snapshot) {
	printer.Fprintln(w, "Calls:")
	for _, c := range s.Calls {
		printer.Fprintf(w, "Call(time=%d, from=%d, to=%d, people=%d)\n", c.Time, c.CallFloor, c.DestinationFloor, c.People)
	}
	printer.Fprintln(w)

	printer.Fprintln(w, "Actions:")
	for _, a := range s.Actions {
		printer.Fprintf(w, "Action(time=%d, elevator=%d, action=%s, floor=%d)\n", a.Time, a.Elevator, a.Action, a.Floor)
	}
	printer.Fprintln(w)

	PrintStats(w, s)

	printer.Fprintln(w)
	printer.Fprintln(w, "Elevators:")
	for i, e := range s.Elevators {
		printer.Fprintln(w, elev.FormatElevator(i, e))
	}
}

// PrintStats writes the statistics block only.
func PrintStats(w io.Writer, s simulation.Snapshot) {
	printer.Fprintln(w, "Statistics:")
	if s.Policy != "" {
		printer.Fprintf(w, "Policy = %s\n", s.Policy)
	}
	printer.Fprintf(w, "Finished at time = %d\n", s.Time)
	printer.Fprintf(w, "Total people = %d\n", s.Stats.TotalPeople)
	printer.Fprintf(w, "People served = %d\n", s.Stats.PeopleServed)
	printer.Fprintf(w, "People turned away due to full car = %d\n", s.Stats.PeopleTurnedAway)
	printer.Fprintf(w, "People still waiting = %d\n", s.PeopleWaiting())
	printer.Fprintf(w, "People still in elevators = %d\n", s.PeopleInElevators())
	printer.Fprintf(w, "Total wait time = %d\n", s.Stats.TotalWaitingTime)
	printer.Fprintf(w, "Total time inside elevators = %d\n", s.Stats.TotalTimeInElevator)
	printer.Fprintf(w, "Average wait time = %.3f\n", s.Stats.AverageTimeWaiting)
	printer.Fprintf(w, "Average time inside elevators = %.3f\n", s.Stats.AverageTimeInElevator)
}

// Compare runs the same calls once per policy, each against its own clone of template,
// and returns the final state of every run in policy order. template is not modified.
func Compare(calls []types.Call, policies []string, totalFloors int, template []*elev.Elevator) ([]simulation.Snapshot, error) {
	results := make([]simulation.Snapshot, 0, len(policies))
	for _, name := range policies {
		policy, err := dispatcher.ByName(name)
		if err != nil {
			return nil, err
		}
		elevators := make([]*elev.Elevator, len(template))
		for i, e := range template {
			elevators[i] = e.Clone()
		}
		engine := simulation.New(bank.New(elevators, policy, totalFloors))
		if err := engine.SubmitCalls(calls); err != nil {
			return nil, fmt.Errorf("policy %s: %w", name, err)
		}
		slog.Info("Policy finished", "policy", name, "time", engine.Time, "served", engine.Stats.PeopleServed)
		results = append(results, engine.Snapshot())
	}
	return results, nil
}

// PrintComparison writes one row per run.
func PrintComparison(w io.Writer, results []simulation.Snapshot) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "policy\tfinished\tpeople\tserved\tturned away\tavg wait\tavg ride\t")
	for _, s := range results {
		printer.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%.2f\t%.2f\t\n",
			s.Policy, s.Time, s.Stats.TotalPeople, s.Stats.PeopleServed, s.Stats.PeopleTurnedAway,
			s.Stats.AverageTimeWaiting, s.Stats.AverageTimeInElevator)
	}
	return tw.Flush()
}
