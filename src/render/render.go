// Package render prints simulator reports as console text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"elevsim/src/types"
)

const (
	titleRule  = "=============================================="
	tickRule   = "========="
	queuesRule = "-----------------------"
)

func Banner(w io.Writer, numElevators, numFloors int) {
	fmt.Fprintln(w, titleRule)
	fmt.Fprintln(w, "ELEVATOR SIMULATOR")
	fmt.Fprintln(w, titleRule)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Number of Elevators: %d\n", numElevators)
	fmt.Fprintf(w, "Number of Floors:    %d\n", numFloors)
	fmt.Fprintln(w)
}

// Queues lists the pending requests of every elevator, one floor per line.
func Queues(w io.Writer, states []types.ElevState) {
	fmt.Fprintln(w, "ELEVATOR REQUEST QUEUES:")
	fmt.Fprintln(w, queuesRule)
	for _, state := range states {
		fmt.Fprintf(w, "Elevator #%d\n", state.Index)
		for _, floor := range state.QueuedFloors() {
			fmt.Fprintf(w, "--- Floor: %d\n", floor)
		}
	}
	fmt.Fprintln(w)
}

func Tick(w io.Writer, report types.TickReport) {
	header := fmt.Sprintf("%s TICK %d %s", tickRule, report.Tick, tickRule)
	fmt.Fprintln(w)
	fmt.Fprintln(w, header)
	fmt.Fprintf(w, "Number of Elevators: %d\n", len(report.Elevators))
	fmt.Fprintln(w)

	for _, elevator := range report.Elevators {
		fmt.Fprintf(w, "Elevator #%d:\n", elevator.Index)
		for _, event := range elevator.Events {
			fmt.Fprintf(w, "--- %s\n", EventText(event))
		}
		fmt.Fprintf(w, "--- Current Floor:   %d\n", elevator.Floor)
		fmt.Fprintf(w, "--- Status:          %s\n", StatusText(elevator.ElevState))
		fmt.Fprintf(w, "--- Queued Requests: [%s]\n", joinFloors(elevator.QueuedFloors()))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", len(header)))
}

func Goodbye(w io.Writer) {
	fmt.Fprintln(w, "Have a great day!")
}

func EventText(event types.Event) string {
	switch event.Kind {
	case types.EventArrived:
		return fmt.Sprintf("ARRIVED AT FLOOR %d!", event.Floor)
	case types.EventNextStop:
		return fmt.Sprintf("NEXT STOP, FLOOR %d", event.Floor)
	case types.EventGoingIdle:
		return "NO MORE REQUESTS, GOING IDLE"
	}
	return event.Kind.String()
}

func StatusText(state types.ElevState) string {
	if state.Behaviour == types.Moving {
		return fmt.Sprintf("Going to floor #%d", state.Target())
	}
	return "IDLE"
}

func joinFloors(floors []int) string {
	parts := make([]string, len(floors))
	for i, floor := range floors {
		parts[i] = strconv.Itoa(floor)
	}
	return strings.Join(parts, ", ")
}
