// Contains the per-tick state machine of a single elevator.
package elev

import "elevsim/src/types"

// Tick advances the elevator one step: arrival check, then dequeue, then movement.
// An arrival is only detected on the tick after the elevator reached the floor, so a request
// for the floor the elevator is idling on takes two ticks to complete.
func (e *Elevator) Tick() types.ElevReport {
	var events []types.Event

	if e.hasArrived() {
		events = e.handleArrival()
	}
	if e.state.Behaviour == types.Idle && len(e.state.Queue) > 0 {
		e.dequeue()
	}

	report := types.ElevReport{
		ElevState: e.State(),
		Events:    events,
	}

	if e.state.Behaviour == types.Moving {
		e.move()
	}
	return report
}

func (e *Elevator) hasArrived() bool {
	return e.state.Behaviour == types.Moving && e.state.Current.Floor == e.state.Floor
}

// handleArrival clears the current request and reports where the elevator goes next.
func (e *Elevator) handleArrival() []types.Event {
	floor := e.state.Floor
	e.state.Current = nil
	e.state.Behaviour = types.Idle
	log.Debug().Int("elevator", e.state.Index).Int("floor", floor).Msg("Arrived at floor")

	events := []types.Event{{Kind: types.EventArrived, Floor: floor}}
	if len(e.state.Queue) > 0 {
		return append(events, types.Event{Kind: types.EventNextStop, Floor: e.state.Queue[0].Floor})
	}
	log.Debug().Int("elevator", e.state.Index).Msg("No more requests, going idle")
	return append(events, types.Event{Kind: types.EventGoingIdle})
}

func (e *Elevator) dequeue() {
	next := e.state.Queue[0]
	e.state.Queue = e.state.Queue[1:]
	e.state.Current = &next
	e.state.Behaviour = types.Moving
	log.Debug().
		Int("elevator", e.state.Index).
		Int("floor", e.state.Floor).
		Int("target", next.Floor).
		Msg("Serving next request")
}

// move steps exactly one floor towards the current request. Standing on the target is a no-op.
func (e *Elevator) move() {
	dir := getDirection(e.state.Floor, e.state.Current.Floor)
	if dir == MD_Stop {
		return
	}
	e.state.Floor += int(dir)
	log.Debug().
		Int("elevator", e.state.Index).
		Int("floor", e.state.Floor).
		Int("target", e.state.Current.Floor).
		Msg("Moved one floor")
}

func getDirection(from, to int) MotorDirection {
	if from < to {
		return MD_Up
	}
	if from > to {
		return MD_Down
	}
	return MD_Stop
}
