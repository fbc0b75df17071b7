package elev

import (
	"fmt"

	"elevsim/src/logger"
	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

var log = logger.GetLogger()

// New returns an idle elevator at floor 1. Index is 1-based and only used for reporting.
func New(index, numFloors int) *Elevator {
	elevator := &Elevator{
		numFloors: numFloors,
		state: types.ElevState{
			Index:     index,
			Floor:     1,
			Behaviour: types.Idle,
		},
	}
	log.Debug().Int("elevator", index).Int("floors", numFloors).Msg("Elevator initialized")
	return elevator
}

// SummonToFloor appends a request to the back of the queue. Duplicates are kept.
func (e *Elevator) SummonToFloor(floor int) error {
	if floor < 1 || floor > e.numFloors {
		return fmt.Errorf("%w: floor %d outside 1..%d", types.ErrInvalidFloor, floor, e.numFloors)
	}
	e.state.Queue = append(e.state.Queue, types.Request{Floor: floor})
	log.Debug().
		Int("elevator", e.state.Index).
		Int("floor", floor).
		Int("queued", len(e.state.Queue)).
		Msg("Request queued")
	return nil
}

func (e *Elevator) Floor() int { return e.state.Floor }

func (e *Elevator) Behaviour() types.ElevBehaviour { return e.state.Behaviour }

func (e *Elevator) NumFloors() int { return e.numFloors }

// State returns a deep copy of the elevator state. The copy shares no memory with the elevator.
func (e *Elevator) State() types.ElevState {
	snapshot := new(types.ElevState)
	if err := deepcopy.Copy(snapshot, &e.state); err != nil {
		panic(err)
	}
	return *snapshot
}
