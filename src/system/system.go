// Package system advances a fixed bank of independent elevators in lockstep.
package system

import (
	"fmt"

	"elevsim/src/elev"
	"elevsim/src/logger"
	"elevsim/src/types"
)

var log = logger.GetLogger()

// System owns its elevators. It is driven by a single caller and holds no locks.
type System struct {
	elevators []*elev.Elevator
	numFloors int
	tickCount int
}

func New(numElevators, numFloors int) (*System, error) {
	if numElevators < 1 {
		return nil, fmt.Errorf("%w: need at least one elevator, got %d", types.ErrInvalidElevator, numElevators)
	}
	if numFloors < 1 {
		return nil, fmt.Errorf("%w: need at least one floor, got %d", types.ErrInvalidFloor, numFloors)
	}

	elevators := make([]*elev.Elevator, numElevators)
	for i := range elevators {
		elevators[i] = elev.New(i+1, numFloors)
	}
	log.Info().Int("elevators", numElevators).Int("floors", numFloors).Msg("System initialized")
	return &System{elevators: elevators, numFloors: numFloors}, nil
}

// SummonElevatorToFloor queues floor on the elevator with the given 1-based index.
func (s *System) SummonElevatorToFloor(elevator, floor int) error {
	if elevator < 1 || elevator > len(s.elevators) {
		return fmt.Errorf("%w: elevator %d outside 1..%d", types.ErrInvalidElevator, elevator, len(s.elevators))
	}
	if err := s.elevators[elevator-1].SummonToFloor(floor); err != nil {
		return fmt.Errorf("elevator %d: %w", elevator, err)
	}
	log.Info().Int("elevator", elevator).Int("floor", floor).Msg("Elevator summoned")
	return nil
}

// Tick bumps the tick counter and ticks every elevator once, in index order.
func (s *System) Tick() types.TickReport {
	s.tickCount++
	report := types.TickReport{
		Tick:      s.tickCount,
		Elevators: make([]types.ElevReport, 0, len(s.elevators)),
	}
	for _, elevator := range s.elevators {
		report.Elevators = append(report.Elevators, elevator.Tick())
	}
	log.Debug().Int("tick", s.tickCount).Msg("Tick complete")
	return report
}

func (s *System) TickCount() int    { return s.tickCount }
func (s *System) NumFloors() int    { return s.numFloors }
func (s *System) NumElevators() int { return len(s.elevators) }

// Status returns a snapshot of every elevator in index order.
func (s *System) Status() []types.ElevState {
	states := make([]types.ElevState, 0, len(s.elevators))
	for _, elevator := range s.elevators {
		states = append(states, elevator.State())
	}
	return states
}
