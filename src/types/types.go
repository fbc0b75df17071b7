package types

import "errors"

var (
	ErrInvalidElevator = errors.New("invalid elevator")
	ErrInvalidFloor    = errors.New("invalid floor")
)

// Request is a single destination floor. Floors are numbered from 1.
type Request struct {
	Floor int
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	}
	return "unknown"
}

type EventKind int

const (
	EventArrived EventKind = iota
	EventNextStop
	EventGoingIdle
)

func (k EventKind) String() string {
	switch k {
	case EventArrived:
		return "arrived"
	case EventNextStop:
		return "next-stop"
	case EventGoingIdle:
		return "going-idle"
	}
	return "unknown"
}

// Event is emitted by an elevator during a tick. Floor is 0 for EventGoingIdle.
type Event struct {
	Kind  EventKind
	Floor int
}

// ElevState is the state of one elevator. Current is set exactly while Behaviour is Moving.
type ElevState struct {
	Index     int
	Floor     int
	Behaviour ElevBehaviour
	Current   *Request
	Queue     []Request
}

// Target returns the floor of the current request, or 0 while idle.
func (s ElevState) Target() int {
	if s.Current == nil {
		return 0
	}
	return s.Current.Floor
}

func (s ElevState) QueuedFloors() []int {
	floors := make([]int, 0, len(s.Queue))
	for _, req := range s.Queue {
		floors = append(floors, req.Floor)
	}
	return floors
}

// ElevReport is what a single elevator produced during one tick.
// Floor is observed before the movement step of that tick.
type ElevReport struct {
	ElevState
	Events []Event
}

type TickReport struct {
	Tick      int
	Elevators []ElevReport
}
