// State types are defined in elev package to make method receivers possible in fsm.go.
package elev

import "elevsim/src/types"

// Elevator is a single car. It is owned by exactly one system and is not safe for concurrent use.
type Elevator struct {
	numFloors int
	state     types.ElevState
}

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)
