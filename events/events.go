// Package events defines the notification protocol emitted by a running
// simulation. Events carry the number of completed turns so consumers can
// order them without inspecting grid state.
package events

import "golife/model"

// Event is anything the simulation reports to an attached consumer.
type Event interface {
	// CompletedTurns returns the generation count when the event fired.
	CompletedTurns() int
}

// TurnComplete fires once per generation.
type TurnComplete struct {
	Turn int
}

func (e TurnComplete) CompletedTurns() int { return e.Turn }

// AliveCellsCount reports the current population, emitted periodically.
type AliveCellsCount struct {
	Turn  int
	Count int
}

func (e AliveCellsCount) CompletedTurns() int { return e.Turn }

// FinalTurnComplete fires once when a run finishes, carrying the surviving
// cells.
type FinalTurnComplete struct {
	Turn  int
	Alive []model.Cell
}

func (e FinalTurnComplete) CompletedTurns() int { return e.Turn }

// State describes the simulation lifecycle.
type State int

const (
	Running State = iota
	Paused
	Quitting
)

func (s State) String() string {
	switch s {
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	case Quitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// StateChange reports a lifecycle transition.
type StateChange struct {
	Turn     int
	NewState State
}

func (e StateChange) CompletedTurns() int { return e.Turn }
