package pipeline

import (
	"errors"
	"fmt"
)

// State is a step of a pipeline run. A run moves through the states in
// order and stops at the first failure.
type State int

const (
	Loaded State = iota
	Reconciled
	Normalized
	Merged
	Assembled
	Written
)

var stateNames = [...]string{"loaded", "reconciled", "normalized", "merged", "assembled", "written"}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrDifferentImageFormats is returned when the two inputs were decoded from
// different formats.
var ErrDifferentImageFormats = errors.New("pipeline: input images have different formats")

// StageError reports the state a run was trying to reach when it failed.
type StageError struct {
	Stage State
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

func fail(stage State, err error) error {
	return &StageError{Stage: stage, Err: err}
}
