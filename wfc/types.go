package wfc

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/pattern"
)

var (
	// ErrNilGrid indicates New was called without a grid.
	ErrNilGrid = errors.New("wfc: nil grid")
	// ErrNilJudge indicates New was called without a judge.
	ErrNilJudge = errors.New("wfc: nil judge")
	// ErrZeroChoice matches a Failure with ReasonZeroChoice.
	ErrZeroChoice = errors.New("wfc: cell has no valid candidate")
	// ErrZeroEntropy matches a Failure with ReasonZeroEntropy.
	ErrZeroEntropy = errors.New("wfc: contradiction after propagation")
	// ErrJudge matches a Failure with ReasonJudge.
	ErrJudge = errors.New("wfc: judge failed to select")
)

// State is the engine life-cycle state.
type State uint8

const (
	// StateUninitialized is the state before the first Initialize or Step.
	StateUninitialized State = iota
	// StateRunning means cells remain to be placed.
	StateRunning
	// StateCollapsed means every cell holds a group.
	StateCollapsed
	// StateFailed means the run stopped on a Failure.
	StateFailed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateRunning:
		return "running"
	case StateCollapsed:
		return "collapsed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Outcome classifies the result of one Step.
type Outcome uint8

const (
	// OutcomeSuccess means a cell was placed and the run can continue.
	OutcomeSuccess Outcome = iota
	// OutcomeCollapsed means there is nothing left to place.
	OutcomeCollapsed
	// OutcomeFailed means the run stopped; see StepResult.Reason.
	OutcomeFailed
)

// String returns "success", "collapsed" or "failed".
func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeCollapsed:
		return "collapsed"
	default:
		return "failed"
	}
}

// Reason tags a failure.
type Reason uint8

const (
	// ReasonNone is the zero value for non-failed steps.
	ReasonNone Reason = iota
	// ReasonZeroChoice: the cell chosen for collapse had no candidate.
	ReasonZeroChoice
	// ReasonZeroEntropy: propagation drove an unplaced cell to no candidate.
	ReasonZeroEntropy
	// ReasonJudge: the judge returned an error or a group outside the
	// candidate set.
	ReasonJudge
)

// String returns the reason tag used in logs and metrics labels.
func (r Reason) String() string {
	switch r {
	case ReasonNone:
		return "none"
	case ReasonZeroChoice:
		return "zero_choice"
	case ReasonZeroEntropy:
		return "zero_entropy"
	case ReasonJudge:
		return "judge"
	default:
		return fmt.Sprintf("Reason(%d)", uint8(r))
	}
}

// Failure is the terminal cause of a failed run. It implements error and
// matches ErrZeroChoice, ErrZeroEntropy or ErrJudge with errors.Is.
type Failure struct {
	Reason Reason
	Point  grid.Point
	Cause  error // judge error for ReasonJudge, nil otherwise
}

// Error implements error.
func (f *Failure) Error() string {
	msg := fmt.Sprintf("wfc: generation failed at %s: %s", f.Point, f.Reason)
	if f.Cause != nil {
		msg += ": " + f.Cause.Error()
	}
	return msg
}

// Is maps the reason onto the package sentinels.
func (f *Failure) Is(target error) bool {
	switch f.Reason {
	case ReasonZeroChoice:
		return target == ErrZeroChoice
	case ReasonZeroEntropy:
		return target == ErrZeroEntropy
	case ReasonJudge:
		return target == ErrJudge
	default:
		return false
	}
}

// Unwrap exposes the judge error, if any.
func (f *Failure) Unwrap() error { return f.Cause }

// StepResult describes one Step. It is created fresh per step.
type StepResult struct {
	// Success is true only when a cell was placed and stepping may continue.
	// A Collapsed outcome reports false: stop stepping.
	Success bool
	Outcome Outcome
	// Reason is set when Outcome == OutcomeFailed.
	Reason Reason
	// Point is the placed cell on success, the failing cell on failure.
	Point grid.Point
	// Placed is the group placed by this step, nil if none.
	Placed *pattern.Group
	// Candidates is the candidate count of Point before selection.
	Candidates int
	// Contradiction is set when this step's propagation emptied a cell,
	// including in non-early-stopping mode where the step still succeeds.
	Contradiction *grid.Point
}

// RunSummary is handed to observers when Run returns.
type RunSummary struct {
	Collapsed bool
	Steps     int
	Duration  time.Duration
	Failure   *Failure
}

// Observer receives engine events. Implementations must be fast and must
// not mutate the grid.
type Observer interface {
	StepDone(res StepResult)
	RunDone(sum RunSummary)
}
