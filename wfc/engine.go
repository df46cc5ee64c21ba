package wfc

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/katalvlaran/tilewfc/grid"
	"github.com/katalvlaran/tilewfc/judge"
)

// Engine orchestrates grid, judge and propagation into one generation.
type Engine struct {
	grid  *grid.Grid
	judge judge.Judge
	cfg   config

	state              State
	failure            *Failure
	firstContradiction *grid.Point
	steps              int
}

// New returns an uninitialized engine over g that selects with j.
// Returns ErrNilGrid or ErrNilJudge for missing collaborators.
func New(g *grid.Grid, j judge.Judge, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if j == nil {
		return nil, ErrNilJudge
	}
	return &Engine{
		grid:  g,
		judge: j,
		cfg:   newConfig(opts...),
	}, nil
}

// Initialize resets the grid and the engine to StateRunning.
func (e *Engine) Initialize() {
	e.grid.Initialize()
	e.state = StateRunning
	e.failure = nil
	e.firstContradiction = nil
	e.steps = 0
}

// Grid returns the grid the engine works on.
func (e *Engine) Grid() *grid.Grid { return e.grid }

// State returns the current life-cycle state.
func (e *Engine) State() State { return e.state }

// Steps returns the number of placements since the last Initialize.
func (e *Engine) Steps() int { return e.steps }

// Failure returns the terminal failure, or nil.
func (e *Engine) Failure() *Failure { return e.failure }

// Err returns the terminal failure as an error, or nil.
func (e *Engine) Err() error {
	if e.failure == nil {
		return nil
	}
	return e.failure
}

// FirstContradiction returns the first cell emptied by propagation since
// the last Initialize, in either stopping mode.
func (e *Engine) FirstContradiction() (grid.Point, bool) {
	if e.firstContradiction == nil {
		return grid.Point{}, false
	}
	return *e.firstContradiction, true
}

// IsComplete reports whether the grid is fully collapsed.
func (e *Engine) IsComplete() bool {
	return e.grid.IsCollapsed()
}

// Step performs one find-select-place-propagate cycle and returns its
// outcome. An uninitialized engine initializes first. A failed engine
// returns its failure again without touching the grid.
//
// When no cell is selectable but some are still unplaced, the outcome is
// OutcomeFailed with ReasonZeroEntropy, never OutcomeCollapsed.
func (e *Engine) Step(earlyStopping bool) StepResult {
	if e.state == StateUninitialized {
		e.Initialize()
	}
	if e.state == StateFailed {
		return StepResult{Outcome: OutcomeFailed, Reason: e.failure.Reason, Point: e.failure.Point}
	}

	res := e.step(earlyStopping)

	if res.Placed != nil {
		e.cfg.logger.Debug("cell collapsed",
			slog.String("point", res.Point.String()),
			slog.Int("uid", res.Placed.UID()),
			slog.Int("candidates", res.Candidates))
	}
	for _, o := range e.cfg.observers {
		o.StepDone(res)
	}
	return res
}

func (e *Engine) step(earlyStopping bool) StepResult {
	p, ok := e.grid.FindMinEntropyCell()
	if !ok {
		if e.grid.IsCollapsed() {
			e.state = StateCollapsed
			return StepResult{Outcome: OutcomeCollapsed}
		}
		// Only contradicted cells remain: report where it went wrong.
		at, found := e.FirstContradiction()
		if !found {
			at = e.firstEmptyCell()
		}
		return e.fail(StepResult{}, ReasonZeroEntropy, at, nil)
	}

	cands := e.grid.ValidCandidates(p)
	if len(cands) == 0 {
		return e.fail(StepResult{}, ReasonZeroChoice, p, nil)
	}
	res := StepResult{Point: p, Candidates: len(cands)}

	chosen, err := e.judge.Select(cands)
	if err != nil {
		return e.fail(res, ReasonJudge, p, err)
	}
	if !slices.Contains(cands, chosen) {
		return e.fail(res, ReasonJudge, p, fmt.Errorf("selected %s is not a candidate", chosen))
	}
	if err := e.grid.Place(p, chosen); err != nil {
		return e.fail(res, ReasonJudge, p, err)
	}
	e.steps++
	res.Placed = chosen

	if c, found := e.grid.Propagate(p); found {
		res.Contradiction = &c
		if e.firstContradiction == nil {
			first := c
			e.firstContradiction = &first
		}
		if earlyStopping {
			return e.fail(res, ReasonZeroEntropy, c, nil)
		}
	}

	if e.grid.IsCollapsed() {
		e.state = StateCollapsed
	}
	res.Success = true
	res.Outcome = OutcomeSuccess
	return res
}

// fail records a terminal failure and completes res accordingly.
func (e *Engine) fail(res StepResult, reason Reason, at grid.Point, cause error) StepResult {
	e.state = StateFailed
	e.failure = &Failure{Reason: reason, Point: at, Cause: cause}
	res.Success = false
	res.Outcome = OutcomeFailed
	res.Reason = reason
	res.Point = at
	return res
}

// firstEmptyCell returns the first unplaced cell in scan order.
func (e *Engine) firstEmptyCell() grid.Point {
	for i := 0; i < e.grid.Width()*e.grid.Height(); i++ {
		p := e.grid.Coordinate(i)
		if e.grid.OccupantAt(p) == nil {
			return p
		}
	}
	return grid.Point{}
}

// Run initializes the grid and steps until it is collapsed (true) or a
// step fails (false). It never retries and never undoes a placement.
// Every step places one cell, so Run performs at most Width×Height+1 steps.
func (e *Engine) Run() bool {
	start := time.Now()
	e.Initialize()

	for !e.grid.IsCollapsed() {
		res := e.Step(e.cfg.earlyStopping)
		if res.Outcome != OutcomeSuccess {
			break
		}
	}

	ok := e.grid.IsCollapsed() && e.failure == nil
	if ok {
		e.state = StateCollapsed
	}
	sum := RunSummary{
		Collapsed: ok,
		Steps:     e.steps,
		Duration:  time.Since(start),
		Failure:   e.failure,
	}

	log := e.cfg.logger.With(
		slog.Int("width", e.grid.Width()),
		slog.Int("height", e.grid.Height()),
		slog.Int("steps", sum.Steps),
		slog.Duration("duration", sum.Duration))
	if ok {
		log.Info("generation collapsed")
	} else if e.failure != nil {
		log.Warn("generation failed",
			slog.String("reason", e.failure.Reason.String()),
			slog.String("point", e.failure.Point.String()))
	}
	for _, o := range e.cfg.observers {
		o.RunDone(sum)
	}
	return ok
}
