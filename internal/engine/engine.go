// Package engine drives the simulation loop: the era/century state machine
// and a cancellable step runner around it.
package engine

import (
	"context"
	"log/slog"
	"time"
)

// Reason explains why a run ended.
type Reason uint8

const (
	ReasonEraLimitReached Reason = iota // Passed MaxEra
	ReasonCancelled                     // Context cancelled
	ReasonError                         // Configuration or internal error
)

var reasonNames = [...]string{"era limit reached", "cancelled", "error"}

func (r Reason) String() string {
	if int(r) < len(reasonNames) {
		return reasonNames[r]
	}
	return "unknown"
}

// Outcome summarizes a finished run.
type Outcome struct {
	Reason   Reason
	Err      error
	Era      int
	Century  int
	Steps    int
	Turns    int
	Races    int
	Duration time.Duration
}

// Engine steps a Simulation until it finishes, fails or is cancelled.
type Engine struct {
	Sim      *Simulation
	Interval time.Duration // Pause between steps; 0 runs flat out

	// Optional hooks, called after the matching step.
	OnCentury func(s *Simulation)
	OnEra     func(s *Simulation)
}

// NewEngine creates an engine for sim with no pacing.
func NewEngine(sim *Simulation) *Engine {
	return &Engine{Sim: sim}
}

// Run blocks until the simulation ends and reports why.
func (e *Engine) Run(ctx context.Context) Outcome {
	start := time.Now()
	steps := 0
	slog.Info("simulation engine started", "max_era", e.Sim.Config.MaxEra, "interval", e.Interval)

	finish := func(reason Reason, err error) Outcome {
		o := Outcome{
			Reason:   reason,
			Err:      err,
			Era:      e.Sim.Era,
			Century:  e.Sim.Century,
			Steps:    steps,
			Turns:    e.Sim.Turns,
			Races:    e.Sim.RacesSpawned,
			Duration: time.Since(start),
		}
		slog.Info("simulation engine stopped", "reason", reason.String(), "era", o.Era, "steps", steps)
		return o
	}

	for {
		if err := ctx.Err(); err != nil {
			return finish(ReasonCancelled, err)
		}

		kind, err := e.Sim.Step()
		steps++
		if err != nil {
			return finish(ReasonError, err)
		}

		switch kind {
		case StepFinished:
			return finish(ReasonEraLimitReached, nil)
		case StepEra:
			if e.OnEra != nil {
				e.OnEra(e.Sim)
			}
		case StepCentury:
			if e.OnCentury != nil {
				e.OnCentury(e.Sim)
			}
		}

		if e.Interval > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(e.Interval):
			}
		}
	}
}

// Failed reports whether the run stopped on an error.
func (o Outcome) Failed() bool {
	return o.Reason == ReasonError
}
