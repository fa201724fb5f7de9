// Simulation advances the world through eras and centuries.
package engine

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/talgya/splitting-world/internal/world"
)

// ErrRunawaySimulation is returned when an era outlasts MaxCentury.
var ErrRunawaySimulation = errors.New("too many centuries passed, try changing some settings and trying again")

// Config holds the tuning knobs of a run.
type Config struct {
	MaxEra                        int // Last era simulated (inclusive)
	MaxCentury                    int // Centuries allowed per era before giving up
	PopulationRequirementIncrease int // Added to the world requirement every century
	EraCooldown                   int // Centuries before the population gate is checked
}

// DefaultConfig returns the standard nine-era run.
func DefaultConfig() Config {
	return Config{
		MaxEra:                        9,
		MaxCentury:                    50,
		PopulationRequirementIncrease: 1,
		EraCooldown:                   3,
	}
}

// StepKind says what a single Step did.
type StepKind uint8

const (
	StepCentury  StepKind = iota // Every tile took a turn
	StepEra                      // A new era began
	StepFinished                 // MaxEra was passed
)

// Simulation holds the world and the era/century state machine.
type Simulation struct {
	Map    *world.Map
	Config Config

	Era                        int
	Century                    int
	WorldPopulationRequirement int
	EraCooldown                int

	// Counters for reporting.
	Turns        int
	RacesSpawned int

	Rng      *rand.Rand
	Names    world.NameSource
	Reporter world.Reporter

	started bool
}

// NewSimulation creates a simulation over an empty map. rng must be the
// only random source of the run for results to be reproducible.
func NewSimulation(cfg Config, rng *rand.Rand, names world.NameSource, r world.Reporter) *Simulation {
	if r == nil {
		r = world.Discard
	}
	return &Simulation{
		Map:         world.NewMap(),
		Config:      cfg,
		EraCooldown: cfg.EraCooldown,
		Rng:         rng,
		Names:       names,
		Reporter:    r,
	}
}

// Step performs one iteration of the main loop. The first call opens era 1.
// Afterwards the era advances once the cooldown has run out and the world
// population is below the requirement; otherwise a century passes.
func (s *Simulation) Step() (StepKind, error) {
	if !s.started {
		s.started = true
		return s.advanceToNextEra()
	}

	if s.EraCooldown <= 0 && s.Map.Population() < s.WorldPopulationRequirement {
		return s.advanceToNextEra()
	}

	return StepCentury, s.advanceToNextCentury()
}

func (s *Simulation) advanceToNextCentury() error {
	s.Century++
	if s.Century > s.Config.MaxCentury {
		return fmt.Errorf("era %d century %d: %w", s.Era, s.Century, ErrRunawaySimulation)
	}

	s.Reporter.Write(1, fmt.Sprintf("CENTURY %2d ----------------------------------------------------------", s.Century))

	s.WorldPopulationRequirement += s.Config.PopulationRequirementIncrease
	s.EraCooldown--

	// Tiles act in a random order; the year label spreads them over the century.
	order := s.Map.Indices()
	s.Rng.Shuffle(len(order), func(i, j int) { order[i], order[j] = order[j], order[i] })

	year := float64((s.Century - 1) * 100)
	for _, idx := range order {
		tc := world.TurnContext{Era: s.Era, Year: int(year), Rng: s.Rng, Reporter: s.Reporter}
		if _, ok := s.Map.Get(idx).TakeTurn(tc); ok {
			s.Turns++
		}
		year += 100 / float64(len(order))
	}

	slog.Debug("century complete",
		"era", s.Era,
		"century", s.Century,
		"population", s.Map.Population(),
		"requirement", s.WorldPopulationRequirement,
		"cooldown", s.EraCooldown,
	)
	return nil
}

func (s *Simulation) advanceToNextEra() (StepKind, error) {
	s.Reporter.Write(0, fmt.Sprintf("END OF ERA %2d ====================================================", s.Era))
	for _, idx := range s.Map.Indices() {
		s.Reporter.Write(1, s.Map.Get(idx).String())
	}

	s.Era++
	s.Reporter.Write(0, fmt.Sprintf("ERA %2d ================================================================", s.Era))

	if s.Era > s.Config.MaxEra {
		return StepFinished, nil
	}

	s.EraCooldown = s.Config.EraCooldown
	s.Century = 0

	if err := s.Map.AddNewLand(s.Era, s.Rng, s.Names, s.Reporter); err != nil {
		return StepEra, fmt.Errorf("era %d: %w", s.Era, err)
	}
	s.RacesSpawned++

	if err := s.Map.ApplyEraScript(s.Era, s.Reporter); err != nil {
		return StepEra, err
	}

	slog.Info("era began",
		"era", s.Era,
		"tiles", s.Map.TileCount(),
		"inhabited", s.Map.InhabitedCount(),
		"population", s.Map.Population(),
	)
	return StepEra, nil
}
