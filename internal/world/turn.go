package world

import (
	"fmt"
	"math/rand"

	"github.com/talgya/splitting-world/internal/ideology"
)

// OptionKind enumerates the actions a tile can take in a turn.
type OptionKind uint8

const (
	OptRecover          OptionKind = iota // Leave decline
	OptFallToRuin                         // Collapse, archiving the civilization
	OptPopulationLoss                     // Decline eats population
	OptProgressLoss                       // Decline eats progress
	OptDecline                            // Start declining
	OptPopulationGrowth                   // +1 population
	OptProgressGrowth                     // +1 progress
	OptCulturalShift                      // Random ideological drift
	OptCulturalExchange                   // Mutual influence with a populated neighbor
	OptRaid                               // Take from a tense neighbor
	OptSpread                             // Settle an empty neighbor
	OptRuinCulture                        // Learn from a local ruin
)

var optionTitles = [...]string{
	OptRecover:          "RECOVER FROM DECLINE",
	OptFallToRuin:       "FALL TO RUIN",
	OptPopulationLoss:   "POPULATION LOSS",
	OptProgressLoss:     "PROGRESS LOSS",
	OptDecline:          "DECLINE",
	OptPopulationGrowth: "POPULATION GROWTH",
	OptProgressGrowth:   "PROGRESS GROWTH",
	OptCulturalShift:    "CULTURAL SHIFT",
	OptCulturalExchange: "CULTURAL EXCHANGE",
	OptRaid:             "RAID",
	OptSpread:           "SPREAD",
	OptRuinCulture:      "GAIN CULTURE FROM RUINS",
}

// String returns the report title for the kind.
func (k OptionKind) String() string {
	if int(k) < len(optionTitles) {
		return optionTitles[k]
	}
	return fmt.Sprintf("OptionKind(%d)", k)
}

// TurnOption is one staged candidate action.
type TurnOption struct {
	Kind     OptionKind
	Actor    *Tile
	Target   *Tile    // Neighbor involved in exchange, raid or spread
	Messages []string // Free-text lines reported instead of participants
}

// Participants returns the tiles whose before/after rows are reported.
func (o TurnOption) Participants() []*Tile {
	if len(o.Messages) > 0 {
		return nil
	}
	if o.Target != nil {
		return []*Tile{o.Actor, o.Target}
	}
	return []*Tile{o.Actor}
}

// TurnContext carries everything a tile needs to take its turn.
type TurnContext struct {
	Era      int
	Year     int
	Rng      *rand.Rand
	Reporter Reporter
}

// Options builds the candidate list for this turn. The decline, ruin and
// recovery rolls and neighbor choices are drawn from rng here.
func (t *Tile) Options(rng *rand.Rand) []TurnOption {
	if t.Declining {
		return t.declineOptions(rng)
	}
	if t.population == 0 {
		return nil
	}

	if rng.Intn(100) < ChanceOfRandomDecline {
		return []TurnOption{t.message(OptDecline, "%s began to decline.")}
	}

	opts := []TurnOption{
		{Kind: OptPopulationGrowth, Actor: t},
		{Kind: OptProgressGrowth, Actor: t},
		{Kind: OptCulturalShift, Actor: t},
	}

	if populated := t.PopulatedNeighbors(); len(populated) > 0 {
		opts = append(opts, TurnOption{Kind: OptCulturalExchange, Actor: t, Target: pick(rng, populated)})

		if tense := t.TenseNeighbors(); len(tense) > 0 {
			opts = append(opts, TurnOption{Kind: OptRaid, Actor: t, Target: pick(rng, tense)})
		}
	}

	if empty := t.UnpopulatedNeighbors(); len(empty) > 0 {
		opts = append(opts, TurnOption{Kind: OptSpread, Actor: t, Target: pick(rng, empty)})
	}

	if len(t.Ruins) > 0 {
		opts = append(opts, TurnOption{Kind: OptRuinCulture, Actor: t})
	}

	return opts
}

func (t *Tile) declineOptions(rng *rand.Rand) []TurnOption {
	if rng.Intn(100) < ChanceOfRandomRecovery {
		return []TurnOption{t.message(OptRecover, "%s bounced back from its decline.")}
	}

	if t.population == 0 || rng.Intn(100) < ChanceOfRandomRuin {
		return []TurnOption{t.message(OptFallToRuin, "%s became ruins.")}
	}

	var opts []TurnOption
	if t.population > 0 {
		opts = append(opts, TurnOption{Kind: OptPopulationLoss, Actor: t})
	}
	if t.progress > 0 {
		opts = append(opts, TurnOption{Kind: OptProgressLoss, Actor: t})
	}
	return opts
}

func (t *Tile) message(kind OptionKind, format string) TurnOption {
	return TurnOption{
		Kind:     kind,
		Actor:    t,
		Messages: []string{fmt.Sprintf(format, t.DisplayName())},
	}
}

// Apply runs the option's effect. rng is used by effects that draw at
// execution time (drift and ruin choice).
func Apply(o TurnOption, rng *rand.Rand) {
	a, b := o.Actor, o.Target

	switch o.Kind {
	case OptRecover:
		a.Declining = false
	case OptFallToRuin:
		a.fallToRuin()
	case OptPopulationLoss:
		a.SetPopulation(int(float64(a.population) * 0.8))
	case OptProgressLoss:
		a.SetProgress(int(float64(a.progress) * 0.8))
	case OptDecline:
		a.Declining = true
	case OptPopulationGrowth:
		a.SetPopulation(a.population + 1)
	case OptProgressGrowth:
		a.SetProgress(a.progress + 1)
	case OptCulturalShift:
		a.Ideology.Shift(rng)
	case OptCulturalExchange:
		// Sequential, not simultaneous: b reads a's influence on itself.
		ideology.Influence(a.Ideology, b.Ideology)
		ideology.Influence(b.Ideology, a.Ideology)
	case OptRaid:
		b.SetProgress(b.progress - 1)
		a.SetProgress(a.progress + 1)
		b.SetPopulation(b.population - 1)
		a.SetPopulation(a.population + 1)
	case OptSpread:
		b.RaceName = a.RaceName
		b.Ideology = a.Ideology
		b.SetProgress(a.progress)
		b.SetPopulation(1)
	case OptRuinCulture:
		ruin := a.Ruins[rng.Intn(len(a.Ruins))]
		ideology.Influence(ruin.Ideology, a.Ideology)
	}
}

// TakeTurn picks one candidate option uniformly at random and executes it.
// A tile with no candidates does nothing. It returns the executed option.
func (t *Tile) TakeTurn(tc TurnContext) (TurnOption, bool) {
	opts := t.Options(tc.Rng)
	if len(opts) == 0 {
		return TurnOption{}, false
	}
	o := opts[tc.Rng.Intn(len(opts))]
	execute(tc, o)
	return o, true
}

func execute(tc TurnContext, o TurnOption) {
	r := tc.Reporter
	r.Write(2, fmt.Sprintf("%d—%d: %s", tc.Era, tc.Year, o.Kind))

	participants := o.Participants()
	for _, p := range participants {
		r.Write(3, p.String())
	}

	Apply(o, tc.Rng)

	if len(participants) > 0 {
		r.Write(3, "                    ↓     ↓        ↓       ↓")
		for _, p := range participants {
			r.Write(3, p.String())
		}
	}

	for _, m := range o.Messages {
		r.Write(3, m)
	}
}
