// Package world provides the tile graph: tiles and their habitation
// lifecycle, the map that owns them, and the scripted era topology.
package world

import (
	"fmt"
	"math/rand"

	"github.com/talgya/splitting-world/internal/ideology"
)

// Tile limits and per-turn odds (percent).
const (
	MaxPopulation = 99
	MaxProgress   = 99

	ChanceOfRandomDecline  = 10
	ChanceOfRandomRuin     = 10
	ChanceOfRandomRecovery = 10
)

// Ruin is the archived remnant of a collapsed civilization.
type Ruin struct {
	Ideology *ideology.Ideology
	Progress int
}

// Tile is a single region of the world. It hosts at most one race.
type Tile struct {
	Index int    // <era><slot>, unique for the whole run
	Name  string // Set once by MaterializeName

	RaceName  string
	Ideology  *ideology.Ideology // nil while uninhabited
	Neighbors []*Tile
	Ruins     []Ruin

	Frozen    bool // Excluded from topology edits, still takes turns
	Declining bool

	population       int
	progress         int
	recordPopulation int
	recordProgress   int
}

// NewTile creates an empty, unnamed tile.
func NewTile(index int) *Tile {
	return &Tile{Index: index}
}

// MaterializeName assigns the display name. Later calls are no-ops.
func (t *Tile) MaterializeName(name string) {
	if t.Name != "" {
		return
	}
	t.Name = fmt.Sprintf("%s (%d)", name, t.Index)
}

// DisplayName returns the tile name, falling back to the bare index.
func (t *Tile) DisplayName() string {
	if t.Name == "" {
		return fmt.Sprintf("(%d)", t.Index)
	}
	return t.Name
}

// Population returns the current population.
func (t *Tile) Population() int { return t.population }

// Progress returns the current progress.
func (t *Tile) Progress() int { return t.progress }

// RecordPopulation returns the highest population since the tile was last settled.
func (t *Tile) RecordPopulation() int { return t.recordPopulation }

// RecordProgress returns the highest progress since the tile was last settled.
func (t *Tile) RecordProgress() int { return t.recordProgress }

// SetPopulation stores p clamped to [0, MaxPopulation] and raises the record.
func (t *Tile) SetPopulation(p int) {
	t.population = clamp(p, 0, MaxPopulation)
	if t.population > t.recordPopulation {
		t.recordPopulation = t.population
	}
}

// SetProgress stores p clamped to [0, MaxProgress] and raises the record.
func (t *Tile) SetProgress(p int) {
	t.progress = clamp(p, 0, MaxProgress)
	if t.progress > t.recordProgress {
		t.recordProgress = t.progress
	}
}

// Inhabited reports whether anyone lives on the tile.
func (t *Tile) Inhabited() bool {
	return t.population > 0
}

// Connect adds other as a neighbor. The caller is responsible for the
// reverse direction.
func (t *Tile) Connect(other *Tile) {
	if t.IsNeighbor(other) {
		return
	}
	t.Neighbors = append(t.Neighbors, other)
}

// Disconnect removes other from the neighbor list, keeping order.
func (t *Tile) Disconnect(other *Tile) {
	for i, n := range t.Neighbors {
		if n == other {
			t.Neighbors = append(t.Neighbors[:i], t.Neighbors[i+1:]...)
			return
		}
	}
}

// IsNeighbor reports whether other is adjacent to t.
func (t *Tile) IsNeighbor(other *Tile) bool {
	for _, n := range t.Neighbors {
		if n == other {
			return true
		}
	}
	return false
}

// Freeze permanently excludes the tile from topology edits.
func (t *Tile) Freeze(r Reporter) {
	if t.Frozen {
		return
	}
	t.Frozen = true
	r.Write(1, fmt.Sprintf("%d froze over.", t.Index))
}

// SpawnNewRace settles a fresh race on the tile.
// The tile must be uninhabited.
func (t *Tile) SpawnNewRace(names NameSource, r Reporter) error {
	race, err := names.TakeName()
	if err != nil {
		return fmt.Errorf("spawn race on %d: %w", t.Index, err)
	}
	t.RaceName = race
	r.Write(1, fmt.Sprintf("The %s race appeared on %s.", race, t.DisplayName()))

	t.Ideology = ideology.New()
	t.SetPopulation(1)
	t.SetProgress(0)
	return nil
}

// PopulatedNeighbors returns neighbors with population > 0.
func (t *Tile) PopulatedNeighbors() []*Tile {
	var out []*Tile
	for _, n := range t.Neighbors {
		if n.population > 0 {
			out = append(out, n)
		}
	}
	return out
}

// TenseNeighbors returns populated neighbors whose ideology is in tension
// with this tile's.
func (t *Tile) TenseNeighbors() []*Tile {
	if t.Ideology == nil {
		return nil
	}
	var out []*Tile
	for _, n := range t.PopulatedNeighbors() {
		if n.Ideology != nil && ideology.Tension(t.Ideology, n.Ideology) {
			out = append(out, n)
		}
	}
	return out
}

// UnpopulatedNeighbors returns neighbors with population 0.
func (t *Tile) UnpopulatedNeighbors() []*Tile {
	var out []*Tile
	for _, n := range t.Neighbors {
		if n.population == 0 {
			out = append(out, n)
		}
	}
	return out
}

// String renders the fixed-width summary row used in reports.
func (t *Tile) String() string {
	ideo := "           "
	if t.Ideology != nil {
		ideo = t.Ideology.String()
	}
	return fmt.Sprintf("|%16s|%2d/%2d|%2d/%2d|%s|%2d",
		t.DisplayName(),
		t.population, t.recordPopulation,
		t.progress, t.recordProgress,
		ideo,
		len(t.Ruins),
	)
}

// fallToRuin archives the civilization and empties the tile.
func (t *Tile) fallToRuin() {
	archived := ideology.New()
	if t.Ideology != nil {
		archived = t.Ideology.Clone()
	}
	t.Ruins = append(t.Ruins, Ruin{Ideology: archived, Progress: t.progress})

	t.Declining = false
	t.Ideology = nil
	t.population = 0
	t.recordPopulation = 0
	t.progress = 0
	t.recordProgress = 0
	t.RaceName = ""
}

func pick(rng *rand.Rand, tiles []*Tile) *Tile {
	return tiles[rng.Intn(len(tiles))]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
