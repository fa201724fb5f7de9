package world

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strconv"
)

// SlotsPerEra is the number of tiles added at the start of every era.
const SlotsPerEra = 6

// ErrUnknownTile is returned when an edit names a tile that does not exist.
var ErrUnknownTile = errors.New("unknown tile")

// Map owns every tile and keeps adjacency symmetric.
type Map struct {
	Tiles map[int]*Tile
}

// NewMap creates an empty map.
func NewMap() *Map {
	return &Map{Tiles: make(map[int]*Tile)}
}

// TileIndex joins an era and slot as decimal digits: era 3, slot 2 → 32.
func TileIndex(era, slot int) int {
	idx, _ := strconv.Atoi(strconv.Itoa(era) + strconv.Itoa(slot))
	return idx
}

// Get returns the tile at index, or nil.
func (m *Map) Get(index int) *Tile {
	return m.Tiles[index]
}

// Indices returns all tile indices in ascending order.
func (m *Map) Indices() []int {
	out := make([]int, 0, len(m.Tiles))
	for idx := range m.Tiles {
		out = append(out, idx)
	}
	sort.Ints(out)
	return out
}

// TileCount returns the number of tiles.
func (m *Map) TileCount() int {
	return len(m.Tiles)
}

// Population returns the total population across all tiles.
func (m *Map) Population() int {
	total := 0
	for _, t := range m.Tiles {
		total += t.population
	}
	return total
}

// InhabitedCount returns how many tiles have population > 0.
func (m *Map) InhabitedCount() int {
	n := 0
	for _, t := range m.Tiles {
		if t.population > 0 {
			n++
		}
	}
	return n
}

// Adjacent reports whether tiles a and b are connected.
func (m *Map) Adjacent(a, b int) bool {
	ta, tb := m.Tiles[a], m.Tiles[b]
	return ta != nil && tb != nil && ta.IsNeighbor(tb)
}

// Edges returns every connection once as (low, high), sorted.
func (m *Map) Edges() []Edge {
	var out []Edge
	for _, idx := range m.Indices() {
		for _, n := range m.Tiles[idx].Neighbors {
			if idx < n.Index {
				out = append(out, Edge{idx, n.Index})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// Connect links a and b in both directions.
func (m *Map) Connect(a, b int) error {
	ta, tb, err := m.editable(a, b)
	if err != nil || ta == nil {
		return err
	}
	ta.Connect(tb)
	tb.Connect(ta)
	return nil
}

// Disconnect severs a and b in both directions.
func (m *Map) Disconnect(a, b int) error {
	ta, tb, err := m.editable(a, b)
	if err != nil || ta == nil {
		return err
	}
	ta.Disconnect(tb)
	tb.Disconnect(ta)
	return nil
}

// editable resolves both tiles. A nil tile with a nil error means the edit
// touches a frozen tile and must be skipped.
func (m *Map) editable(a, b int) (*Tile, *Tile, error) {
	ta, tb := m.Tiles[a], m.Tiles[b]
	if ta == nil {
		return nil, nil, fmt.Errorf("edge %d-%d: tile %d: %w", a, b, a, ErrUnknownTile)
	}
	if tb == nil {
		return nil, nil, fmt.Errorf("edge %d-%d: tile %d: %w", a, b, b, ErrUnknownTile)
	}
	if ta.Frozen || tb.Frozen {
		slog.Debug("skipping edit on frozen tile", "a", a, "b", b)
		return nil, nil, nil
	}
	return ta, tb, nil
}

// Freeze marks the given tiles frozen.
func (m *Map) Freeze(r Reporter, indices ...int) error {
	for _, idx := range indices {
		t := m.Tiles[idx]
		if t == nil {
			return fmt.Errorf("freeze %d: %w", idx, ErrUnknownTile)
		}
		t.Freeze(r)
	}
	return nil
}

// AddRing creates the six tiles of an era and connects them in a cycle.
func (m *Map) AddRing(era int) ([]*Tile, error) {
	ring := make([]*Tile, SlotsPerEra)
	for slot := 1; slot <= SlotsPerEra; slot++ {
		idx := TileIndex(era, slot)
		if _, exists := m.Tiles[idx]; exists {
			return nil, fmt.Errorf("add ring for era %d: tile %d already exists", era, idx)
		}
		t := NewTile(idx)
		m.Tiles[idx] = t
		ring[slot-1] = t
	}

	for slot := 1; slot <= SlotsPerEra; slot++ {
		next := slot%SlotsPerEra + 1
		if err := m.Connect(TileIndex(era, slot), TileIndex(era, next)); err != nil {
			return nil, err
		}
	}
	return ring, nil
}

// AddNewLand adds an era's ring, names each tile and spawns one race on a
// random tile of the ring.
func (m *Map) AddNewLand(era int, rng *rand.Rand, names NameSource, r Reporter) error {
	ring, err := m.AddRing(era)
	if err != nil {
		return err
	}

	for _, t := range ring {
		name, err := names.TakeName()
		if err != nil {
			return fmt.Errorf("name tile %d: %w", t.Index, err)
		}
		t.MaterializeName(name)
	}

	return ring[rng.Intn(SlotsPerEra)].SpawnNewRace(names, r)
}

// ApplyEraScript performs the scripted topology edits for era.
func (m *Map) ApplyEraScript(era int, r Reporter) error {
	script, ok := EraScripts[era]
	if !ok {
		return fmt.Errorf("era %d: %w", era, ErrEraOutOfRange)
	}

	for _, e := range script.Disconnect {
		if err := m.Disconnect(e[0], e[1]); err != nil {
			return fmt.Errorf("era %d script: %w", era, err)
		}
	}
	for _, e := range script.Connect {
		if err := m.Connect(e[0], e[1]); err != nil {
			return fmt.Errorf("era %d script: %w", era, err)
		}
	}
	if err := m.Freeze(r, script.Freeze...); err != nil {
		return fmt.Errorf("era %d script: %w", era, err)
	}
	return nil
}

// BuildTopology returns the bare graph (no names, no races) as it stands
// after era upTo's script has run.
func BuildTopology(upTo int) (*Map, error) {
	m := NewMap()
	for era := 1; era <= upTo; era++ {
		if _, err := m.AddRing(era); err != nil {
			return nil, err
		}
		if err := m.ApplyEraScript(era, Discard); err != nil {
			return nil, err
		}
	}
	return m, nil
}
