package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTileIndex(t *testing.T) {
	assert.Equal(t, 11, TileIndex(1, 1))
	assert.Equal(t, 96, TileIndex(9, 6))
	assert.Equal(t, 101, TileIndex(10, 1))
}

func TestAddRingFormsCycle(t *testing.T) {
	m := NewMap()
	ring, err := m.AddRing(1)
	require.NoError(t, err)
	require.Len(t, ring, SlotsPerEra)

	for _, tile := range ring {
		assert.Len(t, tile.Neighbors, 2, "tile %d", tile.Index)
	}

	// Walk the cycle: six steps from 11 must visit every tile and come back.
	visited := map[int]bool{}
	prev, cur := (*Tile)(nil), m.Get(11)
	for i := 0; i < SlotsPerEra; i++ {
		visited[cur.Index] = true
		next := cur.Neighbors[0]
		if next == prev {
			next = cur.Neighbors[1]
		}
		prev, cur = cur, next
	}
	assert.Len(t, visited, SlotsPerEra)
	assert.Equal(t, 11, cur.Index)
}

func TestAddRingTwiceFails(t *testing.T) {
	m := NewMap()
	_, err := m.AddRing(2)
	require.NoError(t, err)
	_, err = m.AddRing(2)
	assert.Error(t, err)
}

func TestAddNewLand(t *testing.T) {
	r := &recorder{}
	m := NewMap()
	names := &fixedNames{names: []string{"A", "B", "C", "D", "E", "F", "Race"}}

	require.NoError(t, m.AddNewLand(1, rand.New(rand.NewSource(1)), names, r))

	assert.Equal(t, 6, m.TileCount())
	assert.Equal(t, 1, m.InhabitedCount())
	assert.Equal(t, 1, m.Population())
	assert.Equal(t, "A (11)", m.Get(11).Name)
	assert.Equal(t, "F (16)", m.Get(16).Name)
	assert.True(t, r.contains("The Race race appeared on"))
}

func TestAddNewLandNamesExhausted(t *testing.T) {
	m := NewMap()
	err := m.AddNewLand(1, rand.New(rand.NewSource(1)), &fixedNames{names: []string{"A"}}, Discard)
	assert.Error(t, err)
}

func TestEraThreeScript(t *testing.T) {
	m, err := BuildTopology(3)
	require.NoError(t, err)

	assert.False(t, m.Adjacent(21, 22))
	assert.False(t, m.Adjacent(22, 21))
	assert.True(t, m.Adjacent(22, 32))
	assert.True(t, m.Adjacent(32, 22))

	want := []Edge{
		{11, 12}, {11, 22}, {12, 13}, {12, 22}, {13, 22}, {14, 24},
		{15, 16}, {15, 26}, {15, 36}, {16, 26}, {21, 26}, {21, 31},
		{22, 32}, {23, 33}, {24, 25}, {24, 34}, {24, 35}, {25, 35},
		{26, 31}, {26, 36}, {31, 32}, {31, 36}, {32, 33}, {33, 34},
		{34, 35}, {35, 36},
	}
	assert.Equal(t, want, m.Edges())
}

func TestEraThreeScriptOrderIndependent(t *testing.T) {
	want, err := BuildTopology(3)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(17))
	for trial := 0; trial < 20; trial++ {
		m, err := BuildTopology(2)
		require.NoError(t, err)
		_, err = m.AddRing(3)
		require.NoError(t, err)

		script := EraScripts[3]
		disconnect := append([]Edge(nil), script.Disconnect...)
		connect := append([]Edge(nil), script.Connect...)
		rng.Shuffle(len(disconnect), func(i, j int) { disconnect[i], disconnect[j] = disconnect[j], disconnect[i] })
		rng.Shuffle(len(connect), func(i, j int) { connect[i], connect[j] = connect[j], connect[i] })

		for _, e := range disconnect {
			require.NoError(t, m.Disconnect(e[1], e[0]))
		}
		for _, e := range connect {
			require.NoError(t, m.Connect(e[1], e[0]))
		}
		assert.Equal(t, want.Edges(), m.Edges())
	}
}

func TestFullTopologyIsSymmetric(t *testing.T) {
	m, err := BuildTopology(MaxScriptedEra)
	require.NoError(t, err)
	assert.Equal(t, 54, m.TileCount())

	frozen := 0
	for _, idx := range m.Indices() {
		tile := m.Get(idx)
		if tile.Frozen {
			frozen++
		}
		for _, n := range tile.Neighbors {
			assert.True(t, n.IsNeighbor(tile), "%d-%d not symmetric", idx, n.Index)
			assert.NotSame(t, tile, n)
		}
	}
	assert.Equal(t, 23, frozen)
}

func TestEraScriptFreezes(t *testing.T) {
	r := &recorder{}
	m, err := BuildTopology(5)
	require.NoError(t, err)
	_, err = m.AddRing(6)
	require.NoError(t, err)

	require.NoError(t, m.ApplyEraScript(6, r))
	assert.Equal(t, []string{"11 froze over.", "12 froze over.", "13 froze over.", "14 froze over."}, r.texts())
	assert.True(t, m.Adjacent(15, 51))
	assert.True(t, m.Adjacent(36, 51))
	assert.False(t, m.Adjacent(51, 52))
}

func TestEraOutOfRange(t *testing.T) {
	m := NewMap()
	for _, era := range []int{0, -1, 10} {
		err := m.ApplyEraScript(era, Discard)
		assert.ErrorIs(t, err, ErrEraOutOfRange, "era %d", era)
	}
	assert.NoError(t, m.ApplyEraScript(1, Discard))
}

func TestFrozenTilesIgnoreEdits(t *testing.T) {
	m, err := BuildTopology(1)
	require.NoError(t, err)
	require.NoError(t, m.Freeze(Discard, 11))

	require.NoError(t, m.Disconnect(11, 12))
	require.NoError(t, m.Connect(11, 14))
	assert.True(t, m.Adjacent(11, 12))
	assert.False(t, m.Adjacent(11, 14))
}

func TestUnknownTile(t *testing.T) {
	m, err := BuildTopology(1)
	require.NoError(t, err)
	assert.ErrorIs(t, m.Connect(11, 99), ErrUnknownTile)
	assert.ErrorIs(t, m.Disconnect(99, 11), ErrUnknownTile)
	assert.ErrorIs(t, m.Freeze(Discard, 42), ErrUnknownTile)
}

func TestScriptReferencesExistingTiles(t *testing.T) {
	for era := 2; era <= MaxScriptedEra; era++ {
		script := EraScripts[era]
		for _, e := range append(append([]Edge(nil), script.Disconnect...), script.Connect...) {
			for _, idx := range e {
				assert.LessOrEqual(t, idx/10, era, "era %d references future tile %d", era, idx)
			}
		}
		for _, idx := range script.Freeze {
			assert.Less(t, idx/10, era)
		}
	}
}
