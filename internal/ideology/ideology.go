// Package ideology models a civilization's cultural stance as a fixed set of
// bounded leanings that drift at random and pull toward one another.
package ideology

import (
	"fmt"
	"math/rand"
	"strings"
)

// MaxLeaning bounds every leaning to [-MaxLeaning, MaxLeaning].
const MaxLeaning = 9

// TensionThreshold is the distance above which two ideologies are in tension.
const TensionThreshold = 5

// Axis describes one ideological dimension and its two poles.
type Axis struct {
	Name     string
	ExtremeA string // Negative pole
	ExtremeB string // Positive pole
}

// Axes is the ordered axis table shared by every Ideology.
// Comparisons are positional, so the order must never change at runtime.
var Axes = [...]Axis{
	{Name: "economic", ExtremeA: "equality", ExtremeB: "markets"},
	{Name: "diplomatic", ExtremeA: "nation", ExtremeB: "globe"},
	{Name: "civil", ExtremeA: "liberty", ExtremeB: "authority"},
	{Name: "society", ExtremeA: "tradition", ExtremeB: "progress"},
}

// AxisCount is the number of values held by each Ideology.
const AxisCount = len(Axes)

// Value is a single leaning along one axis.
type Value struct {
	Axis
	leaning int
}

// Leaning returns the current leaning.
func (v *Value) Leaning() int {
	return v.leaning
}

// SetLeaning stores l clamped to [-MaxLeaning, MaxLeaning].
func (v *Value) SetLeaning(l int) {
	v.leaning = clamp(l, -MaxLeaning, MaxLeaning)
}

// Pole returns the name of the pole the value leans toward, or "" when neutral.
func (v *Value) Pole() string {
	switch {
	case v.leaning < 0:
		return v.ExtremeA
	case v.leaning > 0:
		return v.ExtremeB
	}
	return ""
}

// Ideology is an ordered vector of values, one per axis.
type Ideology struct {
	Values [AxisCount]Value
}

// New creates a neutral ideology with every leaning at 0.
func New() *Ideology {
	id := &Ideology{}
	for i, axis := range Axes {
		id.Values[i] = Value{Axis: axis}
	}
	return id
}

// Clone returns an independent copy.
func (id *Ideology) Clone() *Ideology {
	c := *id
	return &c
}

// Leanings returns the raw leanings in axis order.
func (id *Ideology) Leanings() [AxisCount]int {
	var out [AxisCount]int
	for i := range id.Values {
		out[i] = id.Values[i].leaning
	}
	return out
}

// Compare returns the sum of absolute per-axis differences between a and b.
func Compare(a, b *Ideology) int {
	diff := 0
	for i := range a.Values {
		diff += abs(a.Values[i].leaning - b.Values[i].leaning)
	}
	return diff
}

// Tension reports whether a and b are further apart than TensionThreshold.
func Tension(a, b *Ideology) bool {
	return Compare(a, b) > TensionThreshold
}

// Influence moves each of target's leanings one step toward source.
// Only target is mutated.
func Influence(source, target *Ideology) {
	for i := range target.Values {
		step := clamp(source.Values[i].leaning-target.Values[i].leaning, -1, 1)
		target.Values[i].SetLeaning(target.Values[i].leaning + step)
	}
}

// Shift adds -1, 0 or +1 to every leaning independently.
func (id *Ideology) Shift(rng *rand.Rand) {
	for i := range id.Values {
		id.Values[i].SetLeaning(id.Values[i].leaning + rng.Intn(3) - 1)
	}
}

// String renders the leanings as right-aligned two-character fields.
func (id *Ideology) String() string {
	parts := make([]string, len(id.Values))
	for i := range id.Values {
		parts[i] = fmt.Sprintf("%2d", id.Values[i].leaning)
	}
	return strings.Join(parts, " ")
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

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
