// Package names hands out unique names for races and tiles.
package names

import (
	"errors"
	"math/rand"
)

// ErrExhausted is returned when the pool has no names left.
var ErrExhausted = errors.New("not enough names")

// Default is the built-in inventory: Greek letters, the NATO alphabet,
// zodiac signs and the major arcana.
var Default = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Theta", "Iota", "Kappa",
	"Lambda", "Nu", "Omicron", "Pi", "Rho", "Sigma", "Tau", "Omega",
	"Bravo", "Charlie", "Echo", "Foxtrot", "Golf", "Hotel", "India", "Juliet",
	"Kilo", "Lima", "Mike", "November", "Oscar", "Papa", "Quebec", "Romeo",
	"Sierra", "Tango", "Uniform", "Victor", "Whiskey", "X-ray", "Yankee", "Zulu",
	"Ram", "Bull", "Twins", "Crab", "Lion", "Maiden", "Scales", "Scorpion",
	"Centaur", "Goat", "Fish",
	"Fool", "Magician", "Priestess", "Empress", "Hierophant", "Lovers", "Chariot",
	"Strength", "Hermit", "Wheel", "Justice", "Hanged", "Death", "Temperance",
	"Devil", "Tower", "Star", "Moon", "Sun", "Judgement",
}

// Pool draws names at random without replacement.
type Pool struct {
	rng       *rand.Rand
	remaining []string
}

// NewPool creates a pool over a copy of inventory. Draws use rng, which is
// normally the simulation's shared source.
func NewPool(rng *rand.Rand, inventory []string) *Pool {
	remaining := make([]string, len(inventory))
	copy(remaining, inventory)
	return &Pool{rng: rng, remaining: remaining}
}

// TakeName removes and returns a random name.
func (p *Pool) TakeName() (string, error) {
	if len(p.remaining) == 0 {
		return "", ErrExhausted
	}
	i := p.rng.Intn(len(p.remaining))
	name := p.remaining[i]
	p.remaining = append(p.remaining[:i], p.remaining[i+1:]...)
	return name, nil
}

// Remaining returns how many names are left.
func (p *Pool) Remaining() int {
	return len(p.remaining)
}
