package world

import (
	"errors"
	"strings"

	"github.com/talgya/splitting-world/internal/ideology"
)

type line struct {
	indent int
	text   string
}

type recorder struct {
	lines []line
}

func (r *recorder) Write(indent int, text string) {
	r.lines = append(r.lines, line{indent, text})
}

func (r *recorder) texts() []string {
	out := make([]string, len(r.lines))
	for i, l := range r.lines {
		out[i] = l.text
	}
	return out
}

func (r *recorder) contains(sub string) bool {
	for _, l := range r.lines {
		if strings.Contains(l.text, sub) {
			return true
		}
	}
	return false
}

// fixedNames hands out names in order.
type fixedNames struct {
	names []string
}

func (f *fixedNames) TakeName() (string, error) {
	if len(f.names) == 0 {
		return "", errors.New("exhausted")
	}
	n := f.names[0]
	f.names = f.names[1:]
	return n, nil
}

func settled(index, pop, prog int, leanings ...int) *Tile {
	t := NewTile(index)
	t.MaterializeName("T")
	t.Ideology = ideology.New()
	for i, l := range leanings {
		t.Ideology.Values[i].SetLeaning(l)
	}
	t.SetPopulation(pop)
	t.SetProgress(prog)
	return t
}

func link(a, b *Tile) {
	a.Connect(b)
	b.Connect(a)
}

func kinds(opts []TurnOption) []OptionKind {
	out := make([]OptionKind, len(opts))
	for i, o := range opts {
		out[i] = o.Kind
	}
	return out
}
