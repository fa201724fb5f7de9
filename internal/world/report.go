package world

// Reporter receives the narrative of the simulation as indented lines.
type Reporter interface {
	Write(indent int, text string)
}

// NameSource mints unique names. Implementations return an error once their
// inventory is exhausted rather than reusing a name.
type NameSource interface {
	TakeName() (string, error)
}

// Discard is a Reporter that drops every line.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Write(int, string) {}
