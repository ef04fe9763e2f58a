package tilegen

import (
	"strconv"

	"github.com/katalvlaran/gridkit/tile"
)

// Symbol is a variant decoded through a vocabulary loaded at run time,
// where no generated type exists. Digit is -1 for plain variants.
type Symbol struct {
	Name  string
	Digit int
}

func (s Symbol) String() string {
	if s.Digit < 0 {
		return s.Name
	}
	return s.Name + "(" + strconv.Itoa(s.Digit) + ")"
}

// Registry builds the run-time equivalent of the generated vocabulary.
func (v *Vocab) Registry() (*tile.Vocabulary[Symbol], error) {
	entries := make([]tile.Entry[Symbol], 0, len(v.Variants))
	for _, vr := range v.Variants {
		entries = append(entries, tile.Entry[Symbol]{
			Variant: Symbol{Name: vr.Name, Digit: -1},
			Char:    vr.Rune(),
			Name:    vr.Name,
		})
	}
	var opts []tile.Option[Symbol]
	if v.Digit != "" {
		name := v.Digit
		opts = append(opts, tile.WithDigits(name,
			func(n int) Symbol { return Symbol{Name: name, Digit: n} },
			func(s Symbol) (int, bool) { return s.Digit, s.Name == name && s.Digit >= 0 },
		))
	}
	return tile.New(v.Package+"."+v.Type, entries, opts...)
}
