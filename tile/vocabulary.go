package tile

import (
	"fmt"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"fortio.org/safecast"

	"github.com/katalvlaran/gridkit/grid"
)

// Entry declares one variant and the character that spells it.
type Entry[T comparable] struct {
	Variant T
	Char    rune
	Name    string
}

// Option adds optional behavior to a Vocabulary under construction.
type Option[T comparable] func(*Vocabulary[T]) error

type digitVariant[T comparable] struct {
	name  string
	make  func(n int) T
	digit func(v T) (int, bool)
}

// WithDigits adds the variant that accepts any of '0'..'9'. make builds the
// value for a digit; digit recovers the payload and reports whether v is
// that variant.
func WithDigits[T comparable](name string, make func(n int) T, digit func(v T) (int, bool)) Option[T] {
	return func(v *Vocabulary[T]) error {
		for _, e := range v.entries {
			if e.Char >= '0' && e.Char <= '9' {
				return fmt.Errorf("%w: %q is both %s and a %s digit", ErrDuplicateChar, e.Char, e.Name, name)
			}
		}
		v.digits = &digitVariant[T]{name: name, make: make, digit: digit}
		return nil
	}
}

// Vocabulary is an immutable character↔variant table.
// It is safe for concurrent use once built.
type Vocabulary[T comparable] struct {
	name      string
	site      string
	entries   []Entry[T]
	byChar    map[rune]T
	byVariant map[T]rune
	digits    *digitVariant[T]
}

// New builds a vocabulary named name from entries, in declaration order.
// The caller's file:line is recorded as the defining site for diagnostics.
func New[T comparable](name string, entries []Entry[T], opts ...Option[T]) (*Vocabulary[T], error) {
	return build(2, name, entries, opts)
}

// MustNew is New for package-level tables; it panics on a malformed table.
func MustNew[T comparable](name string, entries []Entry[T], opts ...Option[T]) *Vocabulary[T] {
	v, err := build(2, name, entries, opts)
	if err != nil {
		panic(err)
	}
	return v
}

func build[T comparable](skip int, name string, entries []Entry[T], opts []Option[T]) (*Vocabulary[T], error) {
	v := &Vocabulary[T]{
		name:      name,
		site:      callerSite(skip + 1),
		entries:   slices.Clone(entries),
		byChar:    make(map[rune]T, len(entries)),
		byVariant: make(map[T]rune, len(entries)),
	}
	for _, e := range entries {
		if _, dup := v.byChar[e.Char]; dup {
			return nil, fmt.Errorf("%w: %q in %s", ErrDuplicateChar, e.Char, name)
		}
		if _, dup := v.byVariant[e.Variant]; dup {
			return nil, fmt.Errorf("%w: %s in %s", ErrDuplicateVariant, e.Name, name)
		}
		v.byChar[e.Char] = e.Variant
		v.byVariant[e.Variant] = e.Char
	}
	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}
	if len(v.entries) == 0 && v.digits == nil {
		return nil, fmt.Errorf("%w: %s", ErrEmptyVocabulary, name)
	}
	return v, nil
}

func callerSite(skip int) string {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", filepath.Base(file), line)
}

// Name is the vocabulary's display name.
func (v *Vocabulary[T]) Name() string { return v.name }

// Site is the file:line where the vocabulary was defined.
func (v *Vocabulary[T]) Site() string { return v.site }

// Entries returns the declared entries in order. The digit variant is not
// an entry; see HasDigits.
func (v *Vocabulary[T]) Entries() []Entry[T] { return slices.Clone(v.entries) }

// HasDigits reports whether a digit variant is declared, and its name.
func (v *Vocabulary[T]) HasDigits() (string, bool) {
	if v.digits == nil {
		return "", false
	}
	return v.digits.name, true
}

// Parse decodes one character.
// Complexity: O(1).
func (v *Vocabulary[T]) Parse(r rune) (T, error) {
	if t, ok := v.byChar[r]; ok {
		return t, nil
	}
	if v.digits != nil && r >= '0' && r <= '9' {
		return v.digits.make(int(r - '0')), nil
	}
	var zero T
	return zero, &ParseError{Char: r, Row: -1, Col: -1, Vocabulary: v.name, Site: v.site}
}

// Format encodes t back to the character it is spelled with.
func (v *Vocabulary[T]) Format(t T) (rune, error) {
	if r, ok := v.byVariant[t]; ok {
		return r, nil
	}
	if v.digits != nil {
		if n, ok := v.digits.digit(t); ok {
			d, err := safecast.Conv[uint8](n)
			if err != nil || d > 9 {
				return 0, fmt.Errorf("%w: %s digit %d", ErrUnknownVariant, v.digits.name, n)
			}
			return rune('0' + d), nil
		}
	}
	return 0, fmt.Errorf("%w: in %s", ErrUnknownVariant, v.name)
}

// String is Format as a string, or "?" for an undeclared value.
func (v *Vocabulary[T]) String(t T) string {
	r, err := v.Format(t)
	if err != nil {
		return "?"
	}
	return string(r)
}

// ParseGrid decodes text one character per cell. The first unknown character
// is reported as a *ParseError carrying its row and column.
// Complexity: O(W×H).
func (v *Vocabulary[T]) ParseGrid(text string) (*grid.Grid[T], error) {
	return grid.ParseFunc(text, func(r rune, at grid.Coord) (T, error) {
		t, err := v.Parse(r)
		if err != nil {
			pe := *err.(*ParseError)
			pe.Row, pe.Col = at.Y, at.X
			return t, &pe
		}
		return t, nil
	})
}

// FormatGrid renders g one line per row, without a trailing newline.
// Complexity: O(W×H).
func (v *Vocabulary[T]) FormatGrid(g *grid.Grid[T]) (string, error) {
	var sb strings.Builder
	sb.Grow(g.Len() + g.Height())
	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, t := range row {
			r, err := v.Format(t)
			if err != nil {
				return "", fmt.Errorf("tile: cell (%d,%d): %w", x, y, err)
			}
			sb.WriteRune(r)
		}
	}
	return sb.String(), nil
}
