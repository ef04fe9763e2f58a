package tile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownChar is the sentinel every *ParseError unwraps to.
	ErrUnknownChar = errors.New("tile: character not in vocabulary")
	// ErrUnknownVariant indicates a value that no entry declares.
	ErrUnknownVariant = errors.New("tile: value is not a declared variant")
	// ErrDuplicateChar indicates two entries mapped to one character.
	ErrDuplicateChar = errors.New("tile: character declared twice")
	// ErrDuplicateVariant indicates one variant declared twice.
	ErrDuplicateVariant = errors.New("tile: variant declared twice")
	// ErrEmptyVocabulary indicates a vocabulary that accepts nothing.
	ErrEmptyVocabulary = errors.New("tile: vocabulary has no entries")
)

// ParseError reports a character that matches no entry of a vocabulary.
// Row and Col are -1 when the character was parsed on its own rather than as
// part of a grid. Site is the file:line where the vocabulary was defined.
type ParseError struct {
	Char       rune
	Row        int
	Col        int
	Vocabulary string
	Site       string
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("tile: unknown character %q for %s (defined at %s)",
			e.Char, e.Vocabulary, e.Site)
	}
	return fmt.Sprintf("tile: unknown character %q at row %d, column %d for %s (defined at %s)",
		e.Char, e.Row, e.Col, e.Vocabulary, e.Site)
}

// Unwrap lets errors.Is(err, ErrUnknownChar) match.
func (e *ParseError) Unwrap() error { return ErrUnknownChar }
