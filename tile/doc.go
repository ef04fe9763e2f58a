// Package tile maps single characters to a closed set of cell variants and
// back, the way puzzle maps spell walls, floors and tokens.
//
// What:
//
//   - Vocabulary[T] is a static table of (variant, character) entries built
//     once, optionally plus one variant that accepts any decimal digit and
//     carries it as a payload.
//   - Parse decodes one character; characters outside the table are always
//     a *ParseError, never a silent default.
//   - Format/String encode a variant back to its character.
//   - ParseGrid/FormatGrid apply the codec to a whole grid.Grid.
//
// Code generation:
//
//	The tilegen command (cmd/tilegen) turns a YAML vocabulary into a Go file
//	declaring the closed variant type and the package-level Vocabulary that
//	backs it:
//
//	    //go:generate go run github.com/katalvlaran/gridkit/cmd/tilegen gen --vocab tiles.yaml
//
// Errors:
//
//   - ErrUnknownChar:      sentinel of every *ParseError.
//   - ErrUnknownVariant:   Format was given a value outside the table.
//   - ErrDuplicateChar:    two entries (or an entry and the digit variant) share a character.
//   - ErrDuplicateVariant: two entries share a variant.
//   - ErrEmptyVocabulary:  no entries and no digit variant.
package tile
