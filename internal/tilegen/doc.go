// Package tilegen turns a YAML vocabulary description into Go source
// declaring a closed tile type backed by a tile.Vocabulary.
//
// A vocabulary file lists variants in order; the order fixes the numeric
// values of the generated constants:
//
//	package: rocks
//	type: Tile
//	variants:
//	  - {name: Round, char: "O"}
//	  - {name: Cube, char: "#"}
//	  - {name: Empty, char: "."}
//	digit: ""          # optional: name of the variant spelled by any 0-9
//
// Without a digit variant the type is a uint8 enum. With one, the type is a
// small struct holding a kind and the digit payload, and plain variants
// become package-level values.
package tilegen
