// Package pipes spells a field of pipe segments, ground, and the start tile
// of a closed loop.
package pipes

//go:generate go run github.com/katalvlaran/gridkit/cmd/tilegen gen --vocab tiles.yaml
