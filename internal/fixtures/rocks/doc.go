// Package rocks spells a platform of round rocks that roll, cube rocks that
// stay put, and empty floor.
package rocks

//go:generate go run github.com/katalvlaran/gridkit/cmd/tilegen gen --vocab tiles.yaml
