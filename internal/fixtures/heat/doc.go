// Package heat spells a city map whose blocks cost their digit to enter,
// plus a start marker and walls.
package heat

//go:generate go run github.com/katalvlaran/gridkit/cmd/tilegen gen --vocab tiles.yaml
