package tile_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridkit/tile"
)

type rock uint8

const (
	round rock = iota
	cube
	floor
)

func ExampleVocabulary_ParseGrid() {
	rocks := tile.MustNew("example.rock", []tile.Entry[rock]{
		{Variant: round, Char: 'O', Name: "Round"},
		{Variant: cube, Char: '#', Name: "Cube"},
		{Variant: floor, Char: '.', Name: "Empty"},
	})

	g, err := rocks.ParseGrid("O.#\n.O.")
	if err != nil {
		panic(err)
	}
	text, _ := rocks.FormatGrid(g)
	fmt.Println(g.Width(), g.Height())
	fmt.Println(text)

	_, err = rocks.ParseGrid("O?#")
	var pe *tile.ParseError
	if errors.As(err, &pe) {
		fmt.Printf("bad %q at row %d, column %d\n", pe.Char, pe.Row, pe.Col)
	}
	// Output:
	// 3 2
	// O.#
	// .O.
	// bad '?' at row 0, column 1
}
