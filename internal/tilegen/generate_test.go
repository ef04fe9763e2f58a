package tilegen_test

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/internal/tilegen"
)

// squash drops all whitespace so comparisons ignore gofmt alignment.
func squash(s string) string {
	return strings.Join(strings.Fields(s), "")
}

// TestGenerateMatchesFixtures keeps the checked-in generated files in sync
// with their vocabularies.
func TestGenerateMatchesFixtures(t *testing.T) {
	for _, name := range []string{"rocks", "pipes", "heat"} {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join("..", "fixtures", name)
			v, err := tilegen.Load(filepath.Join(dir, "tiles.yaml"))
			require.NoError(t, err)

			got, err := tilegen.Generate(v, tilegen.Options{})
			require.NoError(t, err)
			want, err := os.ReadFile(filepath.Join(dir, "tiles_gen.go"))
			require.NoError(t, err)
			assert.Equal(t, squash(string(want)), squash(string(got)))
		})
	}
}

func TestGeneratePlain(t *testing.T) {
	v, err := decode(t, "package: walls\ntype: Cell\nvariants:\n  - {name: Wall, char: '#'}\n  - {name: Quote, char: \"'\"}\n  - {name: Slash, char: '\\'}\n")
	require.NoError(t, err)

	src, err := tilegen.Generate(v, tilegen.Options{Header: "Regenerate with go generate."})
	require.NoError(t, err)
	text := string(src)

	assert.True(t, strings.HasPrefix(text, "// Code generated by tilegen from test.yaml. DO NOT EDIT.\n"))
	assert.Contains(t, text, "// Regenerate with go generate.")
	assert.Contains(t, text, "type Cell uint8")
	assert.Contains(t, text, "Wall Cell = iota")
	assert.Contains(t, text, `{Variant: Quote, Char: '\'', Name: "Quote"}`)
	assert.Contains(t, text, `{Variant: Slash, Char: '\\', Name: "Slash"}`)
	assert.Contains(t, text, "func ParseCell(r rune) (Cell, error)")
	assert.NotContains(t, text, "WithDigits")

	_, err = parser.ParseFile(token.NewFileSet(), "cell_gen.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestGenerateDigitOnly(t *testing.T) {
	v, err := decode(t, "package: cost\ntype: Weight\ndigit: Cost\n")
	require.NoError(t, err)

	src, err := tilegen.Generate(v, tilegen.Options{})
	require.NoError(t, err)
	text := string(src)

	assert.Contains(t, text, "type Weight struct")
	assert.Contains(t, text, "KindCost WeightKind = iota")
	assert.NotContains(t, text, "var (")
	assert.Contains(t, text, `tile.WithDigits("Cost", Cost, Weight.Digit)`)

	_, err = parser.ParseFile(token.NewFileSet(), "weight_gen.go", src, parser.AllErrors)
	assert.NoError(t, err)
}

func TestGenerateRejectsInvalid(t *testing.T) {
	_, err := tilegen.Generate(&tilegen.Vocab{Package: "p", Type: "t"}, tilegen.Options{})
	assert.ErrorIs(t, err, tilegen.ErrInvalidVocab)
}
