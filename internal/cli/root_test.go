package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridkit/internal/cli"
	"github.com/katalvlaran/gridkit/tile"
)

const heatVocab = `package: heat
type: Block
variants:
  - {name: Start, char: "S"}
  - {name: Wall, char: "#"}
digit: Loss
`

const heatGrid = "S12\n#21\n111\n"

// run executes tilegen with args and returns stdout and stderr.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := cli.NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

// row returns the trimmed cells of the table line whose first cell is name.
func row(t *testing.T, out, name string) []string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		cells := strings.Split(line, "│")
		if len(cells) < 3 || strings.TrimSpace(cells[1]) != name {
			continue
		}
		var trimmed []string
		for _, c := range cells[1 : len(cells)-1] {
			trimmed = append(trimmed, strings.TrimSpace(c))
		}
		return trimmed
	}
	t.Fatalf("no row for %s in:\n%s", name, out)
	return nil
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "tiles.yaml", heatVocab)

	_, stderr, err := run(t, "gen", "--vocab", vocab, "--log-level", "debug")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generated tile type")
	assert.Contains(t, stderr, "type=heat.Block")

	src, err := os.ReadFile(filepath.Join(dir, "tiles_gen.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package heat")
	assert.Contains(t, string(src), "func Loss(n int) Block")
}

func TestGenOverrides(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "tiles.yaml", heatVocab)
	t.Setenv("TILEGEN_OUT_SUFFIX", "_tiles.go")

	_, _, err := run(t, "gen", "--vocab", vocab, "--package", "city", "--header", "Edit tiles.yaml instead.")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(dir, "tiles_tiles.go"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "package city")
	assert.Contains(t, string(src), "// Edit tiles.yaml instead.")

	out := filepath.Join(dir, "explicit.go")
	_, _, err = run(t, "gen", "--vocab", vocab, "-o", out)
	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestGenErrors(t *testing.T) {
	_, _, err := run(t, "gen")
	assert.Error(t, err)

	dir := t.TempDir()
	bad := writeFile(t, dir, "bad.yaml", "package: p\ntype: T\n")
	_, _, err = run(t, "gen", "--vocab", bad)
	assert.ErrorContains(t, err, "no variants")
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "tiles.yaml", heatVocab)
	input := writeFile(t, dir, "city.txt", heatGrid)

	out, _, err := run(t, "inspect", "--vocab", vocab, "--components", input)
	require.NoError(t, err)

	assert.Contains(t, out, "VARIANT")
	assert.Equal(t, []string{"Start", "S", "1", "(0,0)", "1"}, row(t, out, "Start"))
	assert.Equal(t, []string{"Wall", "#", "1", "(0,1)", "1"}, row(t, out, "Wall"))
	assert.Equal(t, []string{"Loss(1)", "1", "5", "(1,0)", "2"}, row(t, out, "Loss(1)"))
	assert.Equal(t, []string{"Loss(2)", "2", "2", "(2,0)", "2"}, row(t, out, "Loss(2)"))
	assert.Less(t, strings.Index(out, "Wall"), strings.Index(out, "Loss(1)"))
	assert.Contains(t, strings.ToUpper(out), "3X3")
}

func TestInspectHighlight(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "tiles.yaml", heatVocab)
	input := writeFile(t, dir, "city.txt", heatGrid)

	out, _, err := run(t, "inspect", "--vocab", vocab, "--highlight", "Wall", input)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "···\n#··\n···\n"), out)

	out, _, err = run(t, "inspect", "--vocab", vocab, "--highlight", "Loss", input)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(out, "·12\n·21\n111\n"), out)

	out, _, err = run(t, "inspect", "--vocab", vocab, "--highlight", "Wall", "--color", input)
	require.NoError(t, err)
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "S12\n")

	_, _, err = run(t, "inspect", "--vocab", vocab, "--highlight", "Lava", input)
	assert.ErrorContains(t, err, `unknown variant "Lava"`)
}

func TestInspectUnknownChar(t *testing.T) {
	dir := t.TempDir()
	vocab := writeFile(t, dir, "tiles.yaml", heatVocab)
	input := writeFile(t, dir, "city.txt", "S1\n#x\n")

	_, _, err := run(t, "inspect", "--vocab", vocab, input)
	require.ErrorIs(t, err, tile.ErrUnknownChar)
	assert.Contains(t, err.Error(), "row 1, column 1")
}
