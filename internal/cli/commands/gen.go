package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridkit/internal/cli/config"
	"github.com/katalvlaran/gridkit/internal/ctxlog"
	"github.com/katalvlaran/gridkit/internal/tilegen"
)

// NewGenCommand creates the gen command.
func NewGenCommand() *cobra.Command {
	var vocabPath, outPath, pkg string

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate a Go tile type from a vocabulary file",
		Long: `Generate reads a YAML vocabulary and writes a Go file declaring the
closed tile type, its character table and grid parse/format helpers.

Intended for //go:generate directives:

  //go:generate go run github.com/katalvlaran/gridkit/cmd/tilegen gen --vocab tiles.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGen(cmd, vocabPath, outPath, pkg)
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "", "vocabulary file (required)")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default: vocabulary name + out_suffix)")
	cmd.Flags().StringVar(&pkg, "package", "", "override the package name of the vocabulary")
	cmd.Flags().String("header", "", "extra comment line under the generated-code notice")
	cmd.Flags().String("out-suffix", "", "suffix replacing the vocabulary extension")
	_ = cmd.MarkFlagRequired("vocab")

	return cmd
}

func runGen(cmd *cobra.Command, vocabPath, outPath, pkg string) error {
	ctx := cmd.Context()
	cfg := config.FromContext(ctx)
	logger := ctxlog.FromContext(ctx)

	v, err := tilegen.Load(vocabPath)
	if err != nil {
		return err
	}
	if pkg != "" {
		v.Package = pkg
	}
	src, err := tilegen.Generate(v, tilegen.Options{Header: cfg.Header})
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = strings.TrimSuffix(vocabPath, filepath.Ext(vocabPath)) + cfg.OutSuffix
	}
	if err := os.WriteFile(outPath, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	n, _ := v.Count()
	logger.Info("generated tile type",
		"type", v.Package+"."+v.Type,
		"variants", n,
		"digit", v.Digit != "",
		"out", outPath)
	return nil
}
