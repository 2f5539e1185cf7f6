package main

import (
	"fmt"
	"os"

	"github.com/pemberton-lang/gsv-go/internal/modelspec"
	"github.com/spf13/cobra"
)

var (
	genModelFromLabeled string
	genModelOut         string
)

var genModelCmd = &cobra.Command{
	Use:   "gen-model",
	Short: "Convert a labeled transition system into a modelspec YAML model",
	RunE:  runGenModel,
}

func init() {
	genModelCmd.Flags().StringVar(&genModelFromLabeled, "from-labeled", "", "path to a labeled-transition-system YAML file")
	genModelCmd.Flags().StringVar(&genModelOut, "out", "", "path to write the generated model YAML")
	_ = genModelCmd.MarkFlagRequired("from-labeled")
	_ = genModelCmd.MarkFlagRequired("out")
}

func runGenModel(cmd *cobra.Command, args []string) error {
	labeled, err := modelspec.LoadLabeledSystem(genModelFromLabeled)
	if err != nil {
		return err
	}
	table := modelspec.FromLabeledSystem(labeled)

	out, err := modelspec.Marshal(table)
	if err != nil {
		return err
	}
	if err := os.WriteFile(genModelOut, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", genModelOut, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d worlds, %d individuals)\n", genModelOut, table.WorldCardinality(), table.DomainCardinality())
	return nil
}
