package main

import (
	"fmt"

	"github.com/pemberton-lang/gsv-go/internal/modelspec"
	"github.com/pemberton-lang/gsv-go/internal/tracelog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	verbose     bool
	modelPath   string
	exampleName string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "gsv",
	Short: "Evaluate quantified modal logic formulas under GSV dynamic semantics",
	Long: `gsv computes the GSV (Groenendijk, Stokhof, Veltman) update semantics of a
quantified modal logic formula against a finite model: it parses a formula,
resolves a model (a built-in example or a YAML file), and either evaluates
the formula or checks one of the semantic relations (consistent, coherent,
supports, entailment, equivalence).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = tracelog.New(verbose)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&modelPath, "model", "", "path to a YAML model description")
	rootCmd.PersistentFlags().StringVar(&exampleName, "example", "", "name of a built-in example model")

	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(diagramCmd)
	rootCmd.AddCommand(genModelCmd)
}

// resolveModel loads the model named by --model or --example, in that
// order of precedence, per SPEC_FULL.md §4.11.
func resolveModel() (*modelspec.Table, error) {
	if modelPath != "" {
		return modelspec.LoadYAML(modelPath)
	}
	if exampleName != "" {
		table, ok := modelspec.Example(exampleName)
		if !ok {
			return nil, fmt.Errorf("unknown example model %q (available: %v)", exampleName, modelspec.ExampleNames())
		}
		return table, nil
	}
	return nil, fmt.Errorf("no model given: pass --model <file> or --example <name>")
}

func modelLabel() string {
	if modelPath != "" {
		return modelPath
	}
	if exampleName != "" {
		return exampleName
	}
	return "(none)"
}
