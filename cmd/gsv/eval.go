package main

import (
	"fmt"
	"time"

	"github.com/pemberton-lang/gsv-go/gsv"
	"github.com/pemberton-lang/gsv-go/internal/parser"
	"github.com/pemberton-lang/gsv-go/internal/tracelog"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Evaluate a formula against the ignorant state of a model",
	Args:  cobra.ExactArgs(1),
	RunE:  runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	start := time.Now()
	formulaText := args[0]

	model, err := resolveModel()
	if err != nil {
		return err
	}
	expr, err := parser.Parse(formulaText)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}

	input := gsv.Create(model)
	out, evalErr := gsv.Evaluate(expr, input, model)

	tracelog.Invocation(logger, "eval", formulaText, modelLabel(), time.Since(start).Milliseconds(), evalErr)
	if evalErr != nil {
		return evalErr
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d possibilities:\n", out.Len())
	for _, p := range out.Possibilities() {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", p.String())
	}
	return nil
}
