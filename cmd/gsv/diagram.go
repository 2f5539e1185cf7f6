package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pemberton-lang/gsv-go/gsv"
	"github.com/pemberton-lang/gsv-go/internal/diagram"
	"github.com/pemberton-lang/gsv-go/internal/parser"
	"github.com/pemberton-lang/gsv-go/internal/tracelog"
	"github.com/spf13/cobra"
)

var diagramOut string

var diagramCmd = &cobra.Command{
	Use:   "diagram <formula>",
	Short: "Render the update of a formula as a Graphviz DOT digraph",
	Args:  cobra.ExactArgs(1),
	RunE:  runDiagram,
}

func init() {
	diagramCmd.Flags().StringVar(&diagramOut, "out", "", "write the DOT diagram here instead of stdout")
}

func runDiagram(cmd *cobra.Command, args []string) error {
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

	before := gsv.Create(model)
	after, evalErr := gsv.Evaluate(expr, before, model)

	tracelog.Invocation(logger, "diagram", formulaText, modelLabel(), time.Since(start).Milliseconds(), evalErr)
	if evalErr != nil {
		return evalErr
	}

	dot := diagram.RenderTransition(before, after)
	if diagramOut == "" {
		fmt.Fprint(cmd.OutOrStdout(), dot)
		return nil
	}
	return os.WriteFile(diagramOut, []byte(dot), 0o644)
}
