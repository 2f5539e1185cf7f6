package main

import (
	"fmt"
	"time"

	"github.com/pemberton-lang/gsv-go/gsv"
	"github.com/pemberton-lang/gsv-go/internal/parser"
	"github.com/pemberton-lang/gsv-go/internal/tracelog"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <relation> <formula> [conclusion]",
	Short: "Check a semantic relation: consistent, coherent, supports, entails-0, entails-g, entails-c, equivalent",
	Args:  cobra.RangeArgs(2, 3),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	start := time.Now()
	relation := args[0]
	formulaText := args[1]

	model, err := resolveModel()
	if err != nil {
		return err
	}
	expr, err := parser.Parse(formulaText)
	if err != nil {
		return fmt.Errorf("parsing formula: %w", err)
	}

	var conclusion gsv.Expression
	if len(args) == 3 {
		conclusion, err = parser.Parse(args[2])
		if err != nil {
			return fmt.Errorf("parsing conclusion: %w", err)
		}
	}

	var ok bool
	var checkErr error
	switch relation {
	case "consistent":
		ok, checkErr = gsv.ConsistentInModel(expr, model)
	case "coherent":
		ok, checkErr = gsv.Coherent(expr, model)
	case "supports":
		ok, checkErr = gsv.Supports(gsv.Create(model), expr, model)
	case "entails-0":
		ok, checkErr = requireConclusion(conclusion, relation, func(c gsv.Expression) (bool, error) {
			return gsv.EntailsZero([]gsv.Expression{expr}, c, model)
		})
	case "entails-g":
		ok, checkErr = requireConclusion(conclusion, relation, func(c gsv.Expression) (bool, error) {
			return gsv.Entails([]gsv.Expression{expr}, c, model)
		})
	case "entails-c":
		ok, checkErr = requireConclusion(conclusion, relation, func(c gsv.Expression) (bool, error) {
			return gsv.EntailsC([]gsv.Expression{expr}, c, model)
		})
	case "equivalent":
		ok, checkErr = requireConclusion(conclusion, relation, func(c gsv.Expression) (bool, error) {
			return gsv.Equivalent(expr, c, model)
		})
	default:
		return fmt.Errorf("unknown relation %q", relation)
	}

	tracelog.Invocation(logger, "check:"+relation, formulaText, modelLabel(), time.Since(start).Milliseconds(), checkErr)
	if checkErr != nil {
		return checkErr
	}

	fmt.Fprintln(cmd.OutOrStdout(), ok)
	return nil
}

func requireConclusion(conclusion gsv.Expression, relation string, f func(gsv.Expression) (bool, error)) (bool, error) {
	if conclusion == nil {
		return false, fmt.Errorf("relation %q requires a conclusion formula", relation)
	}
	return f(conclusion)
}
