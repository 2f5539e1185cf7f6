package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func withExample(name string) func() {
	exampleName = name
	modelPath = ""
	return func() {
		exampleName = ""
	}
}

func TestRunEvalWithBuiltinExample(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runEval(cmd, []string{"Ex x.P(x)"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "possibilities")
}

func TestRunEvalRequiresAModel(t *testing.T) {
	logger = zap.NewNop()
	exampleName = ""
	modelPath = ""

	cmd := &cobra.Command{}
	err := runEval(cmd, []string{"P(x)"})
	require.Error(t, err)
}

func TestRunEvalRejectsBadFormula(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	cmd := &cobra.Command{}
	err := runEval(cmd, []string{"P(x"})
	require.Error(t, err)
}

func TestRunCheckConsistent(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runCheck(cmd, []string{"consistent", "Ex x.P(x)"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "true")
}

func TestRunCheckSupports(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runCheck(cmd, []string{"supports", "Ex x.P(x)"})
	require.NoError(t, err)
	require.Contains(t, out.String(), "true")
}

func TestRunCheckEntailsRequiresConclusion(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	cmd := &cobra.Command{}
	err := runCheck(cmd, []string{"entails-g", "Ex x.P(x)"})
	require.Error(t, err)
}

func TestRunCheckUnknownRelation(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	cmd := &cobra.Command{}
	err := runCheck(cmd, []string{"bogus", "P(x)"})
	require.Error(t, err)
}

func TestRunDiagramWritesFileWhenOutGiven(t *testing.T) {
	logger = zap.NewNop()
	defer withExample("two-world")()

	dir := t.TempDir()
	diagramOut = filepath.Join(dir, "state.dot")
	defer func() { diagramOut = "" }()

	cmd := &cobra.Command{}
	err := runDiagram(cmd, []string{"Ex x.P(x)"})
	require.NoError(t, err)

	content, err := os.ReadFile(diagramOut)
	require.NoError(t, err)
	require.Contains(t, string(content), "digraph Extends")
}

func TestRunGenModelFromLabeledSystem(t *testing.T) {
	dir := t.TempDir()
	labeledPath := filepath.Join(dir, "labeled.yaml")
	outPath := filepath.Join(dir, "model.yaml")

	require.NoError(t, os.WriteFile(labeledPath, []byte(`
states: [s0, s1]
transitions:
  s0: [s1]
labels:
  s1: [safe]
`), 0o644))

	genModelFromLabeled = labeledPath
	genModelOut = outPath
	defer func() {
		genModelFromLabeled = ""
		genModelOut = ""
	}()

	cmd := &cobra.Command{}
	var out bytes.Buffer
	cmd.SetOut(&out)

	err := runGenModel(cmd, nil)
	require.NoError(t, err)
	require.FileExists(t, outPath)
	require.Contains(t, out.String(), "wrote")
}
