package gsv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// helper: does state contain a possibility at world w binding var to d?
func hasBinding(t *testing.T, state InformationState, world int, variable string, individual int) bool {
	t.Helper()
	for _, p := range state.Possibilities() {
		if p.World != world {
			continue
		}
		d, err := p.VariableDenotation(variable)
		if err == nil && d == individual {
			return true
		}
	}
	return false
}

func TestS1ExistentialBinding(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := Exists("x", Pred("P", Var("x")))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
	require.True(t, hasBinding(t, out, 0, "x", 0))
	require.True(t, hasBinding(t, out, 1, "x", 0))
	require.True(t, hasBinding(t, out, 1, "x", 1))
}

func TestS2AnaphoraAcrossConjunction(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := And(Exists("x", Pred("P", Var("x"))), Pred("P", Var("x")))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())
}

func TestS3NegationAsTest(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := Not(Exists("x", Pred("P", Var("x"))))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}

func TestS4EpistemicPossibility(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	prejacent := Exists("x", And(Eq(Var("x"), Var("x")), Not(Pred("P", Var("x")))))
	expr := Possible(prejacent)

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.Equal(t, state.Len(), out.Len())
	for _, p := range state.Possibilities() {
		require.True(t, out.Contains(p))
	}
}

func TestS5EntailmentPositive(t *testing.T) {
	model := exampleModel()
	premises := []Expression{Exists("x", Pred("P", Var("x")))}
	conclusion := Exists("x", Pred("P", Var("x")))

	ok, err := Entails(premises, conclusion, model)
	require.NoError(t, err)
	require.True(t, ok)
}

func TestS6EntailmentNegative(t *testing.T) {
	model := exampleModel()
	conclusion := ForAll("x", Pred("P", Var("x")))

	ok, err := Entails(nil, conclusion, model)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestUnboundVariableErrorPropagates(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := Pred("P", Var("x"))

	_, err := Evaluate(expr, state, model)
	require.Error(t, err)
	require.Contains(t, err.Error(), "P(x)")
}

func TestUninterpretedTermErrorTrace(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	inner := Pred("Q", Const("c"))
	outer := Not(inner)

	_, err := Evaluate(outer, state, model)
	require.Error(t, err)
	require.Contains(t, err.Error(), Format(outer))
	require.Contains(t, err.Error(), Format(inner))
}

func TestConjunctionSequencesUpdates(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := And(Exists("x", Pred("P", Var("x"))), Not(Pred("P", Var("x"))))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.True(t, out.IsEmpty())
}

func TestDisjunctionIsATest(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	// Disjunction keeps a possibility of the input only if that same
	// possibility (by structural equality) is in the left or the right
	// update. ∃x.P(x) binds x, so none of its outputs equals an input
	// possibility; every world has a P-individual, so ¬∃x.P(x) empties
	// the state and the right update is empty too. The disjunction only
	// filters: nothing survives and no referent is introduced.
	expr := Or(Exists("x", Pred("P", Var("x"))), Not(Exists("x", Pred("P", Var("x")))))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.Equal(t, 0, out.Len())
}

func TestUniversalFiltersToWorldsWhereAllSatisfy(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := ForAll("x", Pred("P", Var("x")))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.Equal(t, 1, out.Len())
	require.Equal(t, 1, out.Possibilities()[0].World)
}

func TestConditionalOnlyDefinedAntecedentCounts(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	expr := If(Exists("x", Pred("P", Var("x"))), Pred("P", Var("x")))

	out, err := Evaluate(expr, state, model)
	require.NoError(t, err)
	require.Equal(t, state.Len(), out.Len())
}
