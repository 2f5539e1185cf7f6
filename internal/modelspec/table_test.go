package modelspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableTermInterpretation(t *testing.T) {
	table := NewTable(2, 2)
	table.DefineTerm("c", []int{0, 1})

	d, err := table.TermInterpretation("c", 0)
	require.NoError(t, err)
	require.Equal(t, 0, d)

	d, err = table.TermInterpretation("c", 1)
	require.NoError(t, err)
	require.Equal(t, 1, d)
}

func TestTableTermUndefinedAtWorld(t *testing.T) {
	table := NewTable(2, 2)
	table.DefineTerm("c", []int{0, -1})

	_, err := table.TermInterpretation("c", 1)
	require.Error(t, err)
}

func TestTableTermNeverInterpreted(t *testing.T) {
	table := NewTable(2, 2)
	_, err := table.TermInterpretation("nope", 0)
	require.Error(t, err)
}

func TestTablePredicateInterpretation(t *testing.T) {
	table := NewTable(2, 2)
	table.DefinePredicate("P", 0, [][]int{{0}})
	table.DefinePredicate("P", 1, [][]int{{0}, {1}})

	tuples, err := table.PredicateInterpretation("P", 0)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0}}, tuples)

	tuples, err = table.PredicateInterpretation("P", 1)
	require.NoError(t, err)
	require.Len(t, tuples, 2)
}

func TestTablePredicateUndefinedAtWorld(t *testing.T) {
	table := NewTable(2, 2)
	table.DefinePredicate("P", 0, [][]int{{0}})

	_, err := table.PredicateInterpretation("P", 1)
	require.Error(t, err)
}

func TestTableCardinalities(t *testing.T) {
	table := NewTable(3, 5)
	require.Equal(t, 3, table.WorldCardinality())
	require.Equal(t, 5, table.DomainCardinality())
}
