package modelspec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExampleKnownName(t *testing.T) {
	table, ok := Example("two-world")
	require.True(t, ok)
	require.Equal(t, 2, table.WorldCardinality())
	require.Equal(t, 2, table.DomainCardinality())
}

func TestExampleUnknownName(t *testing.T) {
	_, ok := Example("does-not-exist")
	require.False(t, ok)
}

func TestExampleNamesSorted(t *testing.T) {
	names := ExampleNames()
	require.Len(t, names, 3)
	for i := 1; i < len(names); i++ {
		require.Less(t, names[i-1], names[i])
	}
}

func TestAnaphoraExampleHasSharedIndividuals(t *testing.T) {
	table, ok := Example("anaphora")
	require.True(t, ok)

	tuples, err := table.PredicateInterpretation("Owns", 0)
	require.NoError(t, err)
	require.Equal(t, [][]int{{0, 2}}, tuples)
}
