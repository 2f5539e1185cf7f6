package gsv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateIsIgnorant(t *testing.T) {
	model := exampleModel()
	state := Create(model)

	require.Equal(t, model.WorldCardinality(), state.Len())
	for _, p := range state.Possibilities() {
		require.Empty(t, p.referentSystem.Domain())
	}
}

func TestUpdateSharesOneReferentSystemAcrossOutput(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	out := state.Update("x", 0)

	require.Equal(t, state.Len(), out.Len())
	var shared *ReferentSystem
	for _, p := range out.Possibilities() {
		if shared == nil {
			shared = p.referentSystem
		}
		require.Same(t, shared, p.referentSystem)
		d, err := p.VariableDenotation("x")
		require.NoError(t, err)
		require.Equal(t, 0, d)
	}
}

func TestUpdateDoesNotMutateInput(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	_ = state.Update("x", 1)

	for _, p := range state.Possibilities() {
		_, ok := p.referentSystem.Value("x")
		require.False(t, ok)
	}
}

func TestExtendsReflexiveForStates(t *testing.T) {
	model := exampleModel()
	state := Create(model)
	require.True(t, state.Extends(state))
}

func TestSubsistenceTransitivity(t *testing.T) {
	model := exampleModel()
	s1 := Create(model)
	s2 := s1.Update("x", 0)
	s3 := s2.Update("y", 1)

	require.True(t, StateSubsistsIn(s1, s2))
	require.True(t, StateSubsistsIn(s2, s3))
	require.True(t, StateSubsistsIn(s1, s3))
}

func TestIsDescendantOf(t *testing.T) {
	model := exampleModel()
	s1 := Create(model)
	s2 := s1.Update("x", 0)

	p1 := s1.Possibilities()[0]
	for _, p2 := range s2.Possibilities() {
		if p2.World == p1.World {
			require.True(t, IsDescendantOf(p2, p1, s2))
		}
	}
}

func TestStateEqualityByStructureNotWorldAlone(t *testing.T) {
	model := &testModel{worlds: 1, domain: 2, terms: map[string]map[int]int{}, predicates: map[string]map[int][][]int{}}
	base := Create(model)
	withZero := base.Update("x", 0)
	withOne := base.Update("x", 1)

	union := withZero.union(withOne)
	require.Equal(t, 2, union.Len(), "two structurally distinct possibilities sharing a world must not collapse")
}
