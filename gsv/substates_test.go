package gsv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateSubStatesZeroCardinality(t *testing.T) {
	states := generateSubStates(3, 0)
	require.Len(t, states, 1)
	require.True(t, states[0].IsEmpty())
}

func TestGenerateSubStatesTooLarge(t *testing.T) {
	states := generateSubStates(2, 5)
	require.Empty(t, states)
}

func TestGenerateSubStatesCountsCombinations(t *testing.T) {
	// worlds 0..2 (n=2, i.e. 3 worlds), choose 2: C(3,2) = 3.
	states := generateSubStates(2, 2)
	require.Len(t, states, 3)
	for _, s := range states {
		require.Equal(t, 2, s.Len())
	}
}

func TestGenerateSubStatesShareOneReferentSystem(t *testing.T) {
	states := generateSubStates(2, 2)
	for _, s := range states {
		var shared *ReferentSystem
		for _, p := range s.Possibilities() {
			if shared == nil {
				shared = p.referentSystem
			}
			require.Same(t, shared, p.referentSystem)
		}
	}
}
