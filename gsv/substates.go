package gsv

// generateSubStates returns every k-element subset of the ignorant
// possibilities over worlds 0..n (spec.md §4.5), each subset already
// packaged as an InformationState.
//
// spec.md §9's third open question flags that the original construction
// gave each possibility its own throwaway referent system, breaking the
// "one shared referent system per state" invariant Create relies on. We
// resolve that in favor of the invariant: every state generateSubStates
// returns shares exactly one fresh, empty referent system across its
// possibilities, so a returned state is safe to feed straight into
// Evaluate or InformationState.Update, exactly like a state built by
// Create.
func generateSubStates(n, k int) []InformationState {
	if k == 0 {
		return []InformationState{emptyState()}
	}
	if k > n+1 {
		return nil
	}

	var results []InformationState
	worlds := make([]int, 0, k)

	var backtrack func(start int)
	backtrack = func(start int) {
		if len(worlds) == k {
			r := NewReferentSystem()
			s := emptyState()
			for _, w := range worlds {
				p := newPossibility(r, w)
				s.possibilities[p.key()] = p
			}
			results = append(results, s)
			return
		}
		// remaining slots to fill, remaining worlds available from start
		remaining := k - len(worlds)
		for w := start; w <= n; w++ {
			if n-w+1 < remaining {
				break
			}
			worlds = append(worlds, w)
			backtrack(w + 1)
			worlds = worlds[:len(worlds)-1]
		}
	}
	backtrack(0)

	return results
}
