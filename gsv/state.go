package gsv

import "sort"

// InformationState is a set of possibilities (spec.md §3, §4.3),
// represented as a map keyed by Possibility.key() so structural equality
// — not the possibility's world alone — drives membership and
// deduplication (spec.md §9).
type InformationState struct {
	possibilities map[string]Possibility
}

// emptyState returns a state with no possibilities.
func emptyState() InformationState {
	return InformationState{possibilities: make(map[string]Possibility)}
}

// Create returns the ignorant information state over model: one
// possibility per world, all sharing a single fresh, empty referent
// system (spec.md §4.3).
func Create(model Model) InformationState {
	s := emptyState()
	r := NewReferentSystem()
	for w := 0; w < model.WorldCardinality(); w++ {
		p := newPossibility(r, w)
		s.possibilities[p.key()] = p
	}
	return s
}

// Update returns a new information state in which every possibility of s
// has been extended with a fresh discourse referent for variable, bound
// to individual. All output possibilities share one new referent system
// r*, extending the common referent system of s (spec.md §4.3).
func (s InformationState) Update(variable string, individual int) InformationState {
	out := emptyState()
	if s.IsEmpty() {
		return out
	}

	// Every possibility in s shares one referent system by construction
	// (spec.md §5); take its base peg count and bindings once.
	var basePegCount int
	var baseBindings map[string]int
	for _, p := range s.possibilities {
		basePegCount = p.referentSystem.pegCount
		baseBindings = p.referentSystem.bindings
		break
	}

	rStar := NewReferentSystem()
	for _, p := range s.possibilities {
		// Reset r* to the common base before each Introduce so every
		// possibility's new discourse referent lands on the same fresh
		// peg — the introduced variable ends up bound to one peg shared
		// by the whole output state, not a distinct peg per possibility.
		rStar.pegCount = basePegCount
		rStar.bindings = make(map[string]int, len(baseBindings)+1)
		for v, peg := range baseBindings {
			rStar.bindings[v] = peg
		}

		pStar := Possibility{referentSystem: rStar, assignment: cloneAssignment(p.assignment), World: p.World}
		pStar.update(variable, individual)
		out.possibilities[pStar.key()] = pStar
	}

	return out
}

func cloneAssignment(a map[int]int) map[int]int {
	out := make(map[int]int, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}

// Contains reports whether p (by structural equality) is a member of s.
func (s InformationState) Contains(p Possibility) bool {
	_, ok := s.possibilities[p.key()]
	return ok
}

// IsEmpty reports whether s has no possibilities.
func (s InformationState) IsEmpty() bool { return len(s.possibilities) == 0 }

// Len returns the number of possibilities in s.
func (s InformationState) Len() int { return len(s.possibilities) }

// Possibilities returns the possibilities of s in a deterministic order
// (sorted by key), so observable output never depends on map iteration
// order (spec.md §5).
func (s InformationState) Possibilities() []Possibility {
	out := make([]Possibility, 0, len(s.possibilities))
	for _, p := range s.possibilities {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key() < out[j].key() })
	return out
}

// insert adds p to s, returning s for chaining inside builder-style
// helpers (evalIdentity, evalPredication).
func (s InformationState) insert(p Possibility) InformationState {
	s.possibilities[p.key()] = p
	return s
}

// union returns the set union of s and other.
func (s InformationState) union(other InformationState) InformationState {
	out := emptyState()
	for k, p := range s.possibilities {
		out.possibilities[k] = p
	}
	for k, p := range other.possibilities {
		out.possibilities[k] = p
	}
	return out
}

// filter returns the subset of s whose possibilities satisfy keep.
func (s InformationState) filter(keep func(Possibility) bool) InformationState {
	out := emptyState()
	for k, p := range s.possibilities {
		if keep(p) {
			out.possibilities[k] = p
		}
	}
	return out
}

// Extends reports whether s (playing the role of s2 in spec.md §4.3)
// extends other (s1): every possibility of s extends some possibility of
// other.
func (s InformationState) Extends(other InformationState) bool {
	for _, p2 := range s.possibilities {
		found := false
		for _, p1 := range other.possibilities {
			if extendsPossibility(p2, p1) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// IsDescendantOf reports whether p2 is a member of s and extends p1
// (spec.md §4.3).
func IsDescendantOf(p2, p1 Possibility, s InformationState) bool {
	return s.Contains(p2) && extendsPossibility(p2, p1)
}

// SubsistsIn reports whether p subsists in s: some possibility of s is a
// descendant of p (spec.md §4.3).
func SubsistsIn(p Possibility, s InformationState) bool {
	for _, p2 := range s.possibilities {
		if IsDescendantOf(p2, p, s) {
			return true
		}
	}
	return false
}

// StateSubsistsIn reports whether every possibility of s1 subsists in s2
// (spec.md §4.3). Named distinctly from SubsistsIn because Go has no
// overloading for the two argument shapes spec.md describes with one
// name.
func StateSubsistsIn(s1, s2 InformationState) bool {
	for _, p := range s1.possibilities {
		if !SubsistsIn(p, s2) {
			return false
		}
	}
	return true
}
