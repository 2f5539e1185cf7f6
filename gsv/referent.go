package gsv

// ReferentSystem maps discourse variable names to peg indices and tracks
// how many pegs have been introduced so far (spec.md §3, §4.1).
//
// A ReferentSystem is shared by every possibility of one InformationState
// (spec.md §5): Update never mutates a ReferentSystem that is already
// reachable from a published state. It always builds a new one and hands
// it, still unshared, to the caller before that caller publishes it.
type ReferentSystem struct {
	pegCount int
	bindings map[string]int
}

// NewReferentSystem returns an empty referent system: no pegs, no
// bindings.
func NewReferentSystem() *ReferentSystem {
	return &ReferentSystem{bindings: make(map[string]int)}
}

// clone returns a deep copy of r, safe to mutate independently.
func (r *ReferentSystem) clone() *ReferentSystem {
	bindings := make(map[string]int, len(r.bindings))
	for k, v := range r.bindings {
		bindings[k] = v
	}
	return &ReferentSystem{pegCount: r.pegCount, bindings: bindings}
}

// PegCount returns the number of pegs introduced so far.
func (r *ReferentSystem) PegCount() int { return r.pegCount }

// Value looks up the peg bound to variable. ok is false when the
// variable has no binding.
func (r *ReferentSystem) Value(variable string) (peg int, ok bool) {
	peg, ok = r.bindings[variable]
	return peg, ok
}

// Domain returns the set of variable names currently bound.
func (r *ReferentSystem) Domain() map[string]struct{} {
	dom := make(map[string]struct{}, len(r.bindings))
	for v := range r.bindings {
		dom[v] = struct{}{}
	}
	return dom
}

// Introduce assigns variable a fresh peg — the current pegCount — and
// increments pegCount, always allocating a new peg even if variable was
// already bound. A rebinding therefore shadows, rather than reuses, the
// older peg: the old peg remains mapped in any possibility's assignment
// but becomes unreachable through this variable (spec.md §4.1).
func (r *ReferentSystem) Introduce(variable string) int {
	peg := r.pegCount
	r.bindings[variable] = peg
	r.pegCount++
	return peg
}

// extendsReferentSystem reports whether r2 extends r1: r1's peg count is
// no greater than r2's, r1's domain is a subset of r2's, every variable
// bound in r1 keeps the same peg in r2 or moves to a peg only r2 knows
// about, and every variable new to r2 gets a peg beyond r1's peg count
// (spec.md §4.1).
func extendsReferentSystem(r2, r1 *ReferentSystem) bool {
	if r1.pegCount > r2.pegCount {
		return false
	}
	for v, p1 := range r1.bindings {
		p2, ok := r2.bindings[v]
		if !ok {
			return false
		}
		if p2 != p1 && p2 < r1.pegCount {
			return false
		}
	}
	for v, p2 := range r2.bindings {
		if _, ok := r1.bindings[v]; !ok {
			if p2 < r1.pegCount {
				return false
			}
		}
	}
	return true
}
