package gsv

import (
	"fmt"
	"sort"
	"strings"
)

// Possibility is one concrete way the world being described could be: a
// world index together with an assignment of individuals to the pegs a
// referent system has introduced so far (spec.md §3, §4.2).
type Possibility struct {
	referentSystem *ReferentSystem
	assignment     map[int]int
	World          int
}

// newPossibility builds an ignorant possibility over world w, sharing
// the given referent system.
func newPossibility(r *ReferentSystem, world int) Possibility {
	return Possibility{referentSystem: r, assignment: make(map[int]int), World: world}
}

// update introduces variable in the possibility's referent system and
// maps the freshly created peg to individual. Per spec.md §5, this must
// only be called on a possibility whose referent system is not yet
// shared with any published InformationState — InformationState.Update
// is the only caller, and it always does so on a brand-new
// *ReferentSystem before returning the resulting state.
func (p *Possibility) update(variable string, individual int) {
	peg := p.referentSystem.Introduce(variable)
	p.assignment[peg] = individual
}

// VariableDenotation looks up the individual currently denoted by
// variable in this possibility: the peg bound to variable in the
// referent system, then the individual assigned to that peg.
func (p Possibility) VariableDenotation(variable string) (int, error) {
	peg, ok := p.referentSystem.Value(variable)
	if !ok {
		return 0, newUnboundVariable(variable)
	}
	d, ok := p.assignment[peg]
	if !ok {
		return 0, newUnboundVariable(variable)
	}
	return d, nil
}

// extendsPossibility reports whether p2 extends p1: same world, and for
// every peg p1 has mapped, p2 maps the same peg to the same individual.
// Pegs present only in p2 are new discourse referents and impose no
// constraint (spec.md §4.2).
func extendsPossibility(p2, p1 Possibility) bool {
	if p2.World != p1.World {
		return false
	}
	for peg, ind := range p1.assignment {
		ind2, ok := p2.assignment[peg]
		if !ok || ind2 != ind {
			return false
		}
	}
	return true
}

// key returns a canonical representation of p used for set membership
// and deduplication. Two possibilities key equal iff they agree on
// world, on the peg each currently-bound variable is bound to, and on
// the individual assigned to every peg, including pegs a rebinding has
// orphaned (spec.md §4.2, §9): a richer key than "world alone", so two
// possibilities that differ only on an older peg stay distinct.
func (p Possibility) key() string {
	dom := p.referentSystem.Domain()
	vars := make([]string, 0, len(dom))
	for v := range dom {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	var b strings.Builder
	fmt.Fprintf(&b, "w%d", p.World)
	for _, v := range vars {
		peg, _ := p.referentSystem.Value(v)
		fmt.Fprintf(&b, "|%s:%d", v, peg)
	}
	pegs := make([]int, 0, len(p.assignment))
	for peg := range p.assignment {
		pegs = append(pegs, peg)
	}
	sort.Ints(pegs)
	for _, peg := range pegs {
		fmt.Fprintf(&b, "|%d=%d", peg, p.assignment[peg])
	}
	return b.String()
}

// String renders a possibility for diagnostics (used by internal/diagram
// and by manual debugging, not by the evaluator itself).
func (p Possibility) String() string {
	dom := p.referentSystem.Domain()
	vars := make([]string, 0, len(dom))
	for v := range dom {
		vars = append(vars, v)
	}
	sort.Strings(vars)

	parts := make([]string, 0, len(vars))
	for _, v := range vars {
		d, _ := p.VariableDenotation(v)
		parts = append(parts, fmt.Sprintf("%s=%d", v, d))
	}
	return fmt.Sprintf("<w%d, {%s}>", p.World, strings.Join(parts, ", "))
}
