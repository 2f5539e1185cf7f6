package gsv

// This file implements the semantic-relation library built on top of
// Evaluate (spec.md §4.6). Every exported function returns (bool, error)
// rather than swallowing evaluation failures into `false`: spec.md §7 is
// explicit that at this layer "an evaluation error propagates; it is NOT
// treated as 'the relation fails'" — a deliberate departure from the
// original implementation's try/catch-around-out_of_range pattern (see
// DESIGN.md, Open Question decisions).

// Consistent reports whether expr is consistent with state relative to
// model: the update is defined and nonempty.
func Consistent(expr Expression, state InformationState, model Model) (bool, error) {
	out, err := Evaluate(expr, state, model)
	if err != nil {
		return false, err
	}
	return !out.IsEmpty(), nil
}

// Allows is an alias for Consistent with the state/expr arguments
// swapped, matching spec.md's `allows(state, expr, model)`.
func Allows(state InformationState, expr Expression, model Model) (bool, error) {
	return Consistent(expr, state, model)
}

// Supports reports whether state supports expr relative to model: the
// update is defined and state subsists in it.
func Supports(state InformationState, expr Expression, model Model) (bool, error) {
	out, err := Evaluate(expr, state, model)
	if err != nil {
		return false, err
	}
	return StateSubsistsIn(state, out), nil
}

// IsSupportedBy is an alias for Supports with the expr/state arguments
// swapped, matching spec.md's `isSupportedBy(expr, state, model)`.
func IsSupportedBy(expr Expression, state InformationState, model Model) (bool, error) {
	return Supports(state, expr, model)
}

// ConsistentInModel reports whether expr is consistent relative to model
// alone: for every cardinality k up to the world count, some k-element
// sub-state is consistent with expr. Named distinctly from Consistent
// because Go has no overloading for spec.md's two `consistent` arities.
func ConsistentInModel(expr Expression, model Model) (bool, error) {
	w := model.WorldCardinality()
	for k := 0; k < w; k++ {
		found := false
		for _, s := range generateSubStates(w-1, k) {
			ok, err := Consistent(expr, s, model)
			if err != nil {
				return false, err
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// Coherent reports whether expr is coherent relative to model: for every
// cardinality k up to the world count, some nonempty k-element sub-state
// supports expr.
func Coherent(expr Expression, model Model) (bool, error) {
	w := model.WorldCardinality()
	for k := 0; k < w; k++ {
		found := false
		for _, s := range generateSubStates(w-1, k) {
			if s.IsEmpty() {
				continue
			}
			ok, err := Supports(s, expr, model)
			if err != nil {
				return false, err
			}
			if ok {
				found = true
				break
			}
		}
		if !found {
			return false, nil
		}
	}
	return true, nil
}

// applyPremises sequentially updates state with each premise, in order,
// the same way conjunction chains its conjuncts.
func applyPremises(premises []Expression, state InformationState, model Model) (InformationState, error) {
	current := state
	for _, premise := range premises {
		next, err := Evaluate(premise, current, model)
		if err != nil {
			return InformationState{}, err
		}
		current = next
	}
	return current, nil
}

// EntailsZero (`entails_0`) checks entailment against the ignorant state
// alone: apply the premises to Create(model), require the conclusion's
// update to be defined, and require the resulting state to support the
// conclusion.
func EntailsZero(premises []Expression, conclusion Expression, model Model) (bool, error) {
	updated, err := applyPremises(premises, Create(model), model)
	if err != nil {
		return false, err
	}
	if _, err := Evaluate(conclusion, updated, model); err != nil {
		return false, err
	}
	return Supports(updated, conclusion, model)
}

// Entails (`entails_G`, the default entailment relation) checks that for
// every sub-state of every cardinality, sequentially updating with the
// premises produces a state that supports the conclusion. It returns
// false on the first counterexample sub-state.
func Entails(premises []Expression, conclusion Expression, model Model) (bool, error) {
	w := model.WorldCardinality()
	for k := 0; k <= w; k++ {
		for _, s := range generateSubStates(w-1, k) {
			updated, err := applyPremises(premises, s, model)
			if err != nil {
				return false, err
			}
			ok, err := Supports(updated, conclusion, model)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// EntailsC (`entails_C`) checks that every sub-state supporting all the
// premises also supports the conclusion, without sequentially updating
// the sub-state itself.
func EntailsC(premises []Expression, conclusion Expression, model Model) (bool, error) {
	w := model.WorldCardinality()
	for k := 0; k <= w; k++ {
		for _, s := range generateSubStates(w-1, k) {
			allSupported := true
			for _, premise := range premises {
				ok, err := Supports(s, premise, model)
				if err != nil {
					return false, err
				}
				if !ok {
					allSupported = false
					break
				}
			}
			if !allSupported {
				continue
			}
			ok, err := Supports(s, conclusion, model)
			if err != nil {
				return false, err
			}
			if !ok {
				return false, nil
			}
		}
	}
	return true, nil
}

// similarPossibility reports whether p1 and p2 agree on world and on the
// denotation of every variable either one's referent system currently
// binds (spec.md §4.6). Unlike possibility equality (Possibility.key),
// which InformationState uses for set membership, similarity is a
// relation between possibilities that may belong to entirely different
// referent-system lineages — exactly the case Equivalent needs when
// comparing two independently-evaluated expressions.
func similarPossibility(p1, p2 Possibility) bool {
	if p1.World != p2.World {
		return false
	}
	dom1 := p1.referentSystem.Domain()
	dom2 := p2.referentSystem.Domain()
	if len(dom1) != len(dom2) {
		return false
	}
	for v := range dom1 {
		if _, ok := dom2[v]; !ok {
			return false
		}
		d1, err1 := p1.VariableDenotation(v)
		d2, err2 := p2.VariableDenotation(v)
		if err1 != nil || err2 != nil || d1 != d2 {
			return false
		}
	}
	return true
}

// similarState reports whether every possibility of s1 has a similar
// counterpart in s2 and vice versa.
func similarState(s1, s2 InformationState) bool {
	hasSimilarCounterpart := func(p Possibility, in InformationState) bool {
		for _, q := range in.Possibilities() {
			if similarPossibility(p, q) {
				return true
			}
		}
		return false
	}

	for _, p := range s1.Possibilities() {
		if !hasSimilarCounterpart(p, s2) {
			return false
		}
	}
	for _, p := range s2.Possibilities() {
		if !hasSimilarCounterpart(p, s1) {
			return false
		}
	}
	return true
}

// Equivalent reports whether expr1 and expr2 are equivalent relative to
// model: for every sub-state of every cardinality, their updates are
// similar.
func Equivalent(expr1, expr2 Expression, model Model) (bool, error) {
	w := model.WorldCardinality()
	for k := 0; k <= w; k++ {
		for _, s := range generateSubStates(w-1, k) {
			out1, err := Evaluate(expr1, s, model)
			if err != nil {
				return false, err
			}
			out2, err := Evaluate(expr2, s, model)
			if err != nil {
				return false, err
			}
			if !similarState(out1, out2) {
				return false, nil
			}
		}
	}
	return true, nil
}
