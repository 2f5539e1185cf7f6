package gsv

// Evaluate computes the GSV update of expr on the input information
// state relative to model: ⟦expr⟧(input, model) in the notation of
// spec.md §4.4. The input state is never mutated; Evaluate always
// returns a fresh InformationState (or wraps and returns an error
// without touching input at all).
//
// Every error that escapes a recursive sub-evaluation is wrapped here
// with the printed form of expr, so a failure deep inside a formula
// surfaces as a trace from the outermost enclosing formula down to the
// innermost one that actually failed (spec.md §6-7).
func Evaluate(expr Expression, input InformationState, model Model) (InformationState, error) {
	out, err := evalNode(expr, input, model)
	if err != nil {
		return InformationState{}, wrapExprError(expr, err)
	}
	return out, nil
}

func evalNode(expr Expression, input InformationState, model Model) (InformationState, error) {
	switch e := expr.(type) {
	case UnaryExpr:
		return evalUnary(e, input, model)
	case BinaryExpr:
		return evalBinary(e, input, model)
	case QuantificationExpr:
		return evalQuantification(e, input, model)
	case IdentityExpr:
		return evalIdentity(e, input, model)
	case PredicationExpr:
		return evalPredication(e, input, model)
	default:
		return InformationState{}, newInvalidOperator("unrecognized")
	}
}

func evalUnary(e UnaryExpr, input InformationState, model Model) (InformationState, error) {
	hypothetical, err := Evaluate(e.Scope, input, model)
	if err != nil {
		return InformationState{}, err
	}

	switch e.Op {
	case EpistemicPossibility:
		if hypothetical.IsEmpty() {
			return emptyState(), nil
		}
		return input, nil

	case EpistemicNecessity:
		if !StateSubsistsIn(input, hypothetical) {
			return emptyState(), nil
		}
		return input, nil

	case Negation:
		return input.filter(func(p Possibility) bool {
			return !SubsistsIn(p, hypothetical)
		}), nil

	default:
		return InformationState{}, newInvalidOperator("unary")
	}
}

func evalBinary(e BinaryExpr, input InformationState, model Model) (InformationState, error) {
	switch e.Op {
	case Conjunction:
		left, err := Evaluate(e.Left, input, model)
		if err != nil {
			return InformationState{}, err
		}
		return Evaluate(e.Right, left, model)

	case Disjunction:
		leftUpdate, err := Evaluate(e.Left, input, model)
		if err != nil {
			return InformationState{}, err
		}
		negatedLeft, err := Evaluate(negate(e.Left), input, model)
		if err != nil {
			return InformationState{}, err
		}
		rightUpdate, err := Evaluate(e.Right, negatedLeft, model)
		if err != nil {
			return InformationState{}, err
		}
		return input.filter(func(p Possibility) bool {
			return leftUpdate.Contains(p) || rightUpdate.Contains(p)
		}), nil

	case Conditional:
		antecedent, err := Evaluate(e.Left, input, model)
		if err != nil {
			return InformationState{}, err
		}
		consequent, err := Evaluate(e.Right, antecedent, model)
		if err != nil {
			return InformationState{}, err
		}
		return input.filter(func(p Possibility) bool {
			if !SubsistsIn(p, antecedent) {
				return true
			}
			for _, descendant := range antecedent.Possibilities() {
				if IsDescendantOf(descendant, p, antecedent) && !SubsistsIn(descendant, consequent) {
					return false
				}
			}
			return true
		}), nil

	default:
		return InformationState{}, newInvalidOperator("binary")
	}
}

func evalQuantification(e QuantificationExpr, input InformationState, model Model) (InformationState, error) {
	domain := model.DomainCardinality()

	switch e.Quantifier {
	case Existential:
		output := emptyState()
		for d := 0; d < domain; d++ {
			branch, err := Evaluate(e.Scope, input.Update(e.Variable, d), model)
			if err != nil {
				return InformationState{}, err
			}
			output = output.union(branch)
		}
		return output, nil

	case Universal:
		branches := make([]InformationState, 0, domain)
		for d := 0; d < domain; d++ {
			branch, err := Evaluate(e.Scope, input.Update(e.Variable, d), model)
			if err != nil {
				return InformationState{}, err
			}
			branches = append(branches, branch)
		}
		return input.filter(func(p Possibility) bool {
			for _, branch := range branches {
				if !SubsistsIn(p, branch) {
					return false
				}
			}
			return true
		}), nil

	default:
		return InformationState{}, newInvalidQuantifier()
	}
}

// evalIdentity and evalPredication walk input.Possibilities() (sorted,
// deterministic order) rather than the underlying map directly, so that
// which possibility's denotation failure gets reported — when several
// possibilities would fail — never depends on Go's randomized map
// iteration order (spec.md §5).

func evalIdentity(e IdentityExpr, input InformationState, model Model) (InformationState, error) {
	result := emptyState()
	for _, p := range input.Possibilities() {
		lhs, err := denote(e.Left, p, model)
		if err != nil {
			return InformationState{}, err
		}
		rhs, err := denote(e.Right, p, model)
		if err != nil {
			return InformationState{}, err
		}
		if lhs == rhs {
			result.insert(p)
		}
	}
	return result, nil
}

func evalPredication(e PredicationExpr, input InformationState, model Model) (InformationState, error) {
	result := emptyState()
	for _, p := range input.Possibilities() {
		tuple := make([]int, len(e.Arguments))
		for i, arg := range e.Arguments {
			d, err := denote(arg, p, model)
			if err != nil {
				return InformationState{}, err
			}
			tuple[i] = d
		}
		extension, err := model.PredicateInterpretation(e.Predicate, p.World)
		if err != nil {
			return InformationState{}, newUninterpretedPredicate(e.Predicate, p.World)
		}
		if tupleIn(tuple, extension) {
			result.insert(p)
		}
	}
	return result, nil
}

// denote resolves the individual a term picks out at possibility p: a
// variable's denotation comes from p's assignment, a constant's from the
// model at p's world (spec.md §4.4).
func denote(t Term, p Possibility, model Model) (int, error) {
	if t.Kind == Variable {
		d, err := p.VariableDenotation(t.Literal)
		if err != nil {
			return 0, err
		}
		return d, nil
	}
	d, err := model.TermInterpretation(t.Literal, p.World)
	if err != nil {
		return 0, newUninterpretedTerm(t.Literal, p.World)
	}
	return d, nil
}

func tupleIn(tuple []int, extension [][]int) bool {
	for _, candidate := range extension {
		if len(candidate) != len(tuple) {
			continue
		}
		match := true
		for i := range tuple {
			if candidate[i] != tuple[i] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
