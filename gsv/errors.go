package gsv

import "fmt"

// ErrKind tags the distinct failure modes an evaluation can hit
// (spec.md §7). It is embedded in EvalError so callers can recover the
// underlying kind with errors.As, even after the message has been
// wrapped several times on the way out of nested subformulas.
type ErrKind uint8

const (
	ErrUnboundVariable ErrKind = iota
	ErrUninterpretedTerm
	ErrUninterpretedPredicate
	ErrInvalidOperator
	ErrInvalidQuantifier
)

func (k ErrKind) String() string {
	switch k {
	case ErrUnboundVariable:
		return "UnboundVariable"
	case ErrUninterpretedTerm:
		return "UninterpretedTerm"
	case ErrUninterpretedPredicate:
		return "UninterpretedPredicate"
	case ErrInvalidOperator:
		return "InvalidOperator"
	case ErrInvalidQuantifier:
		return "InvalidQuantifier"
	default:
		return "Unknown"
	}
}

// EvalError is the leaf error produced at the point a denotation lookup
// or AST validation fails. It is never itself pretty-printed with the
// enclosing-formula trace; wrapExprError does that at each level of
// recursion on the way back out (spec.md §7).
type EvalError struct {
	Kind    ErrKind
	Message string
}

func (e *EvalError) Error() string { return e.Message }

func newUnboundVariable(variable string) error {
	return &EvalError{Kind: ErrUnboundVariable, Message: fmt.Sprintf("variable %q is not bound", variable)}
}

func newUninterpretedTerm(term string, world int) error {
	return &EvalError{Kind: ErrUninterpretedTerm, Message: fmt.Sprintf("term %q is not interpreted at world %d", term, world)}
}

func newUninterpretedPredicate(predicate string, world int) error {
	return &EvalError{Kind: ErrUninterpretedPredicate, Message: fmt.Sprintf("predicate %q is not interpreted at world %d", predicate, world)}
}

func newInvalidOperator(context string) error {
	return &EvalError{Kind: ErrInvalidOperator, Message: fmt.Sprintf("invalid operator for %s formula", context)}
}

func newInvalidQuantifier() error {
	return &EvalError{Kind: ErrInvalidQuantifier, Message: "invalid quantifier"}
}

// wrapExprError wraps err with the printed form of the expression whose
// evaluation produced or propagated it, per the format required by
// spec.md §6-7: "In evaluating formula <printed form>:\n<nested message>".
func wrapExprError(expr Expression, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("In evaluating formula %s:\n%w", Format(expr), err)
}
