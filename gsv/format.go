package gsv

import (
	"fmt"
	"strings"
)

// Formatter renders an Expression as a diagnostic string. spec.md §6
// treats the printed form as produced by an external formatter and
// requires the core to treat its rendering as opaque; Format is a
// package variable rather than a parameter threaded through Evaluate so
// the exported evaluator signature matches spec.md exactly
// (Evaluate(expr, state, model)). Callers embedding this package in a
// larger system with their own pretty-printer can replace it.
type Formatter func(Expression) string

// Format is the formatter used to render expressions inside evaluation
// error traces. defaultFormat renders the six connectives as
// conventional logical glyphs.
var Format Formatter = defaultFormat

func defaultFormat(expr Expression) string {
	var b strings.Builder
	writeExpr(&b, expr)
	return b.String()
}

func writeExpr(b *strings.Builder, expr Expression) {
	switch e := expr.(type) {
	case UnaryExpr:
		switch e.Op {
		case Negation:
			b.WriteString("¬")
		case EpistemicPossibility:
			b.WriteString("◇")
		case EpistemicNecessity:
			b.WriteString("□")
		default:
			b.WriteString("?")
		}
		writeExpr(b, e.Scope)
	case BinaryExpr:
		b.WriteString("(")
		writeExpr(b, e.Left)
		switch e.Op {
		case Conjunction:
			b.WriteString(" ∧ ")
		case Disjunction:
			b.WriteString(" ∨ ")
		case Conditional:
			b.WriteString(" → ")
		default:
			b.WriteString(" ? ")
		}
		writeExpr(b, e.Right)
		b.WriteString(")")
	case QuantificationExpr:
		switch e.Quantifier {
		case Existential:
			fmt.Fprintf(b, "∃%s.", e.Variable)
		case Universal:
			fmt.Fprintf(b, "∀%s.", e.Variable)
		default:
			fmt.Fprintf(b, "?%s.", e.Variable)
		}
		writeExpr(b, e.Scope)
	case IdentityExpr:
		fmt.Fprintf(b, "%s = %s", e.Left.Literal, e.Right.Literal)
	case PredicationExpr:
		args := make([]string, len(e.Arguments))
		for i, a := range e.Arguments {
			args[i] = a.Literal
		}
		fmt.Fprintf(b, "%s(%s)", e.Predicate, strings.Join(args, ", "))
	default:
		b.WriteString("<invalid expression>")
	}
}
