package gsv

// TermKind tags a Term as a discourse variable or a rigid constant.
type TermKind uint8

const (
	Variable TermKind = iota
	Constant
)

// Term is a singular term: a variable bound by a quantifier or a
// discourse antecedent, or a constant interpreted directly by the model.
type Term struct {
	Kind    TermKind
	Literal string
}

// Var builds a variable term.
func Var(literal string) Term { return Term{Kind: Variable, Literal: literal} }

// Const builds a constant term.
func Const(literal string) Term { return Term{Kind: Constant, Literal: literal} }

func (t Term) String() string { return t.Literal }
