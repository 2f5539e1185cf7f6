// Package gsv implements the update semantics of quantified modal logic
// described by Groenendijk, Stokhof and Veltman: a compositional function
// from formulas and information states to information states, plus a
// small library of semantic relations built on top of it.
package gsv

// Model is the interface the evaluator consumes for the base structure a
// formula is evaluated against. Concrete models (finite tables, models
// loaded from a config file, models built from a labeled transition
// system, ...) live outside this package; gsv only ever depends on this
// interface.
type Model interface {
	// WorldCardinality returns the number of possible worlds, indexed
	// 0..WorldCardinality()-1.
	WorldCardinality() int

	// DomainCardinality returns the number of individuals in the domain
	// of discourse, indexed 0..DomainCardinality()-1.
	DomainCardinality() int

	// TermInterpretation returns the individual a constant denotes at a
	// world. It returns a non-nil error when the term has no
	// interpretation in the model at that world.
	TermInterpretation(term string, world int) (int, error)

	// PredicateInterpretation returns the extension of a predicate at a
	// world, as a set of argument tuples. It returns a non-nil error
	// when the predicate has no interpretation in the model at that
	// world.
	PredicateInterpretation(predicate string, world int) ([][]int, error)
}
