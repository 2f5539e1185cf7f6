// Package modelspec supplies concrete gsv.Model implementations. The
// core package deliberately leaves "the model" abstract (spec.md §1);
// this package is the reference implementation a caller actually
// evaluates formulas against.
package modelspec

import "fmt"

// Table is an in-memory gsv.Model backed by flat tables: one term
// interpretation per world, one predicate extension per world.
type Table struct {
	worlds     int
	domain     int
	terms      map[string][]int          // term -> world -> individual
	predicates map[string]map[int][][]int // predicate -> world -> tuples
}

// NewTable builds an empty table over the given world and domain
// cardinalities. Terms and predicates are added with DefineTerm and
// DefinePredicate.
func NewTable(worldCardinality, domainCardinality int) *Table {
	return &Table{
		worlds:     worldCardinality,
		domain:     domainCardinality,
		terms:      make(map[string][]int),
		predicates: make(map[string]map[int][][]int),
	}
}

// DefineTerm fixes the individual a constant denotes at every world. len(denotations)
// must equal the table's world cardinality; a negative denotation leaves the term
// undefined at that world.
func (t *Table) DefineTerm(constant string, denotations []int) {
	t.terms[constant] = denotations
}

// DefinePredicate fixes the extension of predicate at world.
func (t *Table) DefinePredicate(predicate string, world int, tuples [][]int) {
	byWorld, ok := t.predicates[predicate]
	if !ok {
		byWorld = make(map[int][][]int)
		t.predicates[predicate] = byWorld
	}
	byWorld[world] = tuples
}

func (t *Table) WorldCardinality() int  { return t.worlds }
func (t *Table) DomainCardinality() int { return t.domain }

func (t *Table) TermInterpretation(term string, world int) (int, error) {
	denotations, ok := t.terms[term]
	if !ok || world < 0 || world >= len(denotations) {
		return 0, fmt.Errorf("modelspec: term %q not interpreted at world %d", term, world)
	}
	d := denotations[world]
	if d < 0 {
		return 0, fmt.Errorf("modelspec: term %q not interpreted at world %d", term, world)
	}
	return d, nil
}

func (t *Table) PredicateInterpretation(predicate string, world int) ([][]int, error) {
	byWorld, ok := t.predicates[predicate]
	if !ok {
		return nil, fmt.Errorf("modelspec: predicate %q not interpreted", predicate)
	}
	tuples, ok := byWorld[world]
	if !ok {
		return nil, fmt.Errorf("modelspec: predicate %q not interpreted at world %d", predicate, world)
	}
	return tuples, nil
}
