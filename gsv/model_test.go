package gsv

import "fmt"

// testModel is a minimal in-memory gsv.Model used across the core test
// suite. It intentionally duplicates none of internal/modelspec's YAML
// loading machinery — the core tests only need a bare table.
type testModel struct {
	worlds     int
	domain     int
	terms      map[string]map[int]int     // term -> world -> individual
	predicates map[string]map[int][][]int // predicate -> world -> tuples
}

func (m *testModel) WorldCardinality() int  { return m.worlds }
func (m *testModel) DomainCardinality() int { return m.domain }

func (m *testModel) TermInterpretation(term string, world int) (int, error) {
	byWorld, ok := m.terms[term]
	if !ok {
		return 0, fmt.Errorf("term %q not interpreted", term)
	}
	d, ok := byWorld[world]
	if !ok {
		return 0, fmt.Errorf("term %q not interpreted at world %d", term, world)
	}
	return d, nil
}

func (m *testModel) PredicateInterpretation(predicate string, world int) ([][]int, error) {
	byWorld, ok := m.predicates[predicate]
	if !ok {
		return nil, fmt.Errorf("predicate %q not interpreted", predicate)
	}
	tuples, ok := byWorld[world]
	if !ok {
		return nil, fmt.Errorf("predicate %q not interpreted at world %d", predicate, world)
	}
	return tuples, nil
}

// exampleModel builds the two-world, two-individual model used
// throughout spec.md §8's end-to-end scenarios: P holds of e0 at w0, and
// of e0 and e1 at w1.
func exampleModel() *testModel {
	return &testModel{
		worlds: 2,
		domain: 2,
		terms:  map[string]map[int]int{},
		predicates: map[string]map[int][][]int{
			"P": {
				0: {{0}},
				1: {{0}, {1}},
			},
		},
	}
}
