package modelspec

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// document mirrors the on-disk YAML shape LoadYAML reads:
//
//	worlds: 3
//	domain: 3
//	terms:
//	  c: [0, 1, -1]        # -1 marks "undefined at this world"
//	predicates:
//	  P:
//	    0: [[0], [1]]
//	    1: [[2]]
type document struct {
	Worlds     int                    `yaml:"worlds"`
	Domain     int                    `yaml:"domain"`
	Terms      map[string][]int       `yaml:"terms"`
	Predicates map[string]map[int][][]int `yaml:"predicates"`
}

// LoadYAML reads a model description from path and builds a Table.
func LoadYAML(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelspec: reading %s: %w", path, err)
	}
	return ParseYAML(raw)
}

// ParseYAML builds a Table from an in-memory YAML document, the shape
// LoadYAML reads from disk. Exposed separately so callers embedding
// model descriptions (tests, gen-model output) don't need a temp file.
func ParseYAML(raw []byte) (*Table, error) {
	var doc document
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("modelspec: parsing model: %w", err)
	}
	if doc.Worlds <= 0 {
		return nil, fmt.Errorf("modelspec: model must declare at least one world")
	}
	if doc.Domain <= 0 {
		return nil, fmt.Errorf("modelspec: model must declare at least one individual")
	}

	table := NewTable(doc.Worlds, doc.Domain)
	for constant, denotations := range doc.Terms {
		if len(denotations) != doc.Worlds {
			return nil, fmt.Errorf("modelspec: term %q must give one denotation per world (want %d, got %d)", constant, doc.Worlds, len(denotations))
		}
		table.DefineTerm(constant, denotations)
	}
	for predicate, byWorld := range doc.Predicates {
		for world, tuples := range byWorld {
			if world < 0 || world >= doc.Worlds {
				return nil, fmt.Errorf("modelspec: predicate %q references out-of-range world %d", predicate, world)
			}
			table.DefinePredicate(predicate, world, tuples)
		}
	}
	return table, nil
}

// Marshal renders table back into the YAML shape ParseYAML reads, used
// by `gsv gen-model` to persist a Table built from a labeled transition
// system.
func Marshal(table *Table) ([]byte, error) {
	doc := document{
		Worlds:     table.worlds,
		Domain:     table.domain,
		Terms:      table.terms,
		Predicates: table.predicates,
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("modelspec: marshaling model: %w", err)
	}
	return out, nil
}
