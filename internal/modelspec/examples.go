package modelspec

// exampleBuilders holds the built-in models keyed by name, in the same
// spirit as the teacher's models/mm1 and models/purple stubs — small,
// named, ready-to-evaluate scenarios the CLI's --example flag and the
// test suite can reach for without writing a YAML file.
var exampleBuilders = map[string]func() *Table{
	"two-world": buildTwoWorldExample,
	"anaphora":  buildAnaphoraExample,
	"modal":     buildModalExample,
}

// Example returns the built-in model registered under name, if any.
func Example(name string) (*Table, bool) {
	build, ok := exampleBuilders[name]
	if !ok {
		return nil, false
	}
	return build(), true
}

// ExampleNames lists the built-in model names, sorted, for CLI help
// text and tests.
func ExampleNames() []string {
	names := make([]string, 0, len(exampleBuilders))
	for name := range exampleBuilders {
		names = append(names, name)
	}
	// small fixed set; a manual sort keeps this file dependency-free
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return names
}

// buildTwoWorldExample is the same two-world, two-individual model the
// core test suite builds as exampleModel for its scenarios: P holds of
// e0 at w0, and of e0 and e1 at w1.
func buildTwoWorldExample() *Table {
	t := NewTable(2, 2)
	t.DefinePredicate("P", 0, [][]int{{0}})
	t.DefinePredicate("P", 1, [][]int{{0}, {1}})
	return t
}

// buildAnaphoraExample adds a second predicate so "a farmer owns a
// donkey; he beats it" style discourse-anaphora formulas have something
// to bind across a conjunction.
func buildAnaphoraExample() *Table {
	t := NewTable(2, 3)
	t.DefinePredicate("Farmer", 0, [][]int{{0}, {1}})
	t.DefinePredicate("Farmer", 1, [][]int{{0}})
	t.DefinePredicate("Donkey", 0, [][]int{{2}})
	t.DefinePredicate("Donkey", 1, [][]int{{1}, {2}})
	t.DefinePredicate("Owns", 0, [][]int{{0, 2}})
	t.DefinePredicate("Owns", 1, [][]int{{0, 1}})
	return t
}

// buildModalExample gives every epistemic-modal scenario at least one
// world where the prejacent fails, so ◇/□ formulas are not vacuous.
func buildModalExample() *Table {
	t := NewTable(3, 2)
	t.DefinePredicate("Rain", 0, [][]int{})
	t.DefinePredicate("Rain", 1, [][]int{{0}})
	t.DefinePredicate("Rain", 2, [][]int{{0}, {1}})
	return t
}
