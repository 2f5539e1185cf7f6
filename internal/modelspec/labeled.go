package modelspec

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// LabeledSystem is a labeled transition system: a set of named states,
// a transition relation between them, and a set of propositions each
// state satisfies. It generalizes the teacher's KripkeStructure type,
// swapping CTL model-checking for the GSV world/domain shape.
type LabeledSystem struct {
	States      []string
	Transitions map[string][]string
	Labeling    map[string][]string
}

// NewLabeledSystem returns an empty labeled system.
func NewLabeledSystem() *LabeledSystem {
	return &LabeledSystem{
		Transitions: make(map[string][]string),
		Labeling:    make(map[string][]string),
	}
}

// AddState registers s, if it is not already present.
func (l *LabeledSystem) AddState(s string) {
	for _, existing := range l.States {
		if existing == s {
			return
		}
	}
	l.States = append(l.States, s)
}

// AddTransition records an edge from -> to, registering both endpoints.
func (l *LabeledSystem) AddTransition(from, to string) {
	l.AddState(from)
	l.AddState(to)
	l.Transitions[from] = append(l.Transitions[from], to)
}

// AddLabel records that s satisfies proposition p.
func (l *LabeledSystem) AddLabel(s, p string) {
	l.AddState(s)
	l.Labeling[s] = append(l.Labeling[s], p)
}

// FromLabeledSystem builds a Table from a labeled transition system:
// each state becomes a world, each proposition held at a state becomes
// a zero-arity predicate true at that world, and the domain is the set
// of states reachable within one transition from any state — giving a
// nonempty, nontrivial domain for demos and entailment tests without
// requiring the caller to invent individuals by hand.
func FromLabeledSystem(l *LabeledSystem) *Table {
	states := append([]string(nil), l.States...)
	sort.Strings(states)
	worldOf := make(map[string]int, len(states))
	for i, s := range states {
		worldOf[s] = i
	}

	reachable := make(map[int]struct{})
	for from, tos := range l.Transitions {
		for _, to := range tos {
			reachable[worldOf[to]] = struct{}{}
		}
		_ = from
	}
	domain := len(reachable)
	if domain == 0 {
		domain = 1
	}
	individualOf := make(map[int]int, len(reachable))
	{
		worlds := make([]int, 0, len(reachable))
		for w := range reachable {
			worlds = append(worlds, w)
		}
		sort.Ints(worlds)
		for i, w := range worlds {
			individualOf[w] = i
		}
	}

	table := NewTable(len(states), domain)

	// A zero-arity predicate P(): its "tuple" is the empty tuple, true
	// at a world exactly when the corresponding state carries the label.
	propositions := make(map[string]struct{})
	for _, labels := range l.Labeling {
		for _, p := range labels {
			propositions[p] = struct{}{}
		}
	}
	for p := range propositions {
		for _, s := range states {
			world := worldOf[s]
			if hasLabel(l, s, p) {
				table.DefinePredicate(p, world, [][]int{{}})
			} else {
				table.DefinePredicate(p, world, [][]int{})
			}
		}
	}

	// "successor" relates a world to the individuals reachable from it
	// in one transition, letting formulas quantify over a state's
	// successors the way CTL's EX/AX would.
	for _, s := range states {
		world := worldOf[s]
		tuples := make([][]int, 0, len(l.Transitions[s]))
		for _, to := range l.Transitions[s] {
			if ind, ok := individualOf[worldOf[to]]; ok {
				tuples = append(tuples, []int{ind})
			}
		}
		table.DefinePredicate("successor", world, tuples)
	}

	return table
}

func hasLabel(l *LabeledSystem, state, proposition string) bool {
	for _, p := range l.Labeling[state] {
		if p == proposition {
			return true
		}
	}
	return false
}

// labeledDocument is the on-disk YAML shape LoadLabeledSystem reads:
//
//	states: [s0, s1, s2]
//	transitions:
//	  s0: [s1, s2]
//	  s1: [s2]
//	labels:
//	  s0: [start]
//	  s1: [safe]
//	  s2: [safe]
type labeledDocument struct {
	States      []string            `yaml:"states"`
	Transitions map[string][]string `yaml:"transitions"`
	Labels      map[string][]string `yaml:"labels"`
}

// LoadLabeledSystem reads a labeled-transition-system description from
// path, the input format `gsv gen-model --from-labeled` consumes.
func LoadLabeledSystem(path string) (*LabeledSystem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("modelspec: reading %s: %w", path, err)
	}
	var doc labeledDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("modelspec: parsing labeled system: %w", err)
	}

	l := NewLabeledSystem()
	for _, s := range doc.States {
		l.AddState(s)
	}
	for from, tos := range doc.Transitions {
		for _, to := range tos {
			l.AddTransition(from, to)
		}
	}
	for state, labels := range doc.Labels {
		for _, p := range labels {
			l.AddLabel(state, p)
		}
	}
	return l, nil
}
