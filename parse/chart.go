package parse

import (
	"fmt"
	"strings"

	"github.com/dhamidi/chart/grammar"
)

// Item is an Earley item: a rule instance with a dot position and the
// chart position where recognition of its left-hand symbol began.
type Item struct {
	Rule   grammar.Rule
	Origin int
	Dot    int

	// prev holds, in left-to-right order, the completed sub-items that
	// justified each non-terminal consumed so far. Terminals consumed
	// by scanning contribute no entry. prev is excluded from item
	// identity: of two derivations reaching the same (rule, origin,
	// dot), only the first-discovered one keeps its backpointers.
	prev []*Item
}

func (item *Item) String() string {
	rhs := make([]string, 0, len(item.Rule.Rhs)+1)
	rhs = append(rhs, item.Rule.Rhs[:item.Dot]...)
	rhs = append(rhs, "•")
	rhs = append(rhs, item.Rule.Rhs[item.Dot:]...)
	return fmt.Sprintf("%s -> %s (%d)", item.Rule.Lhs, strings.Join(rhs, " "), item.Origin)
}

func (item *Item) key() string {
	return fmt.Sprintf("%s:%d:%d", item.Rule, item.Origin, item.Dot)
}

// ItemSet is the collection of items at one chart position. Membership
// is keyed by (rule, origin, dot); iteration follows insertion order.
type ItemSet struct {
	items []*Item
	seen  map[string]bool
}

func newItemSet() *ItemSet {
	return &ItemSet{seen: make(map[string]bool)}
}

// Add inserts item unless an equal one is already present, and reports
// whether insertion happened.
func (s *ItemSet) Add(item *Item) bool {
	key := item.key()
	if s.seen[key] {
		return false
	}
	s.seen[key] = true
	s.items = append(s.items, item)
	return true
}

// Items returns the items in insertion order. The engine appends to a
// set while walking it by index; anyone iterating a live set must use
// an index cursor rather than a range snapshot.
func (s *ItemSet) Items() []*Item {
	return s.items
}
