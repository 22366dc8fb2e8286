// Package maxtrie implements a subset-dominance trie: over a stream of
// (subset, value) insertions it retains only the pairs not dominated by
// a stored subset with an equal-or-greater value.
package maxtrie

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// Trie indexes (sorted-subset, value) pairs. Each edge is labeled by a
// key, children are sorted by key, and every path from the root spells a
// strictly ascending key sequence. A node's terminal value, when set,
// stores the value of the exact subset its path spells.
//
// Invariant maintained by InsertIfMax: no stored pair is dominated by
// another stored pair over a subset of its keys with a value >= its own.
//
// The zero Trie is ready to use.
type Trie[K cmp.Ordered, V cmp.Ordered] struct {
	root node[K, V]
	size int
}

// node is one trie level. terminal distinguishes "value stored here"
// from the zero value of V.
type node[K cmp.Ordered, V cmp.Ordered] struct {
	value    V
	terminal bool
	children []child[K, V]
}

// child pairs an edge key with its subtree, kept sorted by key.
type child[K cmp.Ordered, V cmp.Ordered] struct {
	key  K
	node *node[K, V]
}

// NewTrie creates an empty Trie.
func NewTrie[K cmp.Ordered, V cmp.Ordered]() *Trie[K, V] {
	return &Trie[K, V]{}
}

// InsertIfMax inserts the pair (set, value) unless a stored subset of set
// already carries a value >= value. On insertion, a previously stored
// value at the exact set is overwritten (it was strictly smaller, hence
// now dominated). Returns true when the pair was stored, false when it
// was rejected as dominated or superseded.
//
// set must be strictly ascending (sorted, deduplicated); violating that
// is a caller contract violation and panics. Re-inserting an identical
// pair always returns false: a pair never strictly improves on itself.
//
// Cost: the dominated-subset query visits every stored branch whose key
// sequence stays within set, O(stored entries) worst case; intended for
// small universes (<= 64 keys, one machine word) where the ascending-key
// filter prunes most branches immediately.
func (t *Trie[K, V]) InsertIfMax(set []K, value V) bool {
	for i := 1; i < len(set); i++ {
		if set[i] <= set[i-1] {
			panic(fmt.Sprintf("maxtrie: set is not strictly ascending at position %d", i))
		}
	}

	if t.root.dominated(set, value) {
		return false
	}
	if t.root.insert(set, value) {
		t.size++
	}

	return true
}

// Len returns the number of stored pairs.
func (t *Trie[K, V]) Len() int { return t.size }

// dominated reports whether some stored subset of set carries a value
// >= value. It walks set and the sorted children like a merge: every
// child whose key equals a remaining set member is a candidate branch
// (a stored subset may diverge from set's own key sequence early, which
// is why all matching branches are tried, not just the exact path).
func (n *node[K, V]) dominated(set []K, value V) bool {
	if n.terminal && n.value >= value {
		return true
	}

	children := n.children
	for len(set) > 0 && len(children) > 0 {
		key := set[0]
		set = set[1:]

		i, found := slices.BinarySearchFunc(children, key, func(c child[K, V], k K) int {
			return cmp.Compare(c.key, k)
		})
		if found {
			if children[i].node.dominated(set, value) {
				return true
			}
			i++
		}
		// Children with keys below the next set member can never match a
		// remaining key again; drop them from the window.
		children = children[i:]
	}

	return false
}

// insert stores value at the exact terminal for set, creating branch
// nodes as needed. Reports whether a new terminal was created (as
// opposed to overwriting an existing one).
func (n *node[K, V]) insert(set []K, value V) bool {
	if len(set) == 0 {
		created := !n.terminal
		n.value, n.terminal = value, true

		return created
	}

	key := set[0]
	i, found := slices.BinarySearchFunc(n.children, key, func(c child[K, V], k K) int {
		return cmp.Compare(c.key, k)
	})
	if !found {
		n.children = slices.Insert(n.children, i, child[K, V]{key: key, node: &node[K, V]{}})
	}

	return n.children[i].node.insert(set[1:], value)
}

// String renders the trie as an indented tree, one node per line, for
// debugging and test failure output.
func (t *Trie[K, V]) String() string {
	var sb strings.Builder

	type frame struct {
		n     *node[K, V]
		key   string
		depth int
	}
	stack := []frame{{n: &t.root, key: "root"}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sb.WriteString(strings.Repeat("  ", f.depth))
		sb.WriteString(f.key)
		if f.n.terminal {
			fmt.Fprintf(&sb, ": %v", f.n.value)
		} else {
			sb.WriteString(": -")
		}
		sb.WriteByte('\n')

		for i := len(f.n.children) - 1; i >= 0; i-- {
			c := f.n.children[i]
			stack = append(stack, frame{n: c.node, key: fmt.Sprintf("%v", c.key), depth: f.depth + 1})
		}
	}

	return sb.String()
}
