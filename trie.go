package radix

import (
	"golang.org/x/exp/slices"
)

// Trie is a compressed prefix tree mapping string keys to values of type T.
// The zero value is an empty trie ready to use.
type Trie[T any] struct {
	root node[T]
	size int
}

// New returns an empty trie, optionally seeded with initial items.
func New[T any](init ...Item[T]) *Trie[T] {
	tr := &Trie[T]{}

	for _, item := range init {
		tr.Set(item.Key, item.Val)
	}

	return tr
}

// Len returns the number of keys in the trie.
func (t *Trie[T]) Len() int {
	return t.size
}

// Empty reports whether the trie holds no keys.
func (t *Trie[T]) Empty() bool {
	return t.size == 0
}

// Set associates a value with a key and returns the previous value (if
// any). Setting the empty key is a no-op.
func (t *Trie[T]) Set(key string, val T) (prev T, replaced bool) {
	return t.Replace(key, func(T, bool) T { return val })
}

// Replace applies a func to the previous value of a key (the zero value and
// false when the key is absent) and stores the result. Returns the previous
// value. Replacing under the empty key is a no-op and the func is not
// called.
func (t *Trie[T]) Replace(key string, replace func(prev T, ok bool) T) (prev T, ok bool) {
	var (
		zero T
		cur  = &t.root
	)

	for key != "" {
		m := classify(cur.children, key)

		switch m.kind {
		case matchNone, matchDisjoint:
			// no overlap with any sibling - a fresh leaf at the insertion
			// position keeps the list sorted
			cur.children = slices.Insert(cur.children, m.index, newLeaf(key, replace(zero, false)))
			t.size++
			return

		case matchExact:
			target := cur.children[m.index]

			prev, ok = target.val, target.hasVal
			if !ok {
				t.size++ // promoting a branch stores a new key
			}
			target.val, target.hasVal = replace(prev, ok), true
			return

		case matchKeyPrefix:
			// the new key ends above an existing node - strip the key off
			// its label and hang it under a fresh leaf
			target := cur.children[m.index]
			target.label = target.label[len(key):]

			leaf := newLeaf(key, replace(zero, false))
			leaf.children = []*node[T]{target}

			cur.children[m.index] = leaf
			t.size++
			return

		case matchLabelPrefix:
			// consume the candidate's label and descend
			key = key[len(cur.children[m.index].label):]
			cur = cur.children[m.index]

		case matchPartial:
			// the labels diverge inside both - fork at the shared prefix;
			// the two remainders start with distinct runes, so ordering
			// them is a single comparison
			target := cur.children[m.index]
			target.label = target.label[len(m.shared):]

			var (
				leaf = newLeaf(key[len(m.shared):], replace(zero, false))
				fork = &node[T]{label: m.shared}
			)

			if leadingRune(target.label) < leadingRune(leaf.label) {
				fork.children = []*node[T]{target, leaf}
			} else {
				fork.children = []*node[T]{leaf, target}
			}

			cur.children[m.index] = fork
			t.size++
			return
		}
	}

	return zero, false // the empty key is not storable
}

// lookup descends to the node whose full key equals the given one. A found
// node may still be a valueless branch.
func (t *Trie[T]) lookup(key string) *node[T] {
	cur := &t.root

	for key != "" {
		m := classify(cur.children, key)

		switch m.kind {
		case matchExact:
			return cur.children[m.index]
		case matchLabelPrefix:
			key = key[len(cur.children[m.index].label):]
			cur = cur.children[m.index]
		default:
			return nil
		}
	}

	return nil
}

// Get returns the value associated with a key.
func (t *Trie[T]) Get(key string) (val T, ok bool) {
	if n := t.lookup(key); n != nil && n.hasVal {
		return n.val, true
	}

	return
}

// GetRef returns a pointer to the live value associated with a key, or nil
// when the key is absent. The pointer stays valid until the next Set,
// Replace, Del or Merge on the trie.
func (t *Trie[T]) GetRef(key string) *T {
	if n := t.lookup(key); n != nil && n.hasVal {
		return &n.val
	}

	return nil
}

// Del removes a key from the trie and returns the value it held. Removing
// an absent key - including a key that only exists as a shared junction -
// reports false and leaves the structure untouched.
func (t *Trie[T]) Del(key string) (prev T, ok bool) {
	cur := &t.root

	for key != "" {
		m := classify(cur.children, key)

		switch m.kind {
		case matchExact:
			target := cur.children[m.index]
			if !target.hasVal {
				return // a branch is a junction, not a stored key
			}

			prev, ok = target.val, true
			t.size--

			switch orphans := target.children; len(orphans) {
			case 0:
				cur.children = slices.Delete(cur.children, m.index, m.index+1)
			case 1:
				// splice the detached label onto the sole orphan so no
				// single-child junction survives
				orphan := orphans[0]
				orphan.label = target.label + orphan.label
				cur.children[m.index] = orphan
			default:
				// the junction still serves several longer keys
				target.dropValue()
			}

			// a valueless node left with a single child is folded into it
			// in place; the root is exempt - it may hold a single child
			if cur != &t.root && !cur.hasVal && len(cur.children) == 1 {
				child := cur.children[0]

				cur.label += child.label
				cur.val, cur.hasVal = child.val, child.hasVal
				cur.children = child.children
			}
			return

		case matchLabelPrefix:
			key = key[len(cur.children[m.index].label):]
			cur = cur.children[m.index]

		default:
			return
		}
	}

	return
}
