package radix

// StartWith returns every stored (key, value) pair whose key begins with
// the given prefix. Entries come out in level order - shorter keys first,
// left-to-right within a level - not in lexicographic order. An empty
// prefix yields nil; whole-tree enumeration goes through Iter.
func (t *Trie[T]) StartWith(prefix string) []Item[T] {
	if prefix == "" {
		return nil
	}

	var items []Item[T]

	t.Iter(prefix, func(item Item[T]) bool {
		items = append(items, item)
		return true
	})

	return items
}

// Iter calls a handler for every stored (key, value) pair whose key begins
// with the given prefix, in the level order described for StartWith. An
// empty prefix enumerates the whole trie. The handler continues the walk by
// returning true or aborts it with false; Iter reports whether the walk ran
// to completion.
func (t *Trie[T]) Iter(prefix string, handler func(Item[T]) bool) bool {
	var (
		cur      = &t.root
		consumed string // labels matched so far, exclusive of the candidate
	)

	for prefix != "" {
		m := classify(cur.children, prefix)

		switch m.kind {
		case matchExact, matchKeyPrefix:
			// every key below the candidate extends the prefix
			return cur.children[m.index].walk(consumed, handler)

		case matchLabelPrefix:
			target := cur.children[m.index]
			consumed += target.label
			prefix = prefix[len(target.label):]
			cur = target

		default:
			return true // nothing starts with the prefix
		}
	}

	return cur.walk(consumed, handler)
}

// Keys returns every stored key, in level order.
func (t *Trie[T]) Keys() []string {
	keys := make([]string, 0, t.size)

	t.Iter("", func(item Item[T]) bool {
		keys = append(keys, item.Key)
		return true
	})

	return keys
}

// Items returns every stored (key, value) pair, in level order.
func (t *Trie[T]) Items() []Item[T] {
	items := make([]Item[T], 0, t.size)

	t.Iter("", func(item Item[T]) bool {
		items = append(items, item)
		return true
	})

	return items
}

// Merge sets every pair of another trie whose key begins with the given
// prefix into this one. Values of common keys are overwritten. Returns
// itself.
func (t *Trie[T]) Merge(other *Trie[T], prefix string) *Trie[T] {
	if other != nil {
		other.Iter(prefix, func(item Item[T]) bool {
			t.Set(item.Key, item.Val)
			return true
		})
	}

	return t
}
