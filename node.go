package radix

// Item is a key-value pair stored in a trie.
type Item[T any] struct {
	Key string
	Val T
}

// node is a single trie node. The zero value is the root sentinel: an empty
// label, no value and, initially, no children. Every other node is either a
// branch (hasVal unset) - a junction shared by at least two descendants -
// or a leaf (hasVal set) - a stored key that may still own children when
// longer keys extend it.
//
// A node owns its children exclusively; during splits and merges children
// are handed over, never aliased.
type node[T any] struct {
	label    string
	children []*node[T]
	val      T
	hasVal   bool
}

func newLeaf[T any](label string, val T) *node[T] {
	return &node[T]{label: label, val: val, hasVal: true}
}

// dropValue demotes a leaf back to a branch, releasing the value.
func (n *node[T]) dropValue() {
	var zero T

	n.val, n.hasVal = zero, false
}

// visit pairs a node with the key prefix accumulated on the way to it.
type visit[T any] struct {
	prefix string
	node   *node[T]
}

// walk traverses the subtree rooted at n breadth-first, reconstructing the
// full key of every node from the accumulated prefix. A value-bearing node
// is reported before its children are enqueued and children are enqueued in
// their sorted order, so the handler sees entries in level order,
// left-to-right within a level. The handler continues the walk by returning
// true or aborts it with false; walk reports whether it ran to completion.
func (n *node[T]) walk(prefix string, handler func(Item[T]) bool) bool {
	queue := []visit[T]{{prefix, n}}

	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		key := next.prefix + next.node.label

		if next.node.hasVal && !handler(Item[T]{key, next.node.val}) {
			return false
		}

		for _, child := range next.node.children {
			queue = append(queue, visit[T]{key, child})
		}
	}

	return true
}
