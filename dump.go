package radix

import "fmt"

// DebugDump prints the tree structure to stdout.
func (t *Trie[T]) DebugDump() {
	t.dump(&t.root, "T:", "")
}

func (t *Trie[T]) dump(n *node[T], tag, indent string) {
	if n.hasVal {
		fmt.Printf("%s%s LEAF label=%q val=%v\n", indent, tag, n.label, n.val)
	} else {
		fmt.Printf("%s%s NODE label=%q children=%v\n", indent, tag, n.label, len(n.children))
	}

	for _, child := range n.children {
		t.dump(child, "C:", indent+"  ")
	}
}
