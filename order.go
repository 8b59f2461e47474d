package radix

import (
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// leadingRune returns the first code point of a label. Non-root labels are
// never empty, so the engine only ever calls this on non-empty strings.
func leadingRune(s string) rune {
	if s == "" {
		panic("radix: leading rune of an empty string")
	}

	r, _ := utf8.DecodeRuneInString(s)

	return r
}

// siblingIndex finds the sibling whose label starts with the given rune.
// When no sibling does, it returns the position where a label starting with
// that rune would keep the list sorted.
func siblingIndex[T any](children []*node[T], lead rune) (int, bool) {
	return slices.BinarySearchFunc(children, lead, func(n *node[T], lead rune) int {
		switch r := leadingRune(n.label); {
		case r < lead:
			return -1
		case r > lead:
			return +1
		}
		return 0
	})
}

// commonPrefix returns the longest string that is a prefix of both a and b.
// The cut always lands on a rune boundary in both inputs, so slicing either
// string right after the prefix never splits a multi-byte encoding.
func commonPrefix(a, b string) string {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}

	var num int // number of common prefix bytes

	for num < limit && a[num] == b[num] {
		num++
	}

	// back off to the nearest rune start
	for num > 0 && num < limit && !utf8.RuneStart(a[num]) {
		num--
	}

	return a[:num]
}
