// Package radix implements a compressed prefix tree (a radix trie, also
// known as a Patricia trie) mapping string keys to values of an arbitrary
// type.
//
// Chains of single-child nodes are compressed into one node holding a
// multi-character label, so the trie behaves like an ordered in-memory
// index with prefix locality: a point lookup costs one label comparison per
// matched segment, and all keys sharing a prefix can be enumerated without
// touching the rest of the tree.
//
// Node kinds:
//
//   - root: a sentinel with an empty label and no value; it shares the node
//     representation of every other level, so the structural rewrites done
//     by Del need no top-level special case;
//   - branch: a valueless junction that exists only because two or more
//     stored keys diverge at that point - it always has at least two
//     children;
//   - leaf: a stored key with its value, which may still own children when
//     longer keys extend it.
//
// The children of every node are ordered by the leading code point of their
// labels, and no two siblings share one.
//
// Example trie:
//
//	       ,-- ["Axes":4]
//	(root)-+                ,-- ["n":3] -- ["der":6] -- ["ful":9]
//	       `-- ["Wo"] ------+
//	                        `-- ["rld":5]
//
// The trie above stores the keys "Axes", "Won", "Wonder", "Wonderful" and
// "World". "Wo" is a branch synthesized by insertion, not a stored key:
// looking it up reports absence unless it is later inserted itself.
//
// The empty string is not a storable key: Set("") is a no-op and lookups of
// "" always report absence.
//
// A Trie is not safe for concurrent use - callers mixing a writer with
// other writers or readers must serialize access externally.
package radix
