package radix

// matchKind classifies how a key suffix relates to the best candidate in a
// sibling list.
type matchKind int

const (
	matchNone        matchKind = iota // no sibling has a leading rune >= the key's
	matchDisjoint                     // the candidate shares no leading runes with the key
	matchExact                        // the candidate's label equals the key
	matchKeyPrefix                    // the key is a strict prefix of the candidate's label
	matchLabelPrefix                  // the candidate's label is a strict prefix of the key
	matchPartial                      // a shared prefix shorter than both
)

// match is a classifier outcome: the kind, the candidate position (an
// insertion position for matchNone/matchDisjoint) and, for matchPartial,
// the shared prefix.
type match struct {
	kind   matchKind
	index  int
	shared string
}

// classify picks the candidate sibling for a key suffix and determines
// which of the six relationships holds between them. It is a pure function
// of its inputs; the switch over its outcome is the entire control skeleton
// of Set, Get, Del and Iter.
func classify[T any](children []*node[T], key string) match {
	idx, ok := siblingIndex(children, leadingRune(key))
	if idx == len(children) {
		return match{kind: matchNone, index: idx}
	}
	if !ok {
		// the nearest sibling sorts after the key - zero shared runes
		return match{kind: matchDisjoint, index: idx}
	}

	var (
		label  = children[idx].label
		shared = commonPrefix(label, key)
	)

	switch {
	case len(shared) == len(label) && len(shared) == len(key):
		return match{kind: matchExact, index: idx}
	case len(shared) == len(key):
		return match{kind: matchKeyPrefix, index: idx}
	case len(shared) == len(label):
		return match{kind: matchLabelPrefix, index: idx}
	}

	return match{kind: matchPartial, index: idx, shared: shared}
}
