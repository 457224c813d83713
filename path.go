// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import (
	"strconv"
	"strings"
)

// Path identifies the location of a lens target relative to its source
// structure, as an ordered sequence of hop identifiers from root to leaf.
// Each identifier is either a zero-based field index within its declaring
// structure or an element index within an ordered collection.
//
// Path is an immutable value type. All methods return new values and never
// modify their receiver.
type Path struct {
	elems []uint64
}

// EmptyPath returns the Path with no elements. It denotes the whole
// structure, with no hop taken.
func EmptyPath() Path {
	return Path{}
}

// NewPath returns a Path with the single element id.
func NewPath(id uint64) Path {
	return Path{elems: []uint64{id}}
}

// PathOf returns a Path with one element per given id, in order.
func PathOf(ids ...uint64) Path {
	if len(ids) == 0 {
		return Path{}
	}
	elems := make([]uint64, len(ids))
	copy(elems, ids)
	return Path{elems: elems}
}

// IndexPath returns a Path with the single element i, for an element of an
// indexed collection.
func IndexPath(i int) Path {
	return Path{elems: []uint64{uint64(i)}}
}

// Concat returns the Path consisting of p's elements followed by q's
// elements. Neither receiver nor argument is modified. Concat is
// associative.
func (p Path) Concat(q Path) Path {
	if len(q.elems) == 0 {
		return p
	}
	if len(p.elems) == 0 {
		return q
	}
	elems := make([]uint64, 0, len(p.elems)+len(q.elems))
	elems = append(elems, p.elems...)
	elems = append(elems, q.elems...)
	return Path{elems: elems}
}

// Len returns the number of elements in p.
func (p Path) Len() int {
	return len(p.elems)
}

// Elements returns a copy of p's elements in root-to-leaf order.
func (p Path) Elements() []uint64 {
	if len(p.elems) == 0 {
		return nil
	}
	elems := make([]uint64, len(p.elems))
	copy(elems, p.elems)
	return elems
}

// Equal reports whether p and q have the same elements in the same order.
func (p Path) Equal(q Path) bool {
	return p.Compare(q) == 0
}

// Compare orders Paths lexicographically over their elements. It returns
// -1 if p sorts before q, 1 if p sorts after q and 0 if they are equal.
func (p Path) Compare(q Path) int {
	n := min(len(p.elems), len(q.elems))
	for i := 0; i < n; i++ {
		if p.elems[i] < q.elems[i] {
			return -1
		}
		if p.elems[i] > q.elems[i] {
			return 1
		}
	}
	switch {
	case len(p.elems) < len(q.elems):
		return -1
	case len(p.elems) > len(q.elems):
		return 1
	default:
		return 0
	}
}

// String renders p as a bracketed, comma separated element list, e.g.
// "[1, 2, 3]".
func (p Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, elem := range p.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(elem, 10))
	}
	sb.WriteByte(']')
	return sb.String()
}
