// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import "fmt"

// IndexOutOfRangeError is returned when a collection-element lens refers
// to an index which does not exist in the collection value it is applied
// to. Retrying cannot succeed; the caller must fix the index.
type IndexOutOfRangeError struct {
	// Index is the element index the lens was constructed with.
	Index int

	// Len is the length of the collection the lens was applied to.
	Len int
}

// Error implements the [builtin.error] interface.
func (e IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d is out of range for collection of length %d", e.Index, e.Len)
}

// Index returns a [RefLens] over the element at index i of a slice. The
// lens [Path] is the single element i.
//
// Applying the lens to a slice which does not contain index i fails with
// [IndexOutOfRangeError], on reads as well as on mutations.
func Index[T any](i int) RefLens[[]T, T] {
	return indexLens[T]{index: i}
}

type indexLens[T any] struct {
	index int
}

// Path implements the [Descriptor] interface.
func (l indexLens[T]) Path() Path {
	return IndexPath(l.index)
}

// Mutate implements the [Lens] interface.
func (l indexLens[T]) Mutate(source *[]T, target T) error {
	if l.index < 0 || l.index >= len(*source) {
		return IndexOutOfRangeError{Index: l.index, Len: len(*source)}
	}
	(*source)[l.index] = target
	return nil
}

// Ref implements the [RefLens] interface.
func (l indexLens[T]) Ref(source *[]T) (*T, error) {
	if l.index < 0 || l.index >= len(*source) {
		return nil, IndexOutOfRangeError{Index: l.index, Len: len(*source)}
	}
	return &(*source)[l.index], nil
}
