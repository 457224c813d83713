// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

// Compose combines an outer lens reaching an intermediate value inside the
// source with an inner lens reaching the final target inside that
// intermediate value. The composed [Path] is the concatenation of the
// outer's and the inner's.
//
// The outer lens must be a [RefLens]: mutating the target requires a
// reference to the intermediate value to delegate to the inner lens. Only
// the innermost lens of a chain may support mutation alone. Deeper chains
// are built by nesting, e.g.
//
//	optic.Compose(a, optic.ComposeRef(b, c))
//
// The capability of the composed lens follows the weaker participant: use
// [ComposeRef] when the inner lens is a [RefLens] and [ComposeValue] when
// it is a [ValueLens].
func Compose[S, M, T any](outer RefLens[S, M], inner Lens[M, T]) Lens[S, T] {
	return composedLens[S, M, T]{
		outer: outer,
		inner: inner,
	}
}

// ComposeRef is [Compose] for an inner [RefLens]. The composed lens can
// read its target by reference.
func ComposeRef[S, M, T any](outer RefLens[S, M], inner RefLens[M, T]) RefLens[S, T] {
	return composedRefLens[S, M, T]{
		composedLens: composedLens[S, M, T]{
			outer: outer,
			inner: inner,
		},
		inner: inner,
	}
}

// ComposeValue is [Compose] for an inner [ValueLens]. The composed lens
// can read its target by value: it reads the intermediate by reference,
// then the target by value from it.
func ComposeValue[S, M, T any](outer RefLens[S, M], inner ValueLens[M, T]) ValueLens[S, T] {
	return composedValueLens[S, M, T]{
		composedLens: composedLens[S, M, T]{
			outer: outer,
			inner: inner,
		},
		inner: inner,
	}
}

type composedLens[S, M, T any] struct {
	outer RefLens[S, M]
	inner Lens[M, T]
}

// Path implements the [Descriptor] interface.
func (l composedLens[S, M, T]) Path() Path {
	return l.outer.Path().Concat(l.inner.Path())
}

// Mutate implements the [Lens] interface.
func (l composedLens[S, M, T]) Mutate(source *S, target T) error {
	mid, err := l.outer.Ref(source)
	if err != nil {
		return err
	}
	return l.inner.Mutate(mid, target)
}

type composedRefLens[S, M, T any] struct {
	composedLens[S, M, T]

	inner RefLens[M, T]
}

// Ref implements the [RefLens] interface.
func (l composedRefLens[S, M, T]) Ref(source *S) (*T, error) {
	mid, err := l.outer.Ref(source)
	if err != nil {
		return nil, err
	}
	return l.inner.Ref(mid)
}

type composedValueLens[S, M, T any] struct {
	composedLens[S, M, T]

	inner ValueLens[M, T]
}

// Get implements the [ValueLens] interface.
func (l composedValueLens[S, M, T]) Get(source *S) (T, error) {
	mid, err := l.outer.Ref(source)
	if err != nil {
		var zero T
		return zero, err
	}
	return l.inner.Get(mid)
}
