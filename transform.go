// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import (
	"github.com/z5labs/optic/internal/try"
)

// Transform represents a pure, reusable operation from one structure value
// to another. A Transform is stateless: it is built once and may be
// applied to any number of independent inputs, concurrently if desired.
type Transform[In, Out any] interface {
	// Apply consumes input and produces an output value. The caller
	// must treat the passed-in value as moved.
	Apply(input In) (Out, error)
}

// TransformFunc is a func variant of the [Transform] interface.
type TransformFunc[In, Out any] func(In) (Out, error)

// Apply implements the [Transform] interface.
func (f TransformFunc[In, Out]) Apply(input In) (Out, error) {
	return f(input)
}

// Fn lifts an arbitrary pure function into a [Transform], for
// interoperating with steps which are not built from lenses. A panic from
// f is recovered and returned as an error.
func Fn[In, Out any](f func(In) Out) Transform[In, Out] {
	return TransformFunc[In, Out](func(input In) (out Out, err error) {
		defer try.Recover(&err)

		return f(input), nil
	})
}

// Identity returns the [Transform] which passes its input through
// unchanged. It is the identity element of [ComposeTransform].
func Identity[X any]() Transform[X, X] {
	return TransformFunc[X, X](func(input X) (X, error) {
		return input, nil
	})
}

// ComposeTransform combines two [Transform]s sequentially: the composed
// transform applies lhs and feeds its result to rhs. An error from lhs
// short-circuits the composition.
func ComposeTransform[A, B, C any](lhs Transform[A, B], rhs Transform[B, C]) Transform[A, C] {
	return TransformFunc[A, C](func(input A) (C, error) {
		mid, err := lhs.Apply(input)
		if err != nil {
			var zero C
			return zero, err
		}
		return rhs.Apply(mid)
	})
}

// Chain combines any number of [Transform]s over a single structure type
// into one sequentially applied pipeline. Chain of no transforms is
// [Identity].
func Chain[S any](txs ...Transform[S, S]) Transform[S, S] {
	return TransformFunc[S, S](func(input S) (S, error) {
		var err error
		for _, tx := range txs {
			input, err = tx.Apply(input)
			if err != nil {
				return input, err
			}
		}
		return input, nil
	})
}
