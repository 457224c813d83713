// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import (
	"github.com/z5labs/optic/internal/try"
)

// Integer constrains a lens target to the built-in integer types, for
// transforms which rely on integral arithmetic.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// SetTransform returns a [Transform] which applies f to the whole,
// pre-mutation source to compute a new target value and sets it through l.
// A panic from f is recovered and returned as an error.
func SetTransform[S, T any](l Lens[S, T], f func(S) T) Transform[S, S] {
	return TransformFunc[S, S](func(input S) (out S, err error) {
		defer try.Recover(&err)

		return Set(l, input, f(input))
	})
}

// ModifyTransform returns a [Transform] which reads the current target of
// l, applies f to it and sets the result. A panic from f is recovered and
// returned as an error.
func ModifyTransform[S, T any](l RefLens[S, T], f func(T) T) Transform[S, S] {
	return TransformFunc[S, S](func(input S) (out S, err error) {
		defer try.Recover(&err)

		return Modify(l, input, f)
	})
}

// IncrementTransform returns a [Transform] which adds one to the integral
// target of l.
func IncrementTransform[S any, T Integer](l RefLens[S, T]) Transform[S, S] {
	return ModifyTransform(l, func(target T) T {
		return target + 1
	})
}

// DecrementTransform returns a [Transform] which subtracts one from the
// integral target of l.
func DecrementTransform[S any, T Integer](l RefLens[S, T]) Transform[S, S] {
	return ModifyTransform(l, func(target T) T {
		return target - 1
	})
}

// NotTransform returns a [Transform] which logically negates the boolean
// target of l.
func NotTransform[S any, T ~bool](l RefLens[S, T]) Transform[S, S] {
	return ModifyTransform(l, func(target T) T {
		return !target
	})
}
