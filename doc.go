// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package optic provides a functional, composable algebra for reading and
// immutably updating fields nested inside otherwise immutable data structures.
//
// The package is built around three core abstractions:
//
//   - Lens[S, T]: An accessor which identifies a target field of type T
//     within a source structure of type S and can write a new target value
//   - RefLens[S, T] / ValueLens[S, T]: Lenses which can additionally read
//     the target by reference or by value
//   - Transform[In, Out]: A pure, reusable operation from one structure
//     value to another, typically built by pairing a lens with a function
//
// # Lenses
//
// A lens is a stateless, immutable descriptor. It owns no structure data
// and can be created once and reused across any number of structure values.
// Leaf lenses are constructed with [Field] for struct fields and [Index]
// for slice elements:
//
//	type Point struct {
//	    X int
//	    Y int
//	}
//
//	pointX := optic.Field(0, func(p *Point) *int { return &p.X })
//
// Lenses compose with [Compose], [ComposeRef] and [ComposeValue], producing
// a single lens which reaches an arbitrarily deep field. The composed lens
// reports its position as the concatenation of its participants' [Path]s.
//
// # Transforms
//
// Transforms wrap a lens and a function into a self-contained operation on
// whole structures:
//
//	moveRight := optic.ModifyTransform(pointX, func(x int) int { return x + 1 })
//	p, err := moveRight.Apply(Point{X: 1, Y: 2})
//
// Transforms compose sequentially with [ComposeTransform] and [Chain], and
// interoperate with plain functions via [Fn].
//
// # Ownership
//
// [Set], [Modify] and every Transform consume their source by value and
// return the new structure. Callers must treat the passed-in value as moved:
// if the source contains reference types, e.g. slices, the returned
// structure may share their backing storage with the original value.
package optic
