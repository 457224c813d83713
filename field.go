// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

// Field returns a [RefLens] over a single field of a structure.
//
// The id is the zero-based index of the field among its siblings in the
// declaring structure and must be unique within it; it becomes the sole
// element of the lens [Path]. The ref function must return a pointer to
// that field within the given structure, e.g.
//
//	optic.Field(1, func(p *Point) *int { return &p.Y })
//
// Field is the building block an accessor producer, generated or
// hand-written, uses to satisfy the lens contract for struct fields.
func Field[S, T any](id uint64, ref func(*S) *T) RefLens[S, T] {
	return fieldLens[S, T]{
		path: NewPath(id),
		ref:  ref,
	}
}

type fieldLens[S, T any] struct {
	path Path
	ref  func(*S) *T
}

// Path implements the [Descriptor] interface.
func (l fieldLens[S, T]) Path() Path {
	return l.path
}

// Mutate implements the [Lens] interface.
func (l fieldLens[S, T]) Mutate(source *S, target T) error {
	*l.ref(source) = target
	return nil
}

// Ref implements the [RefLens] interface.
func (l fieldLens[S, T]) Ref(source *S) (*T, error) {
	return l.ref(source), nil
}

// ByValue upgrades a [RefLens] to a [ValueLens] whose Get dereferences and
// copies the target. It should only be applied to lenses over cheaply
// duplicable targets; for composite targets the copy is a shallow one and
// may share underlying storage with the source.
func ByValue[S, T any](l RefLens[S, T]) ValueLens[S, T] {
	return valueLens[S, T]{RefLens: l}
}

type valueLens[S, T any] struct {
	RefLens[S, T]
}

// Get implements the [ValueLens] interface.
func (l valueLens[S, T]) Get(source *S) (T, error) {
	target, err := l.Ref(source)
	if err != nil {
		var zero T
		return zero, err
	}
	return *target, nil
}
