// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

// Descriptor is the capability shared by every lens regardless of its
// source and target types. It allows heterogeneous lenses to be stored
// and passed through a single non-generic interface.
type Descriptor interface {
	// Path describes the lens target relative to its source. It is
	// static per lens and independent of any particular structure value.
	Path() Path
}

// Lens is an accessor which identifies a field of type T nested within a
// structure of type S and can write a new value into it.
//
// A Lens is a stateless, immutable descriptor: it owns no structure data,
// is safe to share between goroutines and is intended to be created once
// and reused across many structure values.
type Lens[S, T any] interface {
	Descriptor

	// Mutate writes target into the identified field of source. The
	// caller must hold exclusive access to source for the duration of
	// the call. Mutate is the internal mutation primitive; external
	// callers should use [Set] instead.
	//
	// Mutate either fully substitutes the target field or returns an
	// error before any mutation is applied.
	Mutate(source *S, target T) error
}

// RefLens is a [Lens] whose target can additionally be read by reference,
// without copying it. RefLens is the minimum capability required of every
// lens except the last one in a composition chain.
type RefLens[S, T any] interface {
	Lens[S, T]

	// Ref returns a pointer to the identified field of source. It never
	// modifies source. Writes through the returned pointer require the
	// same exclusive access to source as [Lens.Mutate] does.
	Ref(source *S) (*T, error)
}

// ValueLens is a [Lens] whose target can additionally be read by value.
// Only lenses over cheaply duplicable targets, e.g. numeric scalars,
// strings and booleans, should implement it; use [ByValue] to derive one
// from a [RefLens].
type ValueLens[S, T any] interface {
	Lens[S, T]

	// Get returns a copy of the identified field of source. It never
	// modifies source.
	Get(source *S) (T, error)
}

// Set writes target into the field of source identified by l and returns
// the new structure. It consumes source: callers must treat the passed-in
// value as moved and use only the returned value afterwards.
//
// Set either fully substitutes the target field or returns an error before
// any mutation is applied.
func Set[S, T any](l Lens[S, T], source S, target T) (S, error) {
	err := l.Mutate(&source, target)
	return source, err
}

// Modify applies f to the current value of the field of source identified
// by l and writes the result back, returning the new structure. Like
// [Set], it consumes source.
func Modify[S, T any](l RefLens[S, T], source S, f func(T) T) (S, error) {
	target, err := l.Ref(&source)
	if err != nil {
		return source, err
	}

	err = l.Mutate(&source, f(*target))
	return source, err
}
