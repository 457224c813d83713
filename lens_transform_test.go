// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetTransform(t *testing.T) {
	t.Run("will compute the target from the pre-mutation source", func(t *testing.T) {
		tx := SetTransform(struct1Lens.Int32, func(s Struct1) int32 {
			return s.Int32 + 42
		})

		s, err := tx.Apply(Struct1{Int32: 0, Int16: 0})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int32(42), s.Int32) {
			return
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the function panics", func(t *testing.T) {
			fnErr := errors.New("failed to compute target")
			tx := SetTransform(struct1Lens.Int32, func(s Struct1) int32 {
				panic(fnErr)
			})

			_, err := tx.Apply(Struct1{})
			if !assert.ErrorIs(t, err, fnErr) {
				return
			}
		})
	})
}

func TestModifyTransform(t *testing.T) {
	t.Run("will apply the function to the current target", func(t *testing.T) {
		tx := ModifyTransform(struct1Lens.Int32, func(n int32) int32 {
			return n + 42
		})

		s, err := tx.Apply(Struct1{Int32: 0, Int16: 0})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int32(42), s.Int32) {
			return
		}
	})

	t.Run("will not change sibling fields", func(t *testing.T) {
		tx := ModifyTransform(struct1Lens.Int32, func(n int32) int32 {
			return n + 42
		})

		s, err := tx.Apply(Struct1{Int32: 0, Int16: 73})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int16(73), s.Int16) {
			return
		}
	})

	t.Run("will return an error", func(t *testing.T) {
		t.Run("if the underlying lens fails to resolve its target", func(t *testing.T) {
			lens := ComposeRef(struct4Lens.Inner, ComposeRef(Index[Struct1](5), struct1Lens.Int32))
			tx := ModifyTransform(lens, func(n int32) int32 {
				return n + 1
			})

			_, err := tx.Apply(Struct4{Inner: []Struct1{{}, {}, {}}})

			var oerr IndexOutOfRangeError
			if !assert.ErrorAs(t, err, &oerr) {
				return
			}
		})
	})
}

func TestIncrementTransform(t *testing.T) {
	t.Run("will add one to the target", func(t *testing.T) {
		tx := IncrementTransform(struct1Lens.Int32)

		s, err := tx.Apply(Struct1{Int32: 42, Int16: 0})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int32(43), s.Int32) {
			return
		}
	})
}

func TestDecrementTransform(t *testing.T) {
	t.Run("will subtract one from the target", func(t *testing.T) {
		tx := DecrementTransform(struct1Lens.Int32)

		s, err := tx.Apply(Struct1{Int32: 42, Int16: 0})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int32(41), s.Int32) {
			return
		}
	})
}

func TestNotTransform(t *testing.T) {
	t.Run("will negate a false target", func(t *testing.T) {
		tx := NotTransform(struct5Lens.Enabled)

		s, err := tx.Apply(Struct5{Enabled: false})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.True(t, s.Enabled) {
			return
		}
	})

	t.Run("will negate a true target", func(t *testing.T) {
		tx := NotTransform(struct5Lens.Enabled)

		s, err := tx.Apply(Struct5{Enabled: true})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.False(t, s.Enabled) {
			return
		}
	})
}

func TestLensTransformComposition(t *testing.T) {
	t.Run("will apply lens transforms sequentially", func(t *testing.T) {
		addOne := ModifyTransform(struct1Lens.Int32, func(n int32) int32 { return n + 1 })
		addTwo := ModifyTransform(struct1Lens.Int32, func(n int32) int32 { return n + 2 })
		mulTwo := ModifyTransform(struct1Lens.Int32, func(n int32) int32 { return n * 2 })

		tx := ComposeTransform(addOne, ComposeTransform(addTwo, mulTwo))

		s, err := tx.Apply(Struct1{Int32: 0, Int16: 0})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int32(6), s.Int32) {
			return
		}
	})

	t.Run("will interoperate with lifted functions", func(t *testing.T) {
		tx := Chain(
			IncrementTransform(struct1Lens.Int32),
			Fn(func(s Struct1) Struct1 {
				s.Int16 = -s.Int16
				return s
			}),
		)

		s, err := tx.Apply(Struct1{Int32: 41, Int16: 73})
		if !assert.Nil(t, err) {
			return
		}
		if !assert.Equal(t, int32(42), s.Int32) {
			return
		}
		if !assert.Equal(t, int16(-73), s.Int16) {
			return
		}
	})
}
