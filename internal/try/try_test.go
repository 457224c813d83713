// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package try

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecover(t *testing.T) {
	t.Run("will do nothing", func(t *testing.T) {
		t.Run("if no panic is in flight", func(t *testing.T) {
			var err error
			func() {
				defer Recover(&err)
			}()

			if !assert.Nil(t, err) {
				return
			}
		})
	})

	t.Run("will record a PanicError", func(t *testing.T) {
		t.Run("if a panic is in flight", func(t *testing.T) {
			var err error
			func() {
				defer Recover(&err)
				panic("hello world")
			}()

			var perr PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
			if !assert.Equal(t, "hello world", perr.Value) {
				return
			}
			if !assert.NotEmpty(t, perr.Error()) {
				return
			}
		})

		t.Run("if the panic value is an error", func(t *testing.T) {
			cause := errors.New("underlying cause")

			var err error
			func() {
				defer Recover(&err)
				panic(cause)
			}()

			if !assert.ErrorIs(t, err, cause) {
				return
			}
		})

		t.Run("if an error was already recorded", func(t *testing.T) {
			prior := errors.New("prior failure")

			err := prior
			func() {
				defer Recover(&err)
				panic("hello world")
			}()

			if !assert.ErrorIs(t, err, prior) {
				return
			}

			var perr PanicError
			if !assert.ErrorAs(t, err, &perr) {
				return
			}
		})
	})
}

func TestPanicErrorUnwrap(t *testing.T) {
	t.Run("will return nil", func(t *testing.T) {
		t.Run("if the panic value is not an error", func(t *testing.T) {
			perr := PanicError{Value: "hello world"}

			if !assert.Nil(t, perr.Unwrap()) {
				return
			}
		})
	})
}
