// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import (
	"go.uber.org/zap"
)

// Logged wraps a [Transform] with logging. Each application is logged at
// debug level under the given name; failed applications are additionally
// logged at error level with the returned error. The wrapped transform is
// otherwise forwarded to unchanged.
func Logged[In, Out any](logger *zap.Logger, name string, tx Transform[In, Out]) Transform[In, Out] {
	return TransformFunc[In, Out](func(input In) (Out, error) {
		logger.Debug("applying transform", zap.String("transform", name))

		out, err := tx.Apply(input)
		if err != nil {
			logger.Error("failed to apply transform", zap.String("transform", name), zap.Error(err))
			return out, err
		}
		return out, nil
	})
}
