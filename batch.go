// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package optic

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ApplyEach applies one [Transform] to many independent inputs
// concurrently and returns the outputs in input order. Transforms are
// stateless descriptors, so a single transform is safe to apply from
// multiple goroutines as long as each application owns its input.
//
// ApplyEach returns the first error encountered, whether from an
// application or from ctx being cancelled, and cancels any applications
// still pending.
func ApplyEach[In, Out any](ctx context.Context, tx Transform[In, Out], inputs []In) ([]Out, error) {
	outs := make([]Out, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	for i, input := range inputs {
		i, input := i, input
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, err := tx.Apply(input)
			if err != nil {
				return err
			}
			outs[i] = out
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}
	return outs, nil
}
