// Copyright 2026 Ian Lewis
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package keyed runs a set of named computations concurrently.
package keyed

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Func computes a value. Funcs passed to All may run concurrently.
type Func[V any] func(context.Context) (V, error)

// Value returns a Func that immediately returns v.
func Value[V any](v V) Func[V] {
	return func(context.Context) (V, error) {
		return v, nil
	}
}

// All runs every Func in fs concurrently and returns their results under the
// same keys. If any Func fails All returns the first error and no results. The
// context passed to each Func is canceled when the first one fails.
func All[K comparable, V any](ctx context.Context, fs map[K]Func[V]) (map[K]V, error) {
	var mu sync.Mutex
	results := make(map[K]V, len(fs))

	g, gctx := errgroup.WithContext(ctx)
	for k, f := range fs {
		g.Go(func() error {
			v, err := f(gctx)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			results[k] = v
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
