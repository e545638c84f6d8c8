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

package index

import (
	"slices"
	"sort"
)

// Entry is a value stored under a search key.
type Entry[V any] struct {
	Key   string
	Value V
}

// Index is a generic sorted array index.
type Index[V any] struct {
	// entries are sorted by key. Entries with equal keys keep their original
	// order.
	entries []Entry[V]

	cmp func(string, string) int
}

// New creates an index from the given entries and comparison function.
// cmp(a, b) should return a negative number when a < b, a positive number when
// a > b and zero when a == b.
func New[V any](entries []Entry[V], cmp func(string, string) int) *Index[V] {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry[V]) int {
		return cmp(a.Key, b.Key)
	})

	return &Index[V]{
		entries: sorted,
		cmp:     cmp,
	}
}

// Len returns the number of entries in the index.
func (idx *Index[V]) Len() int {
	return len(idx.entries)
}

// Search returns the values whose key equals query.
func (idx *Index[V]) Search(query string) []V {
	i, found := sort.Find(len(idx.entries), func(i int) int {
		return idx.cmp(query, idx.entries[i].Key)
	})
	if !found {
		return nil
	}

	var values []V
	for ; i < len(idx.entries) && idx.cmp(query, idx.entries[i].Key) == 0; i++ {
		values = append(values, idx.entries[i].Value)
	}
	return values
}

// Floor returns the last value whose key is less than or equal to query. It
// returns false if every key is greater than query.
func (idx *Index[V]) Floor(query string) (V, bool) {
	// i is the first entry with a key greater than query.
	i := sort.Search(len(idx.entries), func(i int) bool {
		return idx.cmp(idx.entries[i].Key, query) > 0
	})
	if i == 0 {
		var zero V
		return zero, false
	}
	return idx.entries[i-1].Value, true
}
