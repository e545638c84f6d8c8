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

package aidic

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-aidic/headword"
	"github.com/ianlewis/go-aidic/internal/folding"
	"github.com/ianlewis/go-aidic/internal/index"
	"github.com/ianlewis/go-aidic/manifest"
)

// ErrNotFound indicates that no page matches a query.
var ErrNotFound = errors.New("not found")

// Dictionary is a parsed AiDic dictionary. A Dictionary is not modified after
// it is created and is safe for concurrent use.
type Dictionary struct {
	name       string
	guideWords []*headword.GuideWord
	pageCounts manifest.PageCounts
	archives   map[string]File

	// index holds the non-empty guide words sorted by their folded text.
	index  *index.Index[*headword.GuideWord]
	folder func() transform.Transformer
}

func newDictionary(
	name string,
	guideWords []*headword.GuideWord,
	pageCounts manifest.PageCounts,
	archives map[string]File,
	folder func() transform.Transformer,
) (*Dictionary, error) {
	var entries []index.Entry[*headword.GuideWord]
	for _, w := range guideWords {
		key, err := folding.String(folder, w.Text())
		if err != nil {
			return nil, fmt.Errorf("indexing %s: %w", w, err)
		}
		if key == "" {
			continue
		}
		entries = append(entries, index.Entry[*headword.GuideWord]{
			Key:   key,
			Value: w,
		})
	}

	return &Dictionary{
		name:       name,
		guideWords: guideWords,
		pageCounts: pageCounts,
		archives:   archives,
		index:      index.New(entries, strings.Compare),
		folder:     folder,
	}, nil
}

// Name returns the name of the dictionary's directory. It is empty if the
// file paths did not include the directory.
func (d *Dictionary) Name() string {
	return d.name
}

// GuideWords returns the guide word of every page ordered by volume and page.
// The returned slice must not be modified.
func (d *Dictionary) GuideWords() []*headword.GuideWord {
	return d.guideWords
}

// PageCounts returns the number of pages of each volume. The returned map
// must not be modified.
func (d *Dictionary) PageCounts() manifest.PageCounts {
	return d.pageCounts
}

// Archives returns the image archive of each volume. The returned map must
// not be modified.
func (d *Dictionary) Archives() map[string]File {
	return d.archives
}

// Archive returns the image archive for the given volume.
func (d *Dictionary) Archive(volume string) (File, bool) {
	f, ok := d.archives[volume]
	return f, ok
}

// Volumes returns the sorted names of the dictionary's volumes.
func (d *Dictionary) Volumes() []string {
	return slices.Sorted(maps.Keys(d.pageCounts))
}

// Search returns the pages whose guide word matches query after folding.
func (d *Dictionary) Search(query string) ([]*headword.GuideWord, error) {
	key, err := folding.String(d.folder, query)
	if err != nil {
		return nil, err
	}
	return d.index.Search(key), nil
}

// Page returns the page on which query would be printed. This is the page
// with the greatest guide word that sorts at or before query. Page returns
// [ErrNotFound] if query sorts before every guide word.
func (d *Dictionary) Page(query string) (*headword.GuideWord, error) {
	key, err := folding.String(d.folder, query)
	if err != nil {
		return nil, err
	}
	w, ok := d.index.Floor(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, query)
	}
	return w, nil
}
