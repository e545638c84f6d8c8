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

package headword

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/k3a/html2text"

	"github.com/ianlewis/go-aidic/internal/filename"
	"github.com/ianlewis/go-aidic/internal/textio"
	"github.com/ianlewis/go-aidic/manifest"
)

// ErrUnknownVolume indicates that the header names a volume that has no page
// count.
var ErrUnknownVolume = errors.New("unknown file name")

// GuideWord is the headword printed on a single page of a volume.
type GuideWord struct {
	// Word is the headword. It may be empty, e.g. for front matter pages.
	Word string

	// FileName is the base name of the volume.
	FileName string

	// PageNumber is the 1-indexed page within the volume.
	PageNumber int
}

// Text returns the guide word treated as HTML: tags are removed and entities
// are decoded. A plain word containing "<" or "&" may therefore differ from
// Word. Text is used to build lookup keys.
func (w *GuideWord) Text() string {
	return html2text.HTML2Text(w.Word)
}

// String returns a string representation of the GuideWord.
func (w *GuideWord) String() string {
	return w.FileName + ":" + strconv.Itoa(w.PageNumber) + " " + w.Word
}

// split divides the lines of an AiDicHeadWord file into its header and word
// halves. Trailing empty lines count towards the total.
func split(input string) ([]string, []string) {
	lines := strings.Split(input, "\n")
	mid := len(lines) / 2
	return lines[:mid], lines[mid:]
}

// volumes returns the unique volume file names listed in the header in the
// order they first appear.
func volumes(header []string) []string {
	var names []string
	seen := map[string]bool{}
	for _, line := range header {
		name, _, _ := strings.Cut(line, "=")
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// Volumes returns the volume file names listed in the header of an
// AiDicHeadWord file in the order they first appear. The names still carry
// their extension.
func Volumes(input string) []string {
	header, _ := split(input)
	return volumes(header)
}

// Parse parses the contents of an AiDicHeadWord file. pageCounts must hold the
// page count of every volume listed in the file's header, typically as
// returned by [manifest.Parse]. Parse returns [ErrUnknownVolume] if a volume
// is missing from pageCounts.
//
// Volumes consume consecutive words in header order, one per page. If the file
// runs out of words the remaining pages are omitted.
func Parse(input string, pageCounts manifest.PageCounts) ([]*GuideWord, error) {
	header, words := split(input)

	var guideWords []*GuideWord
	cursor := 0
	for _, name := range volumes(header) {
		base := filename.Base(name)
		pageCount, ok := pageCounts[base]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownVolume, name)
		}

		start := min(cursor, len(words))
		end := max(start, min(cursor+pageCount, len(words)))
		for i, word := range words[start:end] {
			guideWords = append(guideWords, &GuideWord{
				Word:       word,
				FileName:   base,
				PageNumber: i + 1,
			})
		}
		cursor += pageCount
	}

	return guideWords, nil
}

// Read reads an AiDicHeadWord file from r and parses it.
func Read(r io.Reader, pageCounts manifest.PageCounts) ([]*GuideWord, error) {
	s, err := textio.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading AiDicHeadWord: %w", err)
	}
	return Parse(s, pageCounts)
}
