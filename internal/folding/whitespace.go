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

package folding

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

type spaceState int

const (
	// leading is the state before the first non-space rune.
	leading spaceState = iota

	// inWord is the state while copying non-space runes.
	inWord

	// inSpace is the state while skipping an internal run of spaces.
	inSpace
)

// Whitespace trims leading and trailing whitespace and collapses internal
// runs of whitespace, including the ideographic space U+3000, into a single
// ASCII space.
type Whitespace struct {
	state spaceState
}

// Transform implements [transform.Transformer.Transform].
func (w *Whitespace) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}
		r, size := utf8.DecodeRune(src[nSrc:])

		if unicode.IsSpace(r) {
			if w.state == inWord {
				w.state = inSpace
			}
			nSrc += size
			continue
		}

		// Space is only written once the following word starts so that
		// trailing whitespace is dropped.
		need := utf8.RuneLen(r)
		if w.state == inSpace {
			need++
		}
		if nDst+need > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		if w.state == inSpace {
			dst[nDst] = ' '
			nDst++
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += size
		w.state = inWord
	}
	return nDst, nSrc, nil
}

// Reset implements [transform.Transformer.Reset].
func (w *Whitespace) Reset() {
	w.state = leading
}
