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

// Package manifest implements reading AiDicImage files.
//
// The AiDicImage file lists the page images of every volume in the
// dictionary, one page per line:
//
//	<volume>.<ext>#<page>
//
// For example "01.pdf#001". Page numbers are 1-indexed and every page of a
// volume is expected to be listed, so the highest page number of a volume is
// its page count.
package manifest

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/ianlewis/go-aidic/internal/filename"
	"github.com/ianlewis/go-aidic/internal/textio"
)

var lineRegex = regexp.MustCompile(`(.+)#(\d+)`)

// PageCounts maps a volume's base name to its number of pages.
type PageCounts map[string]int

// Parse parses the contents of an AiDicImage file. Lines that are not of the
// form "<name>#<digits>" are ignored, as are lines whose page number overflows
// an int. Parse never fails and returns an empty PageCounts for empty input.
func Parse(input string) PageCounts {
	counts := PageCounts{}

	for _, line := range strings.Split(input, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		m := lineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		name := filename.Base(m[1])
		page, err := strconv.Atoi(m[2])
		if name == "" || err != nil {
			continue
		}
		counts[name] = max(counts[name], page)
	}

	return counts
}

// Read reads an AiDicImage file from r and parses it. Only errors reading r
// are returned.
func Read(r io.Reader) (PageCounts, error) {
	s, err := textio.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading AiDicImage: %w", err)
	}
	return Parse(s), nil
}
