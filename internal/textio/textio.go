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

// Package textio reads the text content of AiDic index files.
package textio

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
)

var (
	gzipMagic = []byte{0x1f, 0x8b}
	utf8BOM   = []byte{0xef, 0xbb, 0xbf}
)

// ReadAll reads the full text content of r. Content compressed with gzip, or
// dictzip which is gzip compatible, is decompressed transparently. A leading
// UTF-8 byte order mark is removed.
func ReadAll(r io.Reader) (string, error) {
	br := bufio.NewReader(r)

	//nolint:errcheck // a short peek means the content is not compressed.
	header, _ := br.Peek(len(gzipMagic))

	var src io.Reader = br
	if bytes.Equal(header, gzipMagic) {
		z, err := gzip.NewReader(br)
		if err != nil {
			return "", fmt.Errorf("creating gzip reader: %w", err)
		}
		defer z.Close()
		src = z
	}

	b, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("reading text: %w", err)
	}

	return string(bytes.TrimPrefix(b, utf8BOM)), nil
}
