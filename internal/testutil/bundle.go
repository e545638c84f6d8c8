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

package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ianlewis/go-dictzip"
)

// Volume is a test dictionary volume.
type Volume struct {
	// Name is the volume's file name including the extension, e.g. "01.pdf".
	Name string

	// Words holds the guide word of each page.
	Words []string
}

// MakeBundleOptions are options for MakeBundle.
type MakeBundleOptions struct {
	// DictZip indicates that the index files should be compressed with
	// DictZip.
	DictZip bool

	// NoImage omits the AiDicImage file.
	NoImage bool

	// NoHeadWord omits the AiDicHeadWord file.
	NoHeadWord bool
}

// MakeImage creates the contents of a test AiDicImage file.
func MakeImage(volumes []*Volume) string {
	var lines []string
	for _, v := range volumes {
		for i := range v.Words {
			lines = append(lines, fmt.Sprintf("%s#%03d", v.Name, i+1))
		}
	}
	return strings.Join(lines, "\n")
}

// MakeHeadWord creates the contents of a test AiDicHeadWord file. The header
// holds one line per page so that it makes up exactly half of the file.
func MakeHeadWord(volumes []*Volume) string {
	var header, words []string
	for _, v := range volumes {
		for i, w := range v.Words {
			header = append(header, fmt.Sprintf("%s=%03d", v.Name, i+1))
			words = append(words, w)
		}
	}
	return strings.Join(append(header, words...), "\n")
}

// DictZip compresses data with DictZip.
func DictZip(t *testing.T, data []byte) []byte {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "aidic.*.dz")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	z, err := dictzip.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := z.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	return b
}

// MakeBundle writes a test dictionary bundle to the directory dir, creating it
// if necessary. Each volume gets an empty placeholder archive under mImg.
func MakeBundle(t *testing.T, dir string, volumes []*Volume, opts *MakeBundleOptions) {
	t.Helper()
	if opts == nil {
		opts = &MakeBundleOptions{}
	}

	if err := os.MkdirAll(filepath.Join(dir, "mImg"), 0o700); err != nil {
		t.Fatal(err)
	}

	write := func(name string, data []byte) {
		t.Helper()
		if opts.DictZip {
			data = DictZip(t, data)
		}
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o600); err != nil {
			t.Fatal(err)
		}
	}

	if !opts.NoImage {
		write("AiDicImage", []byte(MakeImage(volumes)))
	}
	if !opts.NoHeadWord {
		write("AiDicHeadWord", []byte(MakeHeadWord(volumes)))
	}

	for _, v := range volumes {
		zipName := strings.TrimSuffix(v.Name, filepath.Ext(v.Name)) + ".zip"
		if err := os.WriteFile(filepath.Join(dir, "mImg", zipName), nil, 0o600); err != nil {
			t.Fatal(err)
		}
	}
}
