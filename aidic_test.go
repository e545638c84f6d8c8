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

package aidic_test

import (
	"context"
	"errors"
	"maps"
	"path/filepath"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ianlewis/go-aidic"
	"github.com/ianlewis/go-aidic/headword"
	"github.com/ianlewis/go-aidic/internal/testutil"
	"github.com/ianlewis/go-aidic/manifest"
)

var errOpen = errors.New("open failed")

var testVolumes = []*testutil.Volume{
	{Name: "01.pdf", Words: []string{"", "apple", "banana", "cherry"}},
	{Name: "02.pdf", Words: []string{"grape", "Melon", "peach"}},
}

var testGuideWords = []*headword.GuideWord{
	{Word: "", FileName: "01", PageNumber: 1},
	{Word: "apple", FileName: "01", PageNumber: 2},
	{Word: "banana", FileName: "01", PageNumber: 3},
	{Word: "cherry", FileName: "01", PageNumber: 4},
	{Word: "grape", FileName: "02", PageNumber: 1},
	{Word: "Melon", FileName: "02", PageNumber: 2},
	{Word: "peach", FileName: "02", PageNumber: 3},
}

var testPageCounts = manifest.PageCounts{"01": 4, "02": 3}

func testFiles(root string) []aidic.File {
	return []aidic.File{
		testutil.NewFile(root+"mImg/02.zip", ""),
		testutil.NewFile(root+"AiDicHeadWord", testutil.MakeHeadWord(testVolumes)),
		testutil.NewFile(root+"readme.txt", "ignored"),
		testutil.NewFile(root+"mImg/01.zip", ""),
		testutil.NewFile(root+"mImg/thumbs.db", ""),
		testutil.NewFile(root+"AiDicImage", testutil.MakeImage(testVolumes)),
	}
}

func expectDictionary(t *testing.T, d *aidic.Dictionary) {
	t.Helper()

	if diff := cmp.Diff(testGuideWords, d.GuideWords()); diff != "" {
		t.Errorf("GuideWords (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff(testPageCounts, d.PageCounts()); diff != "" {
		t.Errorf("PageCounts (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"01", "02"}, slices.Sorted(maps.Keys(d.Archives()))); diff != "" {
		t.Errorf("Archives (-want, +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"01", "02"}, d.Volumes()); diff != "" {
		t.Errorf("Volumes (-want, +got):\n%s", diff)
	}
}

// TestParse tests Parse.
func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []aidic.File
		err   error
	}{
		{
			name:  "with root directory",
			files: testFiles("dict/"),
		},
		{
			name: "index files without root directory",
			files: []aidic.File{
				testutil.NewFile("AiDicImage", testutil.MakeImage(testVolumes)),
				testutil.NewFile("AiDicHeadWord", testutil.MakeHeadWord(testVolumes)),
				testutil.NewFile("dict/mImg/01.zip", ""),
				testutil.NewFile("dict/mImg/02.zip", ""),
			},
		},
		{
			name: "missing AiDicImage",
			files: []aidic.File{
				testutil.NewFile("dict/AiDicHeadWord", testutil.MakeHeadWord(testVolumes)),
				testutil.NewFile("dict/mImg/01.zip", ""),
			},
			err: aidic.ErrImageIndexNotFound,
		},
		{
			name: "missing both",
			files: []aidic.File{
				testutil.NewFile("dict/mImg/01.zip", ""),
			},
			err: aidic.ErrImageIndexNotFound,
		},
		{
			name: "nested AiDicImage",
			files: []aidic.File{
				testutil.NewFile("dict/sub/AiDicImage", testutil.MakeImage(testVolumes)),
				testutil.NewFile("dict/AiDicHeadWord", testutil.MakeHeadWord(testVolumes)),
			},
			err: aidic.ErrImageIndexNotFound,
		},
		{
			name: "missing AiDicHeadWord",
			files: []aidic.File{
				testutil.NewFile("dict/AiDicImage", testutil.MakeImage(testVolumes)),
			},
			err: aidic.ErrHeadWordNotFound,
		},
		{
			name: "unknown volume",
			files: []aidic.File{
				testutil.NewFile("dict/AiDicImage", testutil.MakeImage(testVolumes[:1])),
				testutil.NewFile("dict/AiDicHeadWord", testutil.MakeHeadWord(testVolumes)),
			},
			err: headword.ErrUnknownVolume,
		},
		{
			name: "empty path ignored",
			files: []aidic.File{
				testutil.NewFile("dict/AiDicImage", testutil.MakeImage(testVolumes)),
				&testutil.File{Err: errOpen},
			},
			err: aidic.ErrHeadWordNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, err := aidic.Parse(context.Background(), test.files, nil)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Parse: want error %v, got %v", test.err, err)
				}
				if d != nil {
					t.Fatal("Parse: unexpected partial result")
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			expectDictionary(t, d)
		})
	}
}

// TestParse_archivesWithoutRoot tests that archives are only recognized
// below a root directory.
func TestParse_archivesWithoutRoot(t *testing.T) {
	t.Parallel()

	d, err := aidic.Parse(context.Background(), testFiles(""), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if diff := cmp.Diff(testGuideWords, d.GuideWords()); diff != "" {
		t.Errorf("GuideWords (-want, +got):\n%s", diff)
	}
	if got := len(d.Archives()); got != 0 {
		t.Errorf("Archives: want none, got %d", got)
	}
	if _, ok := d.Archive("01"); ok {
		t.Error("Archive(\"01\"): unexpected archive")
	}
}

// TestParse_openError tests that errors opening an index file are returned.
func TestParse_openError(t *testing.T) {
	t.Parallel()

	headWord := testutil.NewFile("dict/AiDicHeadWord", testutil.MakeHeadWord(testVolumes))
	headWord.Err = errOpen

	_, err := aidic.Parse(context.Background(), []aidic.File{
		testutil.NewFile("dict/AiDicImage", testutil.MakeImage(testVolumes)),
		headWord,
	}, nil)
	if !errors.Is(err, errOpen) {
		t.Fatalf("Parse: want error %v, got %v", errOpen, err)
	}
}

// TestParse_duplicateArchive tests that the last archive for a volume wins.
func TestParse_duplicateArchive(t *testing.T) {
	t.Parallel()

	last := testutil.NewFile("dict/mImg/01.zip", "last")
	files := append(testFiles("dict/"), last)

	d, err := aidic.Parse(context.Background(), files, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got, ok := d.Archive("01")
	if !ok {
		t.Fatal("Archive: not found")
	}
	if got != aidic.File(last) {
		t.Fatalf("Archive; want: %p, got: %p", last, got)
	}
	if _, ok := d.Archive("03"); ok {
		t.Fatal("Archive: unexpected archive for 03")
	}
}

// TestParse_canceled tests that a canceled context aborts reading.
func TestParse_canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := aidic.Parse(ctx, testFiles("dict/"), nil)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Parse: want error %v, got %v", context.Canceled, err)
	}
}

// TestOpen tests Open.
func TestOpen(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts *testutil.MakeBundleOptions
		err  error
	}{
		{
			name: "plain",
		},
		{
			name: "dictzip",
			opts: &testutil.MakeBundleOptions{DictZip: true},
		},
		{
			name: "missing AiDicHeadWord",
			opts: &testutil.MakeBundleOptions{NoHeadWord: true},
			err:  aidic.ErrHeadWordNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			dir := filepath.Join(t.TempDir(), "dict")
			testutil.MakeBundle(t, dir, testVolumes, test.opts)

			d, err := aidic.Open(context.Background(), dir, nil)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Open: want error %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			expectDictionary(t, d)

			archive, ok := d.Archive("02")
			if !ok {
				t.Fatal("Archive: not found")
			}
			if want, got := "dict/mImg/02.zip", archive.Path(); want != got {
				t.Fatalf("Archive path; want: %q, got: %q", want, got)
			}
			r, err := archive.Open()
			if err != nil {
				t.Fatalf("Archive open: %v", err)
			}
			r.Close()
		})
	}
}

// TestOpenAll tests OpenAll.
func TestOpenAll(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	testutil.MakeBundle(t, filepath.Join(dir, "a"), testVolumes, nil)
	testutil.MakeBundle(t, filepath.Join(dir, "nested", "b"), testVolumes, &testutil.MakeBundleOptions{
		DictZip: true,
	})
	testutil.MakeBundle(t, filepath.Join(dir, "broken"), testVolumes, &testutil.MakeBundleOptions{
		NoHeadWord: true,
	})
	// Directories without an AiDicImage file are not dictionaries.
	testutil.MakeBundle(t, filepath.Join(dir, "other"), testVolumes, &testutil.MakeBundleOptions{
		NoImage: true,
	})

	dicts, errs := aidic.OpenAll(context.Background(), dir, nil)
	if want, got := 2, len(dicts); want != got {
		t.Fatalf("OpenAll dictionaries; want: %d, got: %d", want, got)
	}
	if want, got := 1, len(errs); want != got {
		t.Fatalf("OpenAll errors; want: %d, got: %d (%v)", want, got, errs)
	}
	if !errors.Is(errs[0], aidic.ErrHeadWordNotFound) {
		t.Fatalf("OpenAll: want error %v, got %v", aidic.ErrHeadWordNotFound, errs[0])
	}
	for _, d := range dicts {
		expectDictionary(t, d)
	}
}

// TestDictionary_Page tests Dictionary.Page.
func TestDictionary_Page(t *testing.T) {
	t.Parallel()

	d, err := aidic.Parse(context.Background(), testFiles("dict/"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name     string
		query    string
		expected *headword.GuideWord
		err      error
	}{
		{
			name:     "exact",
			query:    "cherry",
			expected: testGuideWords[3],
		},
		{
			name:     "between pages",
			query:    "blueberry",
			expected: testGuideWords[2],
		},
		{
			name:     "across volumes",
			query:    "fig",
			expected: testGuideWords[3],
		},
		{
			name:     "folded",
			query:    "  MELON ",
			expected: testGuideWords[5],
		},
		{
			name:     "after last",
			query:    "zucchini",
			expected: testGuideWords[6],
		},
		{
			name:  "before first",
			query: "aardvark",
			err:   aidic.ErrNotFound,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.Page(test.query)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					t.Fatalf("Page: want error %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Page: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Page (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestDictionary_Search tests Dictionary.Search.
func TestDictionary_Search(t *testing.T) {
	t.Parallel()

	d, err := aidic.Parse(context.Background(), testFiles("dict/"), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	tests := []struct {
		name     string
		query    string
		expected []*headword.GuideWord
	}{
		{
			name:     "exact",
			query:    "apple",
			expected: []*headword.GuideWord{testGuideWords[1]},
		},
		{
			name:     "full width",
			query:    "Ｍｅｌｏｎ",
			expected: []*headword.GuideWord{testGuideWords[5]},
		},
		{
			name:     "no match",
			query:    "kiwi",
			expected: nil,
		},
		{
			name:     "empty guide words are not indexed",
			query:    "",
			expected: nil,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			got, err := d.Search(test.query)
			if err != nil {
				t.Fatalf("Search: %v", err)
			}
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("Search (-want, +got):\n%s", diff)
			}
		})
	}
}

// TestDictionary_Name tests Dictionary.Name.
func TestDictionary_Name(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		files    []aidic.File
		expected string
	}{
		{
			name:     "with root directory",
			files:    testFiles("mydict/"),
			expected: "mydict",
		},
		{
			name:     "without root directory",
			files:    testFiles(""),
			expected: "",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			d, err := aidic.Parse(context.Background(), test.files, nil)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			if want, got := test.expected, d.Name(); want != got {
				t.Fatalf("Name; want: %q, got: %q", want, got)
			}
		})
	}
}
