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
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/transform"

	"github.com/ianlewis/go-aidic/headword"
	"github.com/ianlewis/go-aidic/internal/filename"
	"github.com/ianlewis/go-aidic/internal/folding"
	"github.com/ianlewis/go-aidic/internal/keyed"
	"github.com/ianlewis/go-aidic/internal/textio"
	"github.com/ianlewis/go-aidic/manifest"
)

const (
	imageIndexName = "AiDicImage"
	headWordName   = "AiDicHeadWord"

	imageIndexPath = "/" + imageIndexName
	headWordPath   = "/" + headWordName
	archiveDir     = "/mImg/"
	archiveExt     = ".zip"
)

var (
	// ErrImageIndexNotFound indicates that the dictionary has no AiDicImage
	// file.
	ErrImageIndexNotFound = errors.New("AiDicImage not found")

	// ErrHeadWordNotFound indicates that the dictionary has no AiDicHeadWord
	// file.
	ErrHeadWordNotFound = errors.New("AiDicHeadWord not found")
)

// Options are options for reading a dictionary.
type Options struct {
	// Folder returns a [transform.Transformer] that performs folding (e.g.
	// case folding, whitespace folding, etc.) on guide words and queries.
	Folder func() transform.Transformer

	// Logger receives debug logs. Logs are discarded if nil.
	Logger *slog.Logger
}

// DefaultOptions is the default options for reading a dictionary.
var DefaultOptions = &Options{
	Folder: folding.Default,
	Logger: slog.New(slog.DiscardHandler),
}

func (o *Options) withDefaults() *Options {
	opts := *DefaultOptions
	if o == nil {
		return &opts
	}
	if o.Folder != nil {
		opts.Folder = o.Folder
	}
	if o.Logger != nil {
		opts.Logger = o.Logger
	}
	return &opts
}

// trimRoot replaces the first element of p, the dictionary directory's name,
// with "/". Paths without a directory are made absolute.
func trimRoot(p string) string {
	if _, rest, ok := strings.Cut(p, "/"); ok {
		return "/" + rest
	}
	return "/" + p
}

func readText(f File) keyed.Func[string] {
	return func(ctx context.Context) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		r, err := f.Open()
		if err != nil {
			return "", fmt.Errorf("opening %q: %w", f.Path(), err)
		}
		defer r.Close()

		s, err := textio.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("reading %q: %w", f.Path(), err)
		}
		return s, nil
	}
}

// Parse reads a dictionary from the files in a dictionary directory. The
// files may be given in any order. Files other than the index files and the
// image archives are ignored. If more than one archive has the same volume
// name the last one wins. The first path element is always taken to be the
// dictionary directory, so an archive given as "mImg/01.zip" without a root
// directory is not recognized.
//
// Parse returns [ErrImageIndexNotFound] or [ErrHeadWordNotFound] if either
// index file is missing and [headword.ErrUnknownVolume] if the AiDicHeadWord
// file refers to a volume missing from AiDicImage.
func Parse(ctx context.Context, files []File, opts *Options) (*Dictionary, error) {
	opts = opts.withDefaults()

	var imageFile, headWordFile File
	archives := map[string]File{}
	for _, f := range files {
		p := trimRoot(f.Path())
		switch {
		case p == imageIndexPath:
			imageFile = f
		case p == headWordPath:
			headWordFile = f
		case strings.HasPrefix(p, archiveDir) && strings.HasSuffix(p, archiveExt):
			archives[filename.Base(f.Name())] = f
		default:
			opts.Logger.DebugContext(ctx, "ignoring file", "path", f.Path())
		}
	}

	if imageFile == nil {
		return nil, ErrImageIndexNotFound
	}
	if headWordFile == nil {
		return nil, ErrHeadWordNotFound
	}

	texts, err := keyed.All(ctx, map[string]keyed.Func[string]{
		imageIndexName: readText(imageFile),
		headWordName:   readText(headWordFile),
	})
	if err != nil {
		return nil, err
	}

	pageCounts := manifest.Parse(texts[imageIndexName])
	guideWords, err := headword.Parse(texts[headWordName], pageCounts)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", headWordName, err)
	}

	name, _, found := strings.Cut(imageFile.Path(), "/")
	if !found {
		name = ""
	}

	d, err := newDictionary(name, guideWords, pageCounts, archives, opts.Folder)
	if err != nil {
		return nil, err
	}

	opts.Logger.DebugContext(ctx, "parsed dictionary",
		"name", name,
		"volumes", len(pageCounts),
		"guide_words", len(guideWords),
		"archives", len(archives),
	)

	return d, nil
}

// Open opens the dictionary in the directory dir.
func Open(ctx context.Context, dir string, opts *Options) (*Dictionary, error) {
	files, err := FromFS(os.DirFS(dir), filepath.Base(dir))
	if err != nil {
		return nil, err
	}

	d, err := Parse(ctx, files, opts)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", dir, err)
	}
	return d, nil
}

// OpenAll opens all dictionaries under a directory. A directory holds a
// dictionary if it contains an AiDicImage file. This function will return all
// successfully opened dictionaries along with any errors that occurred.
func OpenAll(ctx context.Context, dir string, opts *Options) ([]*Dictionary, []error) {
	var dicts []*Dictionary
	var errs []error
	if err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		// Walking the file path will ignore errors.
		if err != nil {
			errs = append(errs, err)
			return nil
		}
		if d.IsDir() || d.Name() != imageIndexName {
			return nil
		}

		dict, err := Open(ctx, filepath.Dir(path), opts)
		if err != nil {
			errs = append(errs, err)
		} else {
			dicts = append(dicts, dict)
		}

		// Skip the rest of the dictionary directory.
		return fs.SkipDir
	}); err != nil {
		errs = append(errs, err)
		return nil, errs
	}
	return dicts, errs
}
