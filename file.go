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
	"fmt"
	"io"
	"io/fs"
	"path"
)

// File is a file in a dictionary directory.
type File interface {
	// Path returns the path of the file relative to the parent of the
	// dictionary directory, e.g. "mydict/mImg/01.zip". The dictionary
	// directory's own name may be omitted for files directly inside it.
	Path() string

	// Name returns the file name, e.g. "01.zip".
	Name() string

	// Open opens the file for reading.
	Open() (io.ReadCloser, error)
}

type fsFile struct {
	fsys fs.FS
	name string
	root string
}

func (f *fsFile) Path() string {
	return path.Join(f.root, f.name)
}

func (f *fsFile) Name() string {
	return path.Base(f.name)
}

func (f *fsFile) Open() (io.ReadCloser, error) {
	r, err := f.fsys.Open(f.name)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", f.Path(), err)
	}
	return r, nil
}

// FromFS returns all regular files in fsys. Paths are reported relative to
// root, which should be the name of the dictionary directory.
func FromFS(fsys fs.FS, root string) ([]File, error) {
	var files []File
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		files = append(files, &fsFile{
			fsys: fsys,
			name: p,
			root: root,
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}
	return files, nil
}
