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
	"bytes"
	"io"
	"path"
)

// File is an in-memory file.
type File struct {
	path string
	data []byte

	// Err is returned by Open if set.
	Err error
}

// NewFile returns an in-memory file at the given relative path.
func NewFile(relPath, data string) *File {
	return &File{
		path: relPath,
		data: []byte(data),
	}
}

// Path returns the file's relative path.
func (f *File) Path() string {
	return f.path
}

// Name returns the last element of the file's path.
func (f *File) Name() string {
	return path.Base(f.path)
}

// Open returns a reader for the file's contents.
func (f *File) Open() (io.ReadCloser, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}
