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

// Package aidic implements a library for reading AiDic page image
// dictionaries in pure Go.
//
// An AiDic dictionary is a scan of one or more printed volumes. It is stored
// as a directory containing several files:
//  1. AiDicImage: lists the page images of every volume. It is used to
//     determine the number of pages in each volume (see the manifest
//     package).
//  2. AiDicHeadWord: lists the volumes and the guide word printed on each
//     page (see the headword package).
//  3. mImg/<volume>.zip: an archive of the page images of a volume. Archives
//     are passed through to the caller unread.
//
// The index files may be compressed with gzip or dictzip.
package aidic
