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

// Package headword implements reading AiDicHeadWord files.
//
// An AiDicHeadWord file is split in two halves by line count:
//  1. The header: the first half of the lines. Each line has the form
//     "<volume>.<ext>=<page>" and names a volume included in the
//     dictionary. A volume may be listed more than once.
//  2. The words: the remaining lines. Each line is the guide word of one
//     page. The pages of all volumes are concatenated in header order.
//
// The number of pages of each volume is not recorded in the file itself and
// must be read from the AiDicImage file (see the manifest package).
package headword
