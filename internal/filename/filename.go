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

// Package filename implements file name helpers shared by the AiDic parsers.
package filename

import "regexp"

var extRegex = regexp.MustCompile(`(.+)\.[^.]+`)

// Base returns name with its final extension removed. Earlier dots are kept.
// Names without an extension are returned unchanged.
//
// Only the first match is replaced so any text following it is preserved,
// e.g. "a.b." becomes "a.".
func Base(name string) string {
	m := extRegex.FindStringSubmatchIndex(name)
	if m == nil {
		return name
	}
	return name[:m[0]] + name[m[2]:m[3]] + name[m[1]:]
}
