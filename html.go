// Copyright 2025 Ross Light
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//		 https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package blogmd

import (
	"go4.org/bytereplacer"
	"golang.org/x/net/html/atom"
)

// htmlEscaper rewrites the five XSS-relevant characters to entities.
// bytereplacer makes a single pass over its input,
// so entities it emits are never rescanned.
var htmlEscaper = bytereplacer.New(
	"&", "&amp;",
	`'`, "&#39;", // "&#39;" is shorter than "&apos;" and apos was not in HTML until HTML5.
	`<`, "&lt;",
	`>`, "&gt;",
	`"`, "&quot;",
)

// escapeHTML returns s with & < > " ' replaced by entities.
// Every caller-supplied byte passes through here
// before any tag is introduced.
func escapeHTML(s string) string {
	return string(htmlEscaper.Replace([]byte(s)))
}

// appendOpenTag appends <name> to dst,
// with a class attribute when class is non-empty.
// Class values are fixed strings or allow-listed tokens, never user input.
func appendOpenTag(dst []byte, name atom.Atom, class string) []byte {
	dst = append(dst, '<')
	dst = append(dst, name.String()...)
	if class != "" {
		dst = append(dst, ` class="`...)
		dst = append(dst, class...)
		dst = append(dst, '"')
	}
	return append(dst, '>')
}

// appendCloseTag appends </name> to dst.
func appendCloseTag(dst []byte, name atom.Atom) []byte {
	dst = append(dst, "</"...)
	dst = append(dst, name.String()...)
	return append(dst, '>')
}
