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
	"strings"
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"
	"github.com/mattn/go-runewidth"
)

// WordCount reports the number of words in the plain-text rendition of
// markdown, segmented per UAX #29.
// Tokens without a letter or digit (bare punctuation) do not count.
func WordCount(markdown string) int {
	n := 0
	tokens := words.FromString(Strip(markdown))
	for tokens.Next() {
		if strings.ContainsFunc(tokens.Value(), isWordRune) {
			n++
		}
	}
	return n
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Excerpt returns the plain-text rendition of markdown truncated to at
// most width display cells, with a trailing ellipsis when truncated.
func Excerpt(markdown string, width int) string {
	return runewidth.Truncate(Strip(markdown), width, "…")
}
