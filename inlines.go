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
	"regexp"
	"strings"
)

// Inline substitution patterns, applied in a fixed order after escaping.
// The bounded character classes ([^*]+ and friends) keep every match
// single-run and non-nested;
// unmatched delimiters fall through as literal text.
var (
	imageRE       = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)
	linkRE        = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	strongStarRE  = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	strongUnderRE = regexp.MustCompile(`__([^_]+)__`)
	emStarRE      = regexp.MustCompile(`\*([^*]+)\*`)
	strikeRE      = regexp.MustCompile(`~~([^~]+)~~`)
	codeSpanRE    = regexp.MustCompile("`([^`]+)`")
	autolinkRE    = regexp.MustCompile(`(^|[\s(])(https?://[^\s<]+)`)
	hardBreakRE   = regexp.MustCompile(` {2,}\n`)
)

// Links always open in a new tab with noopener noreferrer.
const anchorAttrs = ` target="_blank" rel="noopener noreferrer" class="md-link"`

// renderInline transforms one block's text into HTML-safe inline markup.
// Escaping runs first and exactly once;
// every later stage sees only entity-escaped text
// plus markup emitted by earlier stages.
func renderInline(text string) string {
	s := escapeHTML(text)
	// Images before links: the image pattern owns the "!" prefix.
	s = imageRE.ReplaceAllString(s, `<img src="$2" alt="$1" class="md-image" />`)
	s = linkRE.ReplaceAllString(s, `<a href="$2"`+anchorAttrs+`>$1</a>`)
	s = strongStarRE.ReplaceAllString(s, "<strong>$1</strong>")
	s = strongUnderRE.ReplaceAllString(s, "<strong>$1</strong>")
	s = emStarRE.ReplaceAllString(s, "<em>$1</em>")
	s = emphasizeUnderscore(s)
	s = strikeRE.ReplaceAllString(s, "<del>$1</del>")
	s = codeSpanRE.ReplaceAllString(s, `<code class="md-inline-code">$1</code>`)
	// Autolink only URLs preceded by start-of-text, whitespace, or "(".
	// URLs the link and image stages already placed in attributes or
	// anchor text sit after a quote or ">" and stay untouched.
	s = autolinkRE.ReplaceAllString(s, `$1<a href="$2"`+anchorAttrs+`>$2</a>`)
	s = hardBreakRE.ReplaceAllString(s, "<br />")
	return strings.ReplaceAll(s, "\n", " ")
}

// emphasizeUnderscore wraps _text_ in <em>,
// skipping delimiters adjacent to ASCII letters
// so snake_case identifiers pass through untouched.
// The closer is the first underscore after the opener,
// mirroring the [^_]+ class used by the other passes.
// Go's regexp has no lookaround, so the adjacency guards run by hand.
func emphasizeUnderscore(s string) string {
	sb := new(strings.Builder)
	sb.Grow(len(s))
	for i := 0; i < len(s); {
		c := s[i]
		if c != '_' || (i > 0 && isASCIILetter(s[i-1])) {
			sb.WriteByte(c)
			i++
			continue
		}
		j := strings.IndexByte(s[i+1:], '_')
		if j < 0 {
			sb.WriteString(s[i:])
			break
		}
		end := i + 1 + j
		if end == i+1 || (end+1 < len(s) && isASCIILetter(s[end+1])) {
			sb.WriteByte('_')
			i++
			continue
		}
		sb.WriteString("<em>")
		sb.WriteString(s[i+1 : end])
		sb.WriteString("</em>")
		i = end + 1
	}
	return sb.String()
}

func isASCIILetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
