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

// Package blogmd converts user-authored blog Markdown
// into sanitized, display-ready HTML fragments.
//
// The converter targets a pragmatic subset of Markdown
// sufficient for blog content:
// headings, emphasis, links, images, code fences,
// lists, tables, and blockquotes.
// Every caller-supplied byte is entity-escaped
// before any markup is emitted,
// so raw HTML in the source never reaches the output unescaped.
// Output elements carry a fixed set of md-* CSS classes
// that the blog templates target;
// renaming them requires a coordinated template update.
//
// [Strip] is the companion transform:
// it reduces Markdown to plain text for excerpts and word counts.
package blogmd

import (
	"fmt"
	"io"
	"strings"
)

// Render converts Markdown to a sanitized HTML fragment
// (no surrounding <html> or <body>).
// The empty string renders to the empty string.
// Render never fails: malformed constructs degrade to plainer output
// instead of producing an error.
func Render(markdown string) string {
	if markdown == "" {
		return ""
	}
	return renderLines(strings.Split(markdown, "\n"))
}

// RenderHTML renders Markdown to w as a sanitized HTML fragment.
// It will return the first error encountered, if any.
func RenderHTML(w io.Writer, markdown string) error {
	if _, err := io.WriteString(w, Render(markdown)); err != nil {
		return fmt.Errorf("render markdown to html: %w", err)
	}
	return nil
}

// renderLines is the document driver:
// it walks the line array, dispatching one block at a time,
// and joins the non-empty fragments with newlines.
// parseBlockquote re-enters it on dedented quote content,
// so call-stack depth bounds quote nesting.
func renderLines(lines []string) string {
	var frags []string
	for i := 0; i < len(lines); {
		r := parseBlock(lines, i)
		if r.html != "" {
			frags = append(frags, r.html)
		}
		if r.consumed < 1 {
			// A zero advance would loop forever.
			r.consumed = 1
		}
		i += r.consumed
	}
	return strings.Join(frags, "\n")
}
