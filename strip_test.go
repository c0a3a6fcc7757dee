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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrip(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{"Empty", "", ""},
		{"PlainProseUnchanged", "Just plain prose.", "Just plain prose."},
		{"WhitespaceCollapsed", "a\n\n\nb\t c", "a b c"},
		{"Heading", "# Title", "Title"},
		{"Emphasis", "**bold** and *em* and ~~strike~~", "bold and em and strike"},
		{"LinkKeepsText", "[read this](https://example.com)", "read this"},
		{"ImageDropped", "before ![alt text](img.png) after", "before after"},
		{"InlineCodeDropped", "run `go vet` first", "run first"},
		{"FenceDropped", "above\n```go\npanic(\"no\")\n```\nbelow", "above below"},
		{"BlockquoteMarker", "> quoted\n> more", "quoted more"},
		{"NestedBlockquoteMarkers", "> > deep", "deep"},
		{"ListMarkers", "- a\n- b\n1. c", "a b c"},
		{"HorizontalRule", "above\n\n---\n\nbelow", "above below"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Strip(test.markdown))
		})
	}
}

func TestStripFullPost(t *testing.T) {
	const post = "# Title\n" +
		"\n" +
		"Some **bold** text with [a link](https://x) and `code` here.\n" +
		"\n" +
		"- item one\n" +
		"- item two\n" +
		"\n" +
		"> quoted\n" +
		"\n" +
		"```go\npanic()\n```\n"
	want := "Title Some bold text with a link and here. item one item two quoted"
	assert.Equal(t, want, Strip(post))
}

// Strip is a denaturing pass, not a parser: underscores inside
// identifiers are markers to it and get removed.
func TestStripRemovesIdentifierUnderscores(t *testing.T) {
	assert.Equal(t, "maxretrycount", Strip("max_retry_count"))
}

func TestStripIsIdentityOnProseModuloWhitespace(t *testing.T) {
	const prose = "The cafe opens at nine.\nWeekends too."
	assert.Equal(t, "The cafe opens at nine. Weekends too.", Strip(prose))
}
