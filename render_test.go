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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"zombiezen.com/go/blogmd/internal/normhtml"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		markdown string
		want     string
	}{
		{
			name:     "Empty",
			markdown: "",
			want:     "",
		},
		{
			name:     "Heading",
			markdown: "# Title",
			want:     `<h1 class="md-heading md-h1">Title</h1>`,
		},
		{
			name:     "DeepHeading",
			markdown: "###### Notes",
			want:     `<h6 class="md-heading md-h6">Notes</h6>`,
		},
		{
			name:     "HeadingWithInlineMarkup",
			markdown: "## Hello **World**",
			want:     `<h2 class="md-heading md-h2">Hello <strong>World</strong></h2>`,
		},
		{
			name:     "HeadingWithoutSpaceIsParagraph",
			markdown: "#nospace",
			want:     `<p class="md-paragraph">#nospace</p>`,
		},
		{
			name:     "Paragraph",
			markdown: "Hello, world.",
			want:     `<p class="md-paragraph">Hello, world.</p>`,
		},
		{
			name:     "ParagraphJoinsLines",
			markdown: "line one\nline two",
			want:     `<p class="md-paragraph">line one line two</p>`,
		},
		{
			name:     "HardLineBreak",
			markdown: "line one  \nline two",
			want:     `<p class="md-paragraph">line one<br />line two</p>`,
		},
		{
			name:     "ScriptTagEscaped",
			markdown: `<script>alert("xss")</script>`,
			want:     `<p class="md-paragraph">&lt;script&gt;alert(&quot;xss&quot;)&lt;/script&gt;</p>`,
		},
		{
			name:     "Emphasis",
			markdown: "mix of **bold**, __bold__, *em*, and _em_ text",
			want: `<p class="md-paragraph">mix of <strong>bold</strong>, <strong>bold</strong>, ` +
				`<em>em</em>, and <em>em</em> text</p>`,
		},
		{
			name:     "SnakeCaseNotEmphasized",
			markdown: "call parse_markdown_input here",
			want:     `<p class="md-paragraph">call parse_markdown_input here</p>`,
		},
		{
			name:     "UnmatchedDelimiterStaysLiteral",
			markdown: "a lone * star",
			want:     `<p class="md-paragraph">a lone * star</p>`,
		},
		{
			name:     "Strikethrough",
			markdown: "~~old price~~",
			want:     `<p class="md-paragraph"><del>old price</del></p>`,
		},
		{
			name:     "InlineCodeKeepsEscapedAngles",
			markdown: "Use `<div>` sparingly",
			want:     `<p class="md-paragraph">Use <code class="md-inline-code">&lt;div&gt;</code> sparingly</p>`,
		},
		{
			name:     "Image",
			markdown: "![a kitten](kitten.png)",
			want:     `<p class="md-paragraph"><img src="kitten.png" alt="a kitten" class="md-image" /></p>`,
		},
		{
			name:     "Link",
			markdown: "[docs](https://example.com/docs)",
			want: `<p class="md-paragraph"><a href="https://example.com/docs" target="_blank" ` +
				`rel="noopener noreferrer" class="md-link">docs</a></p>`,
		},
		{
			name:     "Autolink",
			markdown: "see https://example.com for more",
			want: `<p class="md-paragraph">see <a href="https://example.com" target="_blank" ` +
				`rel="noopener noreferrer" class="md-link">https://example.com</a> for more</p>`,
		},
		{
			name:     "HorizontalRule",
			markdown: "---",
			want:     `<hr class="md-hr" />`,
		},
		{
			name:     "Blockquote",
			markdown: "> quoted text",
			want: `<blockquote class="md-blockquote">` + "\n" +
				`<p class="md-paragraph">quoted text</p>` + "\n" +
				`</blockquote>`,
		},
		{
			name:     "NestedBlockquote",
			markdown: "> > nested",
			want: `<blockquote class="md-blockquote">` + "\n" +
				`<blockquote class="md-blockquote">` + "\n" +
				`<p class="md-paragraph">nested</p>` + "\n" +
				`</blockquote>` + "\n" +
				`</blockquote>`,
		},
		{
			name:     "UnorderedList",
			markdown: "- apples\n- pears",
			want: `<ul class="md-list md-ul">` + "\n" +
				`<li>apples</li>` + "\n" +
				`<li>pears</li>` + "\n" +
				`</ul>`,
		},
		{
			name:     "OrderedList",
			markdown: "1. first\n2. second",
			want: `<ol class="md-list md-ol">` + "\n" +
				`<li>first</li>` + "\n" +
				`<li>second</li>` + "\n" +
				`</ol>`,
		},
		{
			name:     "ListContinuesAcrossOneBlank",
			markdown: "- a\n\n- b",
			want: `<ul class="md-list md-ul">` + "\n" +
				`<li>a</li>` + "\n" +
				`<li>b</li>` + "\n" +
				`</ul>`,
		},
		{
			name:     "ListSplitsOnTwoBlanks",
			markdown: "- a\n\n\n- b",
			want: `<ul class="md-list md-ul">` + "\n" +
				`<li>a</li>` + "\n" +
				`</ul>` + "\n" +
				`<ul class="md-list md-ul">` + "\n" +
				`<li>b</li>` + "\n" +
				`</ul>`,
		},
		{
			name:     "TaskItemsRenderAsPlainList",
			markdown: "- [ ] wash up\n- [x] cook",
			want: `<ul class="md-list md-ul">` + "\n" +
				`<li>[ ] wash up</li>` + "\n" +
				`<li>[x] cook</li>` + "\n" +
				`</ul>`,
		},
		{
			name:     "TableWithAlignment",
			markdown: "| A | B |\n| :-- | --: |\n| 1 | 2 |",
			want: `<table class="md-table">` + "\n" +
				`<thead>` + "\n" +
				`<tr><th style="text-align: left">A</th><th style="text-align: right">B</th></tr>` + "\n" +
				`</thead>` + "\n" +
				`<tbody>` + "\n" +
				`<tr><td style="text-align: left">1</td><td style="text-align: right">2</td></tr>` + "\n" +
				`</tbody>` + "\n" +
				`</table>`,
		},
		{
			name:     "TableWithoutAlignmentRow",
			markdown: "| A | B |\n| 1 | 2 |",
			want: `<table class="md-table">` + "\n" +
				`<thead>` + "\n" +
				`<tr><th>A</th><th>B</th></tr>` + "\n" +
				`</thead>` + "\n" +
				`<tbody>` + "\n" +
				`<tr><td>1</td><td>2</td></tr>` + "\n" +
				`</tbody>` + "\n" +
				`</table>`,
		},
		{
			name:     "SingleRowTableIsParagraph",
			markdown: "| lonely |",
			want:     `<p class="md-paragraph">| lonely |</p>`,
		},
		{
			name:     "FenceKnownLanguage",
			markdown: "```python\nprint('hi')\n```",
			want: `<pre><code class="md-code-block language-python">` +
				`print(&#39;hi&#39;)</code></pre>`,
		},
		{
			name:     "FenceUnknownLanguage",
			markdown: "```foobar\nx\n```",
			want:     `<pre><code class="md-code-block language-plaintext">x</code></pre>`,
		},
		{
			name:     "FenceContentsNotParsed",
			markdown: "```\n# not a heading\n**not bold**\n```",
			want: `<pre><code class="md-code-block language-plaintext">` +
				"# not a heading\n**not bold**</code></pre>",
		},
		{
			name:     "UnterminatedFenceRunsToEnd",
			markdown: "```javascript\nlet x = 1",
			want:     `<pre><code class="md-code-block language-javascript">let x = 1</code></pre>`,
		},
		{
			name:     "MixedDocument",
			markdown: "# Post\n\nIntro text.\n\n- one\n- two\n\n> bye",
			want: `<h1 class="md-heading md-h1">Post</h1>` + "\n" +
				`<p class="md-paragraph">Intro text.</p>` + "\n" +
				`<ul class="md-list md-ul">` + "\n" +
				`<li>one</li>` + "\n" +
				`<li>two</li>` + "\n" +
				`</ul>` + "\n" +
				`<blockquote class="md-blockquote">` + "\n" +
				`<p class="md-paragraph">bye</p>` + "\n" +
				`</blockquote>`,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := string(normhtml.NormalizeHTML([]byte(Render(test.markdown))))
			want := string(normhtml.NormalizeHTML([]byte(test.want)))
			if diff := cmp.Diff(want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Input:\n%s\nOutput (-want +got):\n%s", test.markdown, diff)
			}
		})
	}
}

func TestRenderEscapesScript(t *testing.T) {
	out := Render(`<script>alert("hi")</script> & 'quotes'`)
	for _, bad := range []string{"<script", `"hi"`, "'quotes'"} {
		if strings.Contains(out, bad) {
			t.Errorf("Render output contains %q:\n%s", bad, out)
		}
	}
	for _, want := range []string{"&lt;script&gt;", "&quot;hi&quot;", "&#39;quotes&#39;", "&amp;"} {
		if !strings.Contains(out, want) {
			t.Errorf("Render output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderAutolinkWrapsOnce(t *testing.T) {
	out := Render("[https://example.com](https://example.com)")
	if n := strings.Count(out, "<a "); n != 1 {
		t.Errorf("Render produced %d anchors, want 1:\n%s", n, out)
	}
}

func TestRenderImageNeverBecomesLink(t *testing.T) {
	out := Render("![alt](img.png)")
	if strings.Contains(out, "<a ") {
		t.Errorf("Render produced an anchor for image syntax:\n%s", out)
	}
	if !strings.Contains(out, "<img ") {
		t.Errorf("Render did not produce an image:\n%s", out)
	}
}

func TestRenderTaskListStaysPlain(t *testing.T) {
	out := Render("- [ ] wash up\n- [x] cook")
	if strings.Contains(out, "md-task-list") || strings.Contains(out, "<input") {
		t.Errorf("task items rendered as checkboxes; the unordered-list branch should win:\n%s", out)
	}
}

func TestRenderHTML(t *testing.T) {
	sb := new(strings.Builder)
	if err := RenderHTML(sb, "# Hi"); err != nil {
		t.Fatal(err)
	}
	if got, want := sb.String(), `<h1 class="md-heading md-h1">Hi</h1>`; got != want {
		t.Errorf("RenderHTML wrote %q; want %q", got, want)
	}
}
