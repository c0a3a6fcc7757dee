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
	"strconv"
	"strings"

	"golang.org/x/net/html/atom"
)

// blockResult is one dispatched block:
// a rendered HTML fragment (empty for blank lines)
// and the number of source lines consumed.
// consumed is always at least 1 so the driver's cursor advances.
type blockResult struct {
	html     string
	consumed int
}

var (
	headingRE  = regexp.MustCompile(`^(#{1,6})\s+(.*)$`)
	ruleRE     = regexp.MustCompile(`^(?:-{3,}|\*{3,}|_{3,})$`)
	bulletRE   = regexp.MustCompile(`^[-*+]\s+(.*)$`)
	orderedRE  = regexp.MustCompile(`^\d+\.\s+(.*)$`)
	taskRE     = regexp.MustCompile(`^[-*+]\s+\[([ xX])\]\s+(.*)$`)
	alignRowRE = regexp.MustCompile(`^[\s|:-]+$`)
)

var headingAtoms = [6]atom.Atom{atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6}

// parseBlock classifies the line at start and renders one block.
// Checks run in a fixed priority order;
// an earlier pattern wins even when a later one is more specific.
func parseBlock(lines []string, start int) blockResult {
	line := strings.TrimSpace(lines[start])
	switch {
	case line == "":
		return blockResult{consumed: 1}
	case strings.HasPrefix(line, "```"):
		return parseFence(lines, start)
	case headingRE.MatchString(line):
		return parseHeading(line)
	case ruleRE.MatchString(line):
		return blockResult{html: `<hr class="md-hr" />`, consumed: 1}
	case strings.HasPrefix(line, ">"):
		return parseBlockquote(lines, start)
	// TODO: the task-list case never wins because bulletRE also matches
	// "- [ ] item"; move it above the list cases once the blog styles
	// ship checkbox support.
	case bulletRE.MatchString(line):
		return parseList(lines, start, bulletRE, atom.Ul, "md-list md-ul")
	case orderedRE.MatchString(line):
		return parseList(lines, start, orderedRE, atom.Ol, "md-list md-ol")
	case taskRE.MatchString(line):
		return parseTaskList(lines, start)
	case isTableRow(line):
		return parseTable(lines, start)
	default:
		return parseParagraph(lines, start)
	}
}

// parseFence consumes every line after the opening fence verbatim
// (escaped, never inline-parsed) until a closing fence or end of input.
// An unterminated fence extends to the end of the document.
func parseFence(lines []string, start int) blockResult {
	info := strings.TrimPrefix(strings.TrimSpace(lines[start]), "```")
	var body []string
	i := start + 1
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "```") {
		body = append(body, escapeHTML(lines[i]))
		i++
	}
	consumed := i - start
	if i < len(lines) {
		// Closing fence.
		consumed++
	}
	var buf []byte
	buf = appendOpenTag(buf, atom.Pre, "")
	buf = appendOpenTag(buf, atom.Code, "md-code-block "+languageClass(info))
	buf = append(buf, strings.Join(body, "\n")...)
	buf = appendCloseTag(buf, atom.Code)
	buf = appendCloseTag(buf, atom.Pre)
	return blockResult{html: string(buf), consumed: consumed}
}

func parseHeading(line string) blockResult {
	m := headingRE.FindStringSubmatch(line)
	level := len(m[1])
	name := headingAtoms[level-1]
	var buf []byte
	buf = appendOpenTag(buf, name, "md-heading md-h"+strconv.Itoa(level))
	buf = append(buf, renderInline(m[2])...)
	buf = appendCloseTag(buf, name)
	return blockResult{html: string(buf), consumed: 1}
}

// parseBlockquote collects the contiguous quoted run,
// strips one ">" (and one following space) per line,
// and re-enters the document driver on the dedented lines.
func parseBlockquote(lines []string, start int) blockResult {
	var inner []string
	i := start
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, ">") {
			inner = append(inner, strings.TrimPrefix(strings.TrimPrefix(line, ">"), " "))
			i++
			continue
		}
		if line == "" && i+1 < len(lines) && strings.HasPrefix(strings.TrimSpace(lines[i+1]), ">") {
			inner = append(inner, "")
			i++
			continue
		}
		break
	}
	var buf []byte
	buf = appendOpenTag(buf, atom.Blockquote, "md-blockquote")
	buf = append(buf, '\n')
	buf = append(buf, renderLines(inner)...)
	buf = append(buf, '\n')
	buf = appendCloseTag(buf, atom.Blockquote)
	return blockResult{html: string(buf), consumed: i - start}
}

// parseList accumulates a run of same-family list lines.
// A single blank line continues the run
// when the next line carries the same marker family;
// anything else ends it.
func parseList(lines []string, start int, marker *regexp.Regexp, name atom.Atom, class string) blockResult {
	var items []string
	i := start
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if m := marker.FindStringSubmatch(line); m != nil {
			items = append(items, m[1])
			i++
			continue
		}
		if line == "" && i+1 < len(lines) && marker.MatchString(strings.TrimSpace(lines[i+1])) {
			i++
			continue
		}
		break
	}
	var buf []byte
	buf = appendOpenTag(buf, name, class)
	for _, item := range items {
		buf = append(buf, "\n<li>"...)
		buf = append(buf, renderInline(item)...)
		buf = append(buf, "</li>"...)
	}
	buf = append(buf, '\n')
	buf = appendCloseTag(buf, name)
	return blockResult{html: string(buf), consumed: i - start}
}

// parseTaskList renders "- [x]" runs as a disabled-checkbox list.
// Currently unreachable from parseBlock (see the dispatch TODO);
// kept because the md-task-list classes are part of the styling contract.
func parseTaskList(lines []string, start int) blockResult {
	type taskItem struct {
		checked bool
		text    string
	}
	var items []taskItem
	i := start
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if m := taskRE.FindStringSubmatch(line); m != nil {
			items = append(items, taskItem{checked: m[1] != " ", text: m[2]})
			i++
			continue
		}
		if line == "" && i+1 < len(lines) && taskRE.MatchString(strings.TrimSpace(lines[i+1])) {
			i++
			continue
		}
		break
	}
	var buf []byte
	buf = appendOpenTag(buf, atom.Ul, "md-task-list")
	for _, item := range items {
		buf = append(buf, '\n')
		buf = appendOpenTag(buf, atom.Li, "md-task-item")
		if item.checked {
			buf = append(buf, `<input type="checkbox" checked disabled /> `...)
		} else {
			buf = append(buf, `<input type="checkbox" disabled /> `...)
		}
		buf = append(buf, renderInline(item.text)...)
		buf = appendCloseTag(buf, atom.Li)
	}
	buf = append(buf, '\n')
	buf = appendCloseTag(buf, atom.Ul)
	return blockResult{html: string(buf), consumed: i - start}
}

// parseTable accumulates contiguous pipe rows.
// Fewer than two rows is not a table;
// the candidate renders as a paragraph instead.
// The second row, when it matches the alignment-marker pattern,
// is consumed as column metadata rather than data.
func parseTable(lines []string, start int) blockResult {
	var rows []string
	i := start
	for i < len(lines) && isTableRow(strings.TrimSpace(lines[i])) {
		rows = append(rows, strings.TrimSpace(lines[i]))
		i++
	}
	if len(rows) < 2 {
		return parseParagraph(lines, start)
	}

	var aligns []string
	dataStart := 1
	if alignRowRE.MatchString(rows[1]) && strings.Contains(rows[1], "-") {
		aligns = parseAlignments(splitRow(rows[1]))
		dataStart = 2
	}

	var buf []byte
	buf = appendOpenTag(buf, atom.Table, "md-table")
	buf = append(buf, "\n<thead>\n<tr>"...)
	for col, cell := range splitRow(rows[0]) {
		buf = appendCell(buf, atom.Th, cell, aligns, col)
	}
	buf = append(buf, "</tr>\n</thead>\n<tbody>"...)
	for _, row := range rows[dataStart:] {
		buf = append(buf, "\n<tr>"...)
		for col, cell := range splitRow(row) {
			buf = appendCell(buf, atom.Td, cell, aligns, col)
		}
		buf = append(buf, "</tr>"...)
	}
	buf = append(buf, "\n</tbody>\n"...)
	buf = appendCloseTag(buf, atom.Table)
	return blockResult{html: string(buf), consumed: i - start}
}

func appendCell(dst []byte, name atom.Atom, cell string, aligns []string, col int) []byte {
	dst = append(dst, '<')
	dst = append(dst, name.String()...)
	if col < len(aligns) && aligns[col] != "" {
		dst = append(dst, ` style="text-align: `...)
		dst = append(dst, aligns[col]...)
		dst = append(dst, '"')
	}
	dst = append(dst, '>')
	dst = append(dst, renderInline(cell)...)
	return appendCloseTag(dst, name)
}

// splitRow splits "| a | b |" into trimmed cell texts.
func splitRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	cells := strings.Split(row, "|")
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}
	return cells
}

// parseAlignments derives one alignment per column from the marker row.
func parseAlignments(cells []string) []string {
	aligns := make([]string, len(cells))
	for i, cell := range cells {
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		switch {
		case left && right:
			aligns[i] = "center"
		case right:
			aligns[i] = "right"
		case left:
			aligns[i] = "left"
		}
	}
	return aligns
}

// parseParagraph gathers lines until a blank line or another block start,
// joins them, and wraps the inline-transformed text in <p>.
func parseParagraph(lines []string, start int) blockResult {
	var run []string
	i := start
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || isBlockStart(line) {
			break
		}
		run = append(run, lines[i])
		i++
	}
	if len(run) == 0 {
		// The line looked like a block start but its parser fell
		// through (e.g. a lone table row). Render it by itself.
		run = append(run, lines[start])
		i = start + 1
	}
	var buf []byte
	buf = appendOpenTag(buf, atom.P, "md-paragraph")
	buf = append(buf, renderInline(strings.Join(run, "\n"))...)
	buf = appendCloseTag(buf, atom.P)
	return blockResult{html: string(buf), consumed: i - start}
}

// isBlockStart reports whether a trimmed line opens any non-paragraph
// block. Paragraph accumulation stops when one appears.
func isBlockStart(line string) bool {
	return strings.HasPrefix(line, "```") ||
		strings.HasPrefix(line, ">") ||
		headingRE.MatchString(line) ||
		ruleRE.MatchString(line) ||
		bulletRE.MatchString(line) ||
		orderedRE.MatchString(line) ||
		isTableRow(line)
}

func isTableRow(line string) bool {
	return strings.HasPrefix(line, "|") && strings.Count(line, "|") >= 2
}
