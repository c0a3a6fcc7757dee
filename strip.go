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

	"go4.org/bytereplacer"
)

// Strip passes, applied in order.
// This is a best-effort denaturing of Markdown syntax, not a parser:
// it has no awareness of block boundaries,
// and pathological input can leave minor artifacts
// (acceptable for excerpting).
// Output is never rendered as HTML, so no escaping happens here.
var (
	stripFenceRE   = regexp.MustCompile("(?s)```.*?```")
	stripCodeRE    = regexp.MustCompile("`[^`]*`")
	stripImageRE   = regexp.MustCompile(`!\[[^\]]*\]\([^)]*\)`)
	stripLinkRE    = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	stripQuoteRE   = regexp.MustCompile(`(?m)^\s*(?:>\s?)+`)
	stripBulletRE  = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	stripOrderedRE = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	stripRuleRE    = regexp.MustCompile(`(?m)^\s*-{3,}\s*$`)
	whitespaceRE   = regexp.MustCompile(`\s+`)
)

// markerStripper removes emphasis, strikethrough, heading, and code
// markers wherever they appear.
// Star and underscore rules are gone after this pass,
// so stripRuleRE only needs the dash form.
var markerStripper = bytereplacer.New(
	"*", "",
	"_", "",
	"~", "",
	"`", "",
	"#", "",
)

// Strip reduces Markdown to plain text for excerpts and word counts.
// Fenced and inline code disappear entirely, links keep their visible
// text, all other syntax markers are dropped, and whitespace runs
// collapse to single spaces.
// Strip is independent of [Render]; the two never feed each other.
func Strip(markdown string) string {
	if markdown == "" {
		return ""
	}
	s := stripFenceRE.ReplaceAllString(markdown, "")
	s = stripCodeRE.ReplaceAllString(s, "")
	s = stripImageRE.ReplaceAllString(s, "")
	s = stripLinkRE.ReplaceAllString(s, "$1")
	s = string(markerStripper.Replace([]byte(s)))
	s = stripQuoteRE.ReplaceAllString(s, "")
	s = stripBulletRE.ReplaceAllString(s, "")
	s = stripOrderedRE.ReplaceAllString(s, "")
	s = stripRuleRE.ReplaceAllString(s, "")
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(s, " "))
}
