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

	"golang.org/x/text/cases"
)

// fenceLanguages is the fixed allow-list of fence info strings.
// The resolved name is interpolated into a class attribute unescaped,
// so membership here is a security boundary, not configuration.
var fenceLanguages = map[string]struct{}{
	"javascript": {},
	"typescript": {},
	"python":     {},
	"html":       {},
	"css":        {},
	"json":       {},
	"bash":       {},
	"sql":        {},
	"jsx":        {},
	"tsx":        {},
}

// languageClass maps the text after a fence's opening backticks
// to a safe CSS class.
// Unknown or empty tags resolve to language-plaintext.
func languageClass(info string) string {
	tag := cases.Fold().String(strings.TrimSpace(info))
	if _, ok := fenceLanguages[tag]; ok {
		return "language-" + tag
	}
	return "language-plaintext"
}
