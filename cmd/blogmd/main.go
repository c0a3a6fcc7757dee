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

// blogmd converts blog Markdown to a sanitized HTML fragment.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
	"zombiezen.com/go/blogmd"
)

type options struct {
	strip        bool
	wordCount    bool
	excerptWidth int
}

func main() {
	var opts options
	var outPath string
	flags := pflag.NewFlagSet("blogmd", pflag.ExitOnError)
	flags.BoolVarP(&opts.strip, "strip", "s", false, "Emit plain text instead of HTML")
	flags.BoolVar(&opts.wordCount, "word-count", false, "Emit the word count instead of HTML")
	flags.IntVar(&opts.excerptWidth, "excerpt", 0, "Emit a plain-text excerpt of at most this many display cells")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: blogmd [flags] [input.md]")
		fmt.Fprintln(os.Stderr, "\nIf no input is provided, Markdown is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	out := io.Writer(os.Stdout)
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	if err := run(flags.Args(), os.Stdin, out, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, out io.Writer, opts options) error {
	var source []byte
	var err error
	switch len(args) {
	case 0:
		source, err = io.ReadAll(stdin)
	case 1:
		source, err = os.ReadFile(args[0])
	default:
		return fmt.Errorf("expected at most one input, got %d", len(args))
	}
	if err != nil {
		return err
	}

	markdown := string(source)
	switch {
	case opts.wordCount:
		_, err = fmt.Fprintln(out, blogmd.WordCount(markdown))
	case opts.excerptWidth > 0:
		_, err = fmt.Fprintln(out, blogmd.Excerpt(markdown, opts.excerptWidth))
	case opts.strip:
		_, err = fmt.Fprintln(out, blogmd.Strip(markdown))
	default:
		if err = blogmd.RenderHTML(out, markdown); err == nil {
			_, err = io.WriteString(out, "\n")
		}
	}
	return err
}
