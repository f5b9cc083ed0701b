// Copyright 2026 The ngxconf Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package ngxconf

import (
	"os"
	"path/filepath"
	"strings"
)

// BuildOptions controls how a directive tree is rendered back to
// text.
type BuildOptions struct {
	// Indent is the number of spaces per nesting level when Tabs is
	// false. Defaults to 4.
	Indent int
	// Tabs renders one tab per nesting level instead of Indent
	// spaces.
	Tabs bool
	// Header, if non-empty, is emitted as one or more leading "# "
	// comment lines before the directive tree.
	Header string
	// Extensions supplies build hooks; if nil, DefaultExtensions is
	// used.
	Extensions *Extensions
}

// DefaultBuildOptions returns the canonical option set: 4-space
// indentation, no header.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Indent: 4}
}

// Build renders a directive tree back to canonical NGINX configuration
// text.
func Build(nodes []*DirectiveNode, opts BuildOptions) (string, error) {
	if opts.Indent <= 0 {
		opts.Indent = 4
	}
	ext := opts.Extensions
	if ext == nil {
		ext = DefaultExtensions
	}

	var b strings.Builder
	if opts.Header != "" {
		for _, line := range strings.Split(strings.TrimRight(opts.Header, "\n"), "\n") {
			b.WriteString("# ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	if err := buildBlock(&b, nodes, 0, opts, ext); err != nil {
		return "", err
	}
	return b.String(), nil
}

func buildBlock(b *strings.Builder, nodes []*DirectiveNode, depth int, opts BuildOptions, ext *Extensions) error {
	margin := marginFor(opts, depth)
	prevLine := 0
	prevSet := false
	first := true

	for _, node := range nodes {
		if node.Directive == "#" && prevSet && node.Line == prevLine {
			b.WriteString(" #")
			b.WriteString(node.Comment)
			continue
		}

		if !first || depth > 0 {
			b.WriteString("\n")
		}
		first = false
		b.WriteString(margin)

		if node.Directive == "#" {
			b.WriteString("#")
			b.WriteString(node.Comment)
			prevLine = node.Line
			prevSet = true
			continue
		}

		if hook, ok := ext.buildHook(node.Directive); ok {
			out, err := hook(node, marginFor(opts, depth+1), opts.Indent, opts.Tabs)
			if err != nil {
				return err
			}
			b.WriteString(out)
			prevLine = node.Line
			prevSet = true
			continue
		}

		if node.Directive == "if" {
			b.WriteString("if (")
			for i, a := range node.Args {
				if i > 0 {
					b.WriteString(" ")
				}
				b.WriteString(enquote(a))
			}
			b.WriteString(")")
		} else {
			b.WriteString(node.Directive)
			for _, a := range node.Args {
				b.WriteString(" ")
				b.WriteString(enquote(a))
			}
		}

		if node.HasBlock {
			if len(node.Block) == 0 {
				b.WriteString(" {}")
			} else {
				b.WriteString(" {")
				if err := buildBlock(b, node.Block, depth+1, opts, ext); err != nil {
					return err
				}
				b.WriteString("\n")
				b.WriteString(margin)
				b.WriteString("}")
			}
		} else {
			b.WriteString(";")
		}
		prevLine = node.Line
		prevSet = true
	}
	return nil
}

func marginFor(opts BuildOptions, depth int) string {
	unit := strings.Repeat(" ", opts.Indent)
	if opts.Tabs {
		unit = "\t"
	}
	return strings.Repeat(unit, depth)
}

// BuildFiles renders every file report in payload and writes each to
// its File path resolved against rootDir (unless File is already
// absolute), creating parent directories as needed. Every file is
// written with exactly one trailing newline.
func BuildFiles(payload *Payload, rootDir string, opts BuildOptions) error {
	for _, fr := range payload.Config {
		out, err := Build(fr.Parsed, opts)
		if err != nil {
			return err
		}
		out = strings.TrimRight(out, "\n") + "\n"

		path := fr.File
		if !filepath.IsAbs(path) {
			path = filepath.Join(rootDir, path)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return newIOErr(path, 0, "creating directory: %v", err)
		}
		if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
			return newIOErr(path, 0, "writing file: %v", err)
		}
	}
	return nil
}
