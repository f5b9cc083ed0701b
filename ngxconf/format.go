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

import "strings"

// Format reparses filename as a standalone file (include directives
// are left untouched rather than expanded) and rebuilds it with the
// given options, returning the canonical text. It is nothing more than
// Parse composed with Build under a fixed, validation-free option set:
// a formatter's job is to normalize whitespace, not to judge directive
// correctness.
func Format(filename string, ext *Extensions, buildOpts BuildOptions) (string, error) {
	opts := ParseOptions{
		Catalog:    NewCatalog(),
		Extensions: ext,
		SingleFile: true,
		Comments:   true,
		CheckCtx:   false,
		CheckArgs:  false,
	}
	payload, err := Parse(filename, opts)
	if err != nil {
		return "", err
	}
	if len(payload.Config) == 0 {
		return "", newIOErr(filename, 0, "no output produced")
	}
	fr := payload.Config[0]
	if fr.Status == StatusFailed && len(fr.Errors) > 0 {
		e := fr.Errors[0]
		return "", newSyntaxErr(filename, e.Line, "%s", e.Error)
	}

	buildOpts.Extensions = ext
	out, err := Build(fr.Parsed, buildOpts)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}

// Minify reparses filename, drops comments, and rebuilds it with all
// whitespace between statements removed: no indentation, no blank
// lines, siblings packed back to back. A single space still separates
// a directive from its arguments and precedes an opening "{", matching
// plain NGINX tokenization.
func Minify(filename string, ext *Extensions) (string, error) {
	opts := ParseOptions{
		Catalog:    NewCatalog(),
		Extensions: ext,
		SingleFile: true,
		Comments:   false,
		CheckCtx:   false,
		CheckArgs:  false,
	}
	payload, err := Parse(filename, opts)
	if err != nil {
		return "", err
	}
	if len(payload.Config) == 0 {
		return "", newIOErr(filename, 0, "no output produced")
	}
	fr := payload.Config[0]
	if fr.Status == StatusFailed && len(fr.Errors) > 0 {
		e := fr.Errors[0]
		return "", newSyntaxErr(filename, e.Line, "%s", e.Error)
	}

	if ext == nil {
		ext = DefaultExtensions
	}
	var b strings.Builder
	if err := buildCompact(&b, fr.Parsed, ext); err != nil {
		return "", err
	}
	return b.String() + "\n", nil
}

func buildCompact(b *strings.Builder, nodes []*DirectiveNode, ext *Extensions) error {
	for _, node := range nodes {
		if node.Directive == "#" {
			continue
		}

		if hook, ok := ext.buildHook(node.Directive); ok {
			out, err := hook(node, "", 0, false)
			if err != nil {
				return err
			}
			b.WriteString(out)
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
			b.WriteString(" {")
			if err := buildCompact(b, node.Block, ext); err != nil {
				return err
			}
			b.WriteString("}")
		} else {
			b.WriteString(";")
		}
	}
	return nil
}
