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
	"fmt"
	"strings"
)

// ScriptBlockLexHook handles directives whose body is an embedded,
// brace-delimited blob of foreign syntax (for example a scripting
// language's statement block), optionally preceded by a single bare
// argument (a variable name) before the opening brace.
//
// It reads characters until the outermost "{"..."}" pair is balanced,
// tracking nesting depth and skipping over string literals (delimited
// by a matching ' or ") and single-line comments (starting with #) so
// that braces appearing inside them don't perturb the depth count. The
// enclosed text is yielded as one quoted-style token followed by a
// synthetic ";" terminator, since the embedded syntax itself has none.
func ScriptBlockLexHook(cs charSource, directive string) ([]Token, error) {
	var tokens []Token

	if err := skipHookWhitespace(cs); err != nil {
		return nil, err
	}

	item, ok, err := cs.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, newSyntaxErr("", 0, "unexpected EOF in %q directive", directive)
	}

	if item.chunk != "{" {
		argLine := item.line
		var arg strings.Builder
		arg.WriteString(item.chunk)
		for {
			next, ok, err := cs.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, newSyntaxErr("", argLine, "unexpected EOF in %q directive", directive)
			}
			if isWhitespaceChunk(next.chunk) {
				break
			}
			arg.WriteString(next.chunk)
		}
		tokens = append(tokens, Token{Text: arg.String(), Line: argLine, Quoted: false})

		if err := skipHookWhitespace(cs); err != nil {
			return nil, err
		}
		item, ok, err = cs.next()
		if err != nil {
			return nil, err
		}
		if !ok || item.chunk != "{" {
			return nil, newSyntaxErr("", argLine, "directive %q has no opening \"{\"", directive)
		}
	}

	blockLine := item.line
	body, err := readBalancedBlock(cs, blockLine)
	if err != nil {
		return nil, err
	}

	tokens = append(tokens, Token{Text: body, Line: blockLine, Quoted: true})
	tokens = append(tokens, Token{Text: ";", Line: blockLine, Quoted: false})
	return tokens, nil
}

// ScriptBlockBuildHook is the build-side counterpart of
// ScriptBlockLexHook: it re-assembles the directive, any pre-block
// arguments, and the raw embedded body into the "name args... { body }"
// shape, using exactly the text ScriptBlockLexHook captured so the
// round trip is stable.
func ScriptBlockBuildHook(node *DirectiveNode, padding string, indent int, tabs bool) (string, error) {
	if len(node.Args) == 0 {
		return "", &Error{Kind: ErrExtension, Message: fmt.Sprintf("directive %q is missing its embedded block body", node.Directive)}
	}
	body := node.Args[len(node.Args)-1]
	pre := node.Args[:len(node.Args)-1]

	var b strings.Builder
	b.WriteString(node.Directive)
	for _, a := range pre {
		b.WriteString(" ")
		b.WriteString(a)
	}
	b.WriteString(" {")
	b.WriteString(body)
	b.WriteString("}")
	return b.String(), nil
}

func skipHookWhitespace(cs charSource) error {
	for {
		item, ok, err := cs.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if !isWhitespaceChunk(item.chunk) {
			cs.putBack(item)
			return nil
		}
	}
}

func readBalancedBlock(cs charSource, startLine int) (string, error) {
	var body strings.Builder
	depth := 1
	for {
		item, ok, err := cs.next()
		if err != nil {
			return "", err
		}
		if !ok {
			return "", newSyntaxErr("", startLine, "unbalanced \"{\" in embedded block")
		}
		chunk := item.chunk

		switch chunk {
		case `'`, `"`:
			body.WriteString(chunk)
			if err := copyStringLiteral(cs, chunk, &body); err != nil {
				return "", err
			}
			continue
		case "#":
			body.WriteString(chunk)
			copyCommentLine(cs, &body)
			continue
		case "{":
			depth++
		case "}":
			depth--
			if depth == 0 {
				return body.String(), nil
			}
		}
		body.WriteString(chunk)
	}
}

func copyStringLiteral(cs charSource, quote string, body *strings.Builder) error {
	for {
		item, ok, err := cs.next()
		if err != nil {
			return err
		}
		if !ok {
			return newSyntaxErr("", 0, "unterminated string literal in embedded block")
		}
		body.WriteString(item.chunk)
		if item.chunk == quote {
			return nil
		}
	}
}

func copyCommentLine(cs charSource, body *strings.Builder) {
	for {
		item, ok, err := cs.next()
		if err != nil || !ok {
			return
		}
		body.WriteString(item.chunk)
		if strings.HasSuffix(item.chunk, "\n") {
			return
		}
	}
}
