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
	"io"
	"strings"
)

// Lexer emits (token, line, quoted) triples from a character stream.
// It respects NGINX's quoting and escape rules, dispatches to
// extension lex hooks for directives whose body is not plain NGINX
// syntax, and enforces brace balance.
type Lexer struct {
	cs  *charStream
	ext *Extensions

	pending []Token

	buf      strings.Builder
	bufLine  int
	lastChunk string

	nextIsDirective bool
	depth           int
	file            string
}

// NewLexer returns a Lexer reading from r. file is used only to
// decorate errors and has no bearing on include resolution (that
// happens at the parser layer). If ext is nil, DefaultExtensions is
// used.
func NewLexer(r io.Reader, file string, ext *Extensions) *Lexer {
	if ext == nil {
		ext = DefaultExtensions
	}
	return &Lexer{
		cs:              newCharStream(r, file),
		ext:             ext,
		nextIsDirective: true,
		file:            file,
	}
}

// Next returns the next token. ok is false once the stream is
// exhausted with no error.
func (l *Lexer) Next() (Token, bool, error) {
	for len(l.pending) == 0 {
		eof, err := l.step()
		if err != nil {
			return Token{}, false, err
		}
		if eof {
			if l.buf.Len() > 0 {
				if err := l.flushBuffer(); err != nil {
					return Token{}, false, err
				}
			}
			if len(l.pending) == 0 {
				return Token{}, false, nil
			}
			break
		}
	}
	return l.dequeue()
}

// dequeue pops the next token off the pending queue and applies the
// brace-balance check.
func (l *Lexer) dequeue() (Token, bool, error) {
	tok := l.pending[0]
	l.pending = l.pending[1:]

	if tok.IsStructural() {
		switch tok.Text {
		case "{":
			l.depth++
		case "}":
			l.depth--
			if l.depth < 0 {
				return Token{}, false, newSyntaxErr(l.file, tok.Line, "unexpected \"}\"")
			}
		}
	}
	return tok, true, nil
}

// step consumes characters until it has enqueued at least one token
// or reached EOF.
func (l *Lexer) step() (eof bool, err error) {
	item, ok, err := l.cs.next()
	if err != nil {
		return false, err
	}
	if !ok {
		return true, nil
	}
	chunk, line := item.chunk, item.line

	switch {
	case isWhitespaceChunk(chunk):
		if l.buf.Len() > 0 {
			if err := l.flushBuffer(); err != nil {
				return false, err
			}
		}
		return false, nil

	case l.buf.Len() == 0 && chunk == "#":
		return false, l.lexComment(line)

	case l.buf.Len() > 0 && l.lastChunk == "$" && chunk == "{":
		l.appendChunk(chunk, line)
		return false, l.lexVarExpansion()

	case chunk == `"` || chunk == "'":
		if l.buf.Len() > 0 {
			l.appendChunk(chunk, line)
			return false, nil
		}
		return false, l.lexQuoted(chunk, line)

	case chunk == "{" || chunk == "}" || chunk == ";":
		if l.buf.Len() > 0 {
			if err := l.flushBuffer(); err != nil {
				return false, err
			}
		}
		l.pending = append(l.pending, Token{Text: chunk, Line: line, Quoted: false})
		l.nextIsDirective = true
		return false, nil

	default:
		l.appendChunk(chunk, line)
		return false, nil
	}
}

func (l *Lexer) appendChunk(chunk string, line int) {
	if l.buf.Len() == 0 {
		l.bufLine = line
	}
	l.buf.WriteString(chunk)
	l.lastChunk = chunk
}

// flushBuffer emits the accumulated buffer as a non-quoted token and
// clears it, dispatching to an extension lex hook if one is
// registered for the buffered directive name and we're at a directive
// position.
func (l *Lexer) flushBuffer() error {
	tok := Token{Text: l.buf.String(), Line: l.bufLine, Quoted: false}
	l.buf.Reset()
	l.lastChunk = ""
	return l.completeToken(tok)
}

// completeToken enqueues tok and, if appropriate, hands the char
// stream to a matching extension lex hook.
func (l *Lexer) completeToken(tok Token) error {
	l.pending = append(l.pending, tok)
	if l.nextIsDirective {
		if hook, ok := l.ext.lexHook(tok.Text); ok {
			extra, err := hook(l.cs, tok.Text)
			if err != nil {
				return err
			}
			l.pending = append(l.pending, extra...)
			l.nextIsDirective = true
			return nil
		}
	}
	l.nextIsDirective = false
	return nil
}

// lexComment accumulates chunks until one ends with a newline,
// emitting a comment token whose text is the raw "#..." without the
// terminator. Comments never flip nextIsDirective and are never
// handed to an extension.
func (l *Lexer) lexComment(startLine int) error {
	var text strings.Builder
	text.WriteString("#")
	for {
		item, ok, err := l.cs.next()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		chunk := item.chunk
		if strings.HasSuffix(chunk, "\n") {
			text.WriteString(strings.TrimSuffix(chunk, "\n"))
			break
		}
		text.WriteString(chunk)
	}
	l.pending = append(l.pending, Token{Text: text.String(), Line: startLine, Quoted: false})
	return nil
}

// lexVarExpansion appends chunks to the in-progress buffer, preserving
// "${name}" as a single token even with embedded punctuation, until a
// chunk equal to "}" is seen or whitespace is encountered (the latter
// indicates a malformed expansion; the caller's normal whitespace
// handling takes over from there).
func (l *Lexer) lexVarExpansion() error {
	for {
		item, ok, err := l.cs.next()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if isWhitespaceChunk(item.chunk) {
			l.cs.putBack(item)
			return nil
		}
		l.appendChunk(item.chunk, item.line)
		if item.chunk == "}" {
			return nil
		}
	}
}

// lexQuoted consumes a quoted token: quote is the opening quote
// character just seen with an empty buffer. \<quote> is un-escaped to
// a bare quote; every other chunk (including other escape pairs) is
// appended verbatim. The token ends at a chunk equal to the opening
// quote.
func (l *Lexer) lexQuoted(quote string, startLine int) error {
	var val strings.Builder
	for {
		item, ok, err := l.cs.next()
		if err != nil {
			return err
		}
		if !ok {
			return newSyntaxErr(l.file, startLine, "unterminated quoted string")
		}
		chunk := item.chunk
		if len(chunk) == 2 && chunk[0] == '\\' && chunk[1:] == quote {
			val.WriteString(quote)
			continue
		}
		if chunk == quote {
			break
		}
		val.WriteString(chunk)
	}
	return l.completeToken(Token{Text: val.String(), Line: startLine, Quoted: true})
}
