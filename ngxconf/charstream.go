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
	"bufio"
	"io"
	"strings"
	"unicode/utf8"
)

// charItem is one atomic unit of input: either a single user-visible
// character, or a two-rune backslash escape sequence kept together as
// one unit so downstream stages never see a backslash split from what
// it escapes. line is the 1-based source line after the chunk is
// consumed.
type charItem struct {
	chunk string
	line  int
}

// charStream turns raw bytes into a lazy, single-pass sequence of
// charItems: UTF-8 decoding, escape-pair merging, and line counting
// are folded into one pass. It supports putting back at most one item,
// which is all the lexer ever needs.
type charStream struct {
	r       *bufio.Reader
	file    string
	line    int
	pending charItem
	hasPend bool
}

func newCharStream(r io.Reader, file string) *charStream {
	return &charStream{r: bufio.NewReaderSize(r, 32*1024), file: file, line: 1}
}

// putBack re-queues item so the next call to next returns it again.
func (c *charStream) putBack(item charItem) {
	c.pending = item
	c.hasPend = true
}

// next returns the next charItem, or ok=false at a clean EOF.
func (c *charStream) next() (charItem, bool, error) {
	if c.hasPend {
		c.hasPend = false
		return c.pending, true, nil
	}

	ch, size, err := c.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			return charItem{}, false, nil
		}
		return charItem{}, false, &Error{Kind: ErrIO, File: c.file, Message: "reading input: " + err.Error(), cause: err}
	}
	if ch == utf8.RuneError && size == 1 {
		return charItem{}, false, &Error{Kind: ErrIO, File: c.file, Line: c.line, Message: "invalid UTF-8 byte sequence"}
	}

	chunk := string(ch)
	if ch == '\\' {
		next, nsize, nerr := c.r.ReadRune()
		if nerr != nil {
			if nerr == io.EOF {
				// A trailing lone backslash at EOF is emitted as-is.
				return c.emit(chunk), true, nil
			}
			return charItem{}, false, &Error{Kind: ErrIO, File: c.file, Message: "reading input: " + nerr.Error(), cause: nerr}
		}
		if next == utf8.RuneError && nsize == 1 {
			return charItem{}, false, &Error{Kind: ErrIO, File: c.file, Line: c.line, Message: "invalid UTF-8 byte sequence"}
		}
		chunk += string(next)
	}
	return c.emit(chunk), true, nil
}

func (c *charStream) emit(chunk string) charItem {
	if strings.HasSuffix(chunk, "\n") {
		c.line++
	}
	return charItem{chunk: chunk, line: c.line}
}

// isWhitespaceChunk reports whether chunk is a single whitespace rune.
// Escape-pair chunks always begin with a backslash and are therefore
// never whitespace.
func isWhitespaceChunk(chunk string) bool {
	if len(chunk) == 0 {
		return false
	}
	r, size := utf8.DecodeRuneInString(chunk)
	if size != len(chunk) {
		return false // a two-rune escape chunk
	}
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isEscapePair reports whether chunk is the two-character escape of r,
// i.e. a backslash followed by exactly r.
func isEscapePair(chunk string, r rune) bool {
	runes := []rune(chunk)
	return len(runes) == 2 && runes[0] == '\\' && runes[1] == r
}
