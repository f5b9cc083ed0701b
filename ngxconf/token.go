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

// Token is a single lexical unit: a directive name, an argument, a
// comment, or one of the structural characters '{', '}', ';'.
type Token struct {
	// Text is the token body with surrounding quotes stripped and
	// \" / \' un-escaped when Quoted is true; backslash-escapes
	// outside quotes are preserved verbatim.
	Text string
	// Line is the 1-based source line on which the token began.
	Line int
	// Quoted is true iff the token came from inside a matching quote
	// pair, or was produced by an extension lexer declaring its
	// output string-like.
	Quoted bool
}

// IsStructural reports whether t is one of the fixed single-character
// tokens that carry no text of their own: '{', '}', or ';'.
func (t Token) IsStructural() bool {
	return !t.Quoted && (t.Text == "{" || t.Text == "}" || t.Text == ";")
}

// IsComment reports whether t is a comment token ("#..." up to but
// excluding the line terminator).
func (t Token) IsComment() bool {
	return !t.Quoted && len(t.Text) > 0 && t.Text[0] == '#'
}
