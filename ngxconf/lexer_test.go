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

type lexerTestCase struct {
	input    string
	expected []Token
}

func lexAll(t *testing.T, input string) []Token {
	t.Helper()
	lx := NewLexer(strings.NewReader(input), "test.conf", nil)
	var got []Token
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, tok)
	}
	return got
}

func TestLexerSimple(t *testing.T) {
	cases := []lexerTestCase{
		{
			input: "events { worker_connections 1024; }\n",
			expected: []Token{
				{Text: "events", Line: 1},
				{Text: "{", Line: 1},
				{Text: "worker_connections", Line: 1},
				{Text: "1024", Line: 1},
				{Text: ";", Line: 1},
				{Text: "}", Line: 1},
			},
		},
		{
			input: "user nginx;\nworker_processes 4;\n",
			expected: []Token{
				{Text: "user", Line: 1},
				{Text: "nginx", Line: 1},
				{Text: ";", Line: 1},
				{Text: "worker_processes", Line: 2},
				{Text: "4", Line: 2},
				{Text: ";", Line: 2},
			},
		},
	}

	for i, tc := range cases {
		got := lexAll(t, tc.input)
		if len(got) != len(tc.expected) {
			t.Fatalf("case %d: got %d tokens, want %d: %+v", i, len(got), len(tc.expected), got)
		}
		for j, tok := range got {
			want := tc.expected[j]
			if tok.Text != want.Text || tok.Line != want.Line {
				t.Errorf("case %d token %d: got %+v, want %+v", i, j, tok, want)
			}
		}
	}
}

func TestLexerQuotedEscape(t *testing.T) {
	got := lexAll(t, `log_format main "hello \"world\"";`)
	want := []Token{
		{Text: "log_format", Line: 1},
		{Text: "main", Line: 1},
		{Text: `hello "world"`, Line: 1, Quoted: true},
		{Text: ";", Line: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, tok := range got {
		if tok.Text != want[i].Text || tok.Quoted != want[i].Quoted {
			t.Errorf("token %d: got %+v, want %+v", i, tok, want[i])
		}
	}
}

func TestLexerUnexpectedCloseBrace(t *testing.T) {
	lx := NewLexer(strings.NewReader("events { } }"), "test.conf", nil)
	var lastErr error
	for {
		_, ok, err := lx.Next()
		if err != nil {
			lastErr = err
			break
		}
		if !ok {
			break
		}
	}
	if lastErr == nil {
		t.Fatal("expected an unexpected-brace error, got none")
	}
	e, ok := lastErr.(*Error)
	if !ok || e.Kind != ErrSyntax {
		t.Fatalf("expected a syntax Error, got %T: %v", lastErr, lastErr)
	}
}

func TestLexerComment(t *testing.T) {
	got := lexAll(t, "# a comment\nfoo bar;\n")
	if len(got) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(got), got)
	}
	if got[0].Text != "# a comment" || !got[0].IsComment() {
		t.Errorf("expected a comment token, got %+v", got[0])
	}
	if got[1].Text != "foo" || got[2].Text != "bar" || got[3].Text != ";" {
		t.Errorf("unexpected tokens after comment: %+v", got[1:])
	}
}

func TestLexerScriptBlockRoundTrip(t *testing.T) {
	ext := NewExtensions()
	ext.RegisterLexHook(ScriptBlockLexHook, "set_by_lua_block")
	ext.RegisterBuildHook(ScriptBlockBuildHook, "set_by_lua_block")

	lx := NewLexer(strings.NewReader(`set_by_lua_block $res { return { 1,2,3 } }`), "test.conf", ext)
	var got []Token
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			t.Fatalf("unexpected lex error: %v", err)
		}
		if !ok {
			break
		}
		got = append(got, tok)
	}

	if len(got) != 4 {
		t.Fatalf("got %d tokens, want 4: %+v", len(got), got)
	}
	if got[0].Text != "set_by_lua_block" || got[1].Text != "$res" {
		t.Fatalf("unexpected directive/arg tokens: %+v", got[:2])
	}
	if !got[2].Quoted || got[2].Text != " return { 1,2,3 } " {
		t.Fatalf("unexpected body token: %+v", got[2])
	}
	if got[3].Text != ";" {
		t.Fatalf("expected synthetic terminator, got %+v", got[3])
	}
}
