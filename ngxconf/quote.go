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

// enquote returns s unchanged when it contains no characters that
// would break NGINX's tokenization, else it returns a single-quoted
// form with embedded backslashes, single-quotes, and low-control
// characters escaped.
func enquote(s string) string {
	if !needsQuoting(s) {
		return s
	}
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\'':
			b.WriteString(`\'`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\v':
			b.WriteString(`\v`)
		case '\x1b':
			b.WriteString(`\e`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}

// splitUnits breaks s into the same atomic units the char stream
// would have produced: a single rune, or a two-rune backslash escape
// pair (including a trailing lone backslash, which forms its own
// one-rune unit since it has nothing to pair with).
func splitUnits(s string) []string {
	runes := []rune(s)
	var units []string
	for i := 0; i < len(runes); {
		if runes[i] == '\\' && i+1 < len(runes) {
			units = append(units, string(runes[i:i+2]))
			i += 2
			continue
		}
		units = append(units, string(runes[i]))
		i++
	}
	return units
}

// needsQuoting reports whether s must be single-quoted to survive a
// round trip through the lexer unchanged.
func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	units := splitUnits(s)

	first := units[0]
	if isWhitespaceChunk(first) {
		return true
	}
	switch first {
	case "{", "}", ";", `"`, "'":
		return true
	}
	if first == "$" && len(units) > 1 && units[1] == "{" {
		return true
	}

	for _, u := range units {
		if isWhitespaceChunk(u) {
			return true
		}
		switch u {
		case "{", ";", `"`, "'":
			return true
		}
	}

	if malformedVarExpansion(units) {
		return true
	}

	last := units[len(units)-1]
	if last == `\` || last == "$" {
		return true
	}

	return false
}

// malformedVarExpansion reports whether units contains a "${" that is
// never closed by a "}", or a "${" opened again before the previous
// one closed. Per the design this is deliberately permissive: it just
// forces quoting rather than being promoted to a parse error.
func malformedVarExpansion(units []string) bool {
	i := 0
	for i < len(units) {
		if units[i] == "$" && i+1 < len(units) && units[i+1] == "{" {
			i += 2
			closed := false
			for i < len(units) {
				if units[i] == "$" && i+1 < len(units) && units[i+1] == "{" {
					return true // nested
				}
				if units[i] == "}" {
					closed = true
					i++
					break
				}
				i++
			}
			if !closed {
				return true // unclosed
			}
			continue
		}
		i++
	}
	return false
}
