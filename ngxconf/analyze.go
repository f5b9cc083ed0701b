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

// analyze validates stmt against catalog, given the context sequence
// it was found in and the terminator ('{', ';', or '}') that followed
// its arguments. term is one of '{', ';', '}', or 0 when the input
// ended before any terminator. isMainFile is used for
// the DIRECT_CONF modifier, which restricts a usage to the top-level
// file.
func analyze(catalog *Catalog, file string, stmt *DirectiveNode, ctx []string, term byte, isMainFile bool, opts ParseOptions) error {
	if opts.Strict && !catalog.Has(stmt.Directive) {
		return newArgsErr(ErrUnknownDirective, file, stmt.Line, "unknown directive %q", stmt.Directive)
	}

	ctxMask, ctxKnown := ctxMaskFor(ctx)
	masks, hasEntry := catalog.Lookup(stmt.Directive)
	if !ctxKnown || !hasEntry {
		return nil // cannot validate
	}

	if opts.CheckCtx {
		var survivors []Mask
		for _, m := range masks {
			if m&ctxMask == 0 {
				continue
			}
			if m&DIRECT_CONF != 0 && !isMainFile {
				continue
			}
			survivors = append(survivors, m)
		}
		if len(survivors) == 0 {
			return newArgsErr(ErrContext, file, stmt.Line, "directive %q is not allowed here", stmt.Directive)
		}
		masks = survivors
	}

	if !opts.CheckArgs {
		return nil
	}

	n := len(stmt.Args)
	var lastErr error
	for i := len(masks) - 1; i >= 0; i-- {
		m := masks[i]

		if m&BLOCK != 0 {
			if term != '{' {
				lastErr = newArgsErr(ErrArgs, file, stmt.Line, "directive %q has no opening \"{\"", stmt.Directive)
				continue
			}
		} else {
			if term != ';' {
				lastErr = newArgsErr(ErrArgs, file, stmt.Line, "directive %q is not terminated by \";\"", stmt.Directive)
				continue
			}
		}

		if arityOK(m, n, stmt.Args) {
			return nil
		}

		if m&FLAG != 0 && n == 1 {
			lastErr = newArgsErr(ErrArgs, file, stmt.Line, "invalid value %q in %q directive, it must be \"on\" or \"off\"", stmt.Args[0], stmt.Directive)
			continue
		}
		lastErr = newArgsErr(ErrArgs, file, stmt.Line, "invalid number of arguments in %q directive", stmt.Directive)
	}

	return lastErr
}

func arityOK(m Mask, n int, args []string) bool {
	if n <= 7 && m&(1<<uint(n)) != 0 {
		return true
	}
	if m&FLAG != 0 && n == 1 && isOnOff(args[0]) {
		return true
	}
	if m&ANY != 0 {
		return true
	}
	if m&ONEMORE != 0 && n >= 1 {
		return true
	}
	if m&TWOMORE != 0 && n >= 2 {
		return true
	}
	return false
}

func isOnOff(s string) bool {
	lower := strings.ToLower(s)
	return lower == "on" || lower == "off"
}

func newArgsErr(kind Kind, file string, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, File: file, Line: line, Message: fmt.Sprintf(format, args...)}
}
