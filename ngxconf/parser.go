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
)

// ErrCallback is invoked once per recorded analyzer-class error. Its
// return value is attached as the Callback field of the payload-level
// error entry only; the file-level entry is unaffected.
type ErrCallback func(err error) any

// ParseOptions controls a Parse call.
type ParseOptions struct {
	// Catalog supplies the directive bitmask table. If nil, a catalog
	// with no entries is used, which disables context/arity
	// validation (analyze treats unknown directives as
	// unvalidatable, not invalid).
	Catalog *Catalog
	// Extensions supplies lex/build hooks. If nil, DefaultExtensions
	// is used.
	Extensions *Extensions

	// OnError, if non-nil, is invoked for each analyzer-class error
	// that gets recorded.
	OnError ErrCallback
	// CatchErrors continues after an analyzer error instead of
	// aborting the whole parse. Defaults to true; set explicitly via
	// NewParseOptions or by hand.
	CatchErrors bool
	// Ignore is a set of directive names skipped entirely, including
	// their whole block.
	Ignore map[string]bool
	// SingleFile disables include traversal.
	SingleFile bool
	// Comments retains comment directives in the tree.
	Comments bool
	// Strict rejects directives absent from Catalog.
	Strict bool
	// Combine flattens the payload into one logical file after
	// parsing, inlining every include.
	Combine bool
	// CheckCtx and CheckArgs propagate to the analyzer. Both default
	// to true.
	CheckCtx  bool
	CheckArgs bool
}

// NewParseOptions returns the documented defaults: CatchErrors,
// CheckCtx, and CheckArgs on; everything else off.
func NewParseOptions() ParseOptions {
	return ParseOptions{
		CatchErrors: true,
		CheckCtx:    true,
		CheckArgs:   true,
	}
}

// pendingFile is one entry in the BFS include work queue.
type pendingFile struct {
	path string
	ctx  []string
}

// Parse reads filename and every file it transitively includes
// (unless opts.SingleFile), returning the aggregated payload.
func Parse(filename string, opts ParseOptions) (*Payload, error) {
	if opts.Catalog == nil {
		opts.Catalog = NewCatalog()
	}
	if opts.Extensions == nil {
		opts.Extensions = DefaultExtensions
	}

	payload := &Payload{Status: StatusOK}
	included := map[string]int{filename: 0}
	queue := []pendingFile{{path: filename, ctx: nil}}

	mainDir := filepath.Dir(filename)

	for i := 0; i < len(queue); i++ {
		pf := queue[i]
		isMainFile := i == 0

		fr := FileReport{File: pf.path, Status: StatusOK}

		f, err := os.Open(pf.path)
		if err != nil {
			ioErr := newIOErr(pf.path, 0, "%v", err)
			fr.recordError(0, ioErr, nil)
			payload.recordError(pf.path, 0, ioErr, nil)
			payload.Config = append(payload.Config, fr)
			continue
		}

		lx := NewLexer(f, pf.path, opts.Extensions)
		p := &parseSession{
			lexer:      lx,
			file:       pf.path,
			mainDir:    mainDir,
			isMainFile: isMainFile,
			opts:       opts,
			payload:    payload,
			fr:         &fr,
			included:   included,
			queue:      &queue,
		}

		tree, err := p.parseContext(pf.ctx, false)
		closeErr := f.Close()
		if err != nil {
			return payload, err
		}
		if closeErr != nil {
			return payload, newIOErr(pf.path, 0, "%v", closeErr)
		}

		fr.Parsed = tree
		payload.Config = append(payload.Config, fr)
		if fr.Status == StatusFailed {
			payload.Status = StatusFailed
		}
	}

	if opts.Combine && len(payload.Config) > 0 {
		combined, err := combine(payload)
		if err != nil {
			return payload, err
		}
		payload.Config = []FileReport{*combined}
	}

	return payload, nil
}

// parseSession carries the state shared across one file's recursive
// parseContext calls.
type parseSession struct {
	lexer      *Lexer
	file       string
	mainDir    string
	isMainFile bool
	opts       ParseOptions
	payload    *Payload
	fr         *FileReport
	included   map[string]int
	queue      *[]pendingFile
}

// parseContext reads tokens until a non-quoted "}" at the current
// depth or EOF, producing the directive tree for one block. consume
// discards tokens instead of collecting them, for skipping an ignored
// sub-tree.
func (p *parseSession) parseContext(ctx []string, consume bool) ([]*DirectiveNode, error) {
	var result []*DirectiveNode

	for {
		tok, ok, err := p.lexer.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return result, nil
		}

		if tok.IsStructural() && tok.Text == "}" {
			return result, nil
		}

		if consume {
			if tok.IsStructural() && tok.Text == "{" {
				if _, err := p.parseContext(ctx, true); err != nil {
					return nil, err
				}
			}
			continue
		}

		if tok.IsComment() {
			if p.opts.Comments {
				result = append(result, &DirectiveNode{
					Directive: "#",
					Line:      tok.Line,
					Comment:   tok.Text[1:],
				})
			}
			continue
		}

		stmt, heldComments, term, err := p.readStatement(tok)
		if err != nil {
			return nil, err
		}
		if stmt == nil {
			// The whole statement was discarded (ignored directive
			// with no block, or consumed as an orphaned block after
			// a recorded error).
			continue
		}

		if p.opts.Ignore[stmt.Directive] {
			if term == '{' {
				if _, err := p.parseContext(ctx, true); err != nil {
					return nil, err
				}
			}
			continue
		}

		if stmt.Directive == "if" {
			stripParens(stmt)
		}

		aerr := analyze(p.opts.Catalog, p.file, stmt, ctx, term, p.isMainFile, p.opts)
		if aerr != nil {
			if !p.opts.CatchErrors {
				return nil, aerr
			}
			var cb any
			if p.opts.OnError != nil {
				cb = p.opts.OnError(aerr)
			}
			p.fr.recordError(stmt.Line, aerr, nil)
			p.payload.recordError(p.file, stmt.Line, aerr, cb)

			if isUnterminatedError(aerr) {
				if term == '{' {
					if _, err := p.parseContext(ctx, true); err != nil {
						return nil, err
					}
				}
				continue
			}
		}

		if stmt.Directive == "include" && !p.opts.SingleFile {
			if err := p.resolveIncludes(stmt); err != nil {
				return nil, err
			}
		}

		if term == '{' {
			childCtx := enterBlockCtx(stmt.Directive, ctx)
			block, err := p.parseContext(childCtx, false)
			if err != nil {
				return nil, err
			}
			stmt.HasBlock = true
			stmt.Block = block
		}

		result = append(result, stmt)
		result = append(result, heldComments...)
	}
}

// readStatement consumes a directive name token already read by the
// caller, plus its arguments up to the next non-quoted "{", ";", or
// "}". It returns the assembled statement, any inline comments found
// among the arguments (to be appended after the statement is
// committed), and the terminator byte seen.
func (p *parseSession) readStatement(nameTok Token) (*DirectiveNode, []*DirectiveNode, byte, error) {
	stmt := &DirectiveNode{Directive: nameTok.Text, Line: nameTok.Line}
	var held []*DirectiveNode

	for {
		tok, ok, err := p.lexer.Next()
		if err != nil {
			return nil, nil, 0, err
		}
		if !ok {
			return stmt, held, 0, nil
		}

		if tok.IsStructural() {
			switch tok.Text {
			case "{":
				return stmt, held, '{', nil
			case ";":
				return stmt, held, ';', nil
			case "}":
				return stmt, held, '}', nil
			}
		}

		if tok.IsComment() {
			if p.opts.Comments {
				held = append(held, &DirectiveNode{
					Directive: "#",
					Line:      stmt.Line,
					Comment:   tok.Text[1:],
				})
			}
			continue
		}

		stmt.Args = append(stmt.Args, tok.Text)
	}
}

// stripParens removes exactly one leading "(" from the first argument
// and one trailing ")" from the last, dropping either if it becomes
// empty. This mirrors the `if` directive's traditional syntax sugar:
// `if ($a = $b)` carries its condition as ordinary arguments.
func stripParens(stmt *DirectiveNode) {
	if len(stmt.Args) == 0 {
		return
	}
	first := stmt.Args[0]
	if len(first) > 0 && first[0] == '(' {
		stmt.Args[0] = first[1:]
	}
	last := len(stmt.Args) - 1
	lastArg := stmt.Args[last]
	if len(lastArg) > 0 && lastArg[len(lastArg)-1] == ')' {
		stmt.Args[last] = lastArg[:len(lastArg)-1]
	}

	if stmt.Args[last] == "" {
		stmt.Args = stmt.Args[:last]
	}
	if len(stmt.Args) > 0 && stmt.Args[0] == "" {
		stmt.Args = stmt.Args[1:]
	}
}

func isUnterminatedError(err error) bool {
	e, ok := err.(*Error)
	if !ok {
		return false
	}
	const suffix = `is not terminated by ";"`
	return len(e.Message) >= len(suffix) && e.Message[len(e.Message)-len(suffix):] == suffix
}

// resolveIncludes expands an include directive's single pattern
// argument into one or more discovered files, appending unseen ones to
// the BFS work queue and recording every resolved index (new or
// previously seen) on stmt.Includes.
func (p *parseSession) resolveIncludes(stmt *DirectiveNode) error {
	if len(stmt.Args) != 1 {
		return nil
	}
	pattern := stmt.Args[0]
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(p.mainDir, pattern)
	}

	var matches []string
	if hasGlobMagic(pattern) {
		found, err := filepath.Glob(pattern)
		if err != nil {
			ierr := newIOErr(p.file, stmt.Line, "glob expansion failed for %q: %v", stmt.Args[0], err)
			return p.recordIncludeErr(stmt, ierr)
		}
		matches = found
	} else if fileExists(pattern) {
		matches = []string{pattern}
	} else {
		ierr := newIOErr(p.file, stmt.Line, "No such file or directory: %q", pattern)
		return p.recordIncludeErr(stmt, ierr)
	}

	for _, m := range matches {
		idx, seen := p.included[m]
		if !seen {
			idx = len(*p.queue)
			p.included[m] = idx
			*p.queue = append(*p.queue, pendingFile{path: m})
		}
		stmt.Includes = append(stmt.Includes, idx)
	}
	return nil
}

func (p *parseSession) recordIncludeErr(stmt *DirectiveNode, err *Error) error {
	if !p.opts.CatchErrors {
		return err
	}
	var cb any
	if p.opts.OnError != nil {
		cb = p.opts.OnError(err)
	}
	p.fr.recordError(stmt.Line, err, nil)
	p.payload.recordError(p.file, stmt.Line, err, cb)
	stmt.Includes = stmt.Includes[:0]
	return nil
}
