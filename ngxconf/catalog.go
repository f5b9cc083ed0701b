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

import "sync"

// Mask is a single bitmask that simultaneously encodes a directive's
// allowed argument arity and the contexts it may appear in.
type Mask uint64

// Arity class bits occupy the low 13 bits: one-hot NOARGS..TAKE7 in
// the bottom 8 bits (bit n set means "accepts exactly n args"), plus
// BLOCK, FLAG, ANY, ONEMORE, and TWOMORE.
const (
	NOARGS Mask = 1 << iota
	TAKE1
	TAKE2
	TAKE3
	TAKE4
	TAKE5
	TAKE6
	TAKE7
	BLOCK
	FLAG
	ANY
	ONEMORE
	TWOMORE
)

// argArityBits is the mask of the low bits that represent "accepts
// exactly n args" for n in [0,7].
const argArityBits = NOARGS | TAKE1 | TAKE2 | TAKE3 | TAKE4 | TAKE5 | TAKE6 | TAKE7

// Convenience unions for common NGINX directive arities.
const (
	TAKE12     = TAKE1 | TAKE2
	TAKE13     = TAKE1 | TAKE3
	TAKE23     = TAKE2 | TAKE3
	TAKE123    = TAKE1 | TAKE2 | TAKE3
	TAKE1234   = TAKE1 | TAKE2 | TAKE3 | TAKE4
	TAKE12345  = TAKE1 | TAKE2 | TAKE3 | TAKE4 | TAKE5
	TAKE123456 = TAKE1 | TAKE2 | TAKE3 | TAKE4 | TAKE5 | TAKE6
)

// Context bits occupy the high end of the mask, one per allowed
// nesting context, plus a DIRECT_CONF modifier meaning "only in the
// main, top-level file" (not inside an included file).
const (
	MAIN Mask = 1 << (13 + iota)
	EVENTS
	MAIL_MAIN
	MAIL_SRV
	STREAM_MAIN
	STREAM_SRV
	STREAM_UPS
	HTTP_MAIN
	HTTP_SRV
	HTTP_LOC
	HTTP_UPS
	HTTP_SIF
	HTTP_LIF
	HTTP_LMT
	DIRECT_CONF
)

// contextBits lists every context bit except the DIRECT_CONF
// modifier, which doesn't correspond to a nesting position.
var contextBits = []Mask{
	MAIN, EVENTS, MAIL_MAIN, MAIL_SRV, STREAM_MAIN, STREAM_SRV, STREAM_UPS,
	HTTP_MAIN, HTTP_SRV, HTTP_LOC, HTTP_UPS, HTTP_SIF, HTTP_LIF, HTTP_LMT,
}

// CONTEXTS maps each context bit to its canonical nested-block path.
// Note that HTTP_LOC's path never mentions "server": a location block
// reaches the same canonical context whether it is nested directly in
// a server block or in another location block (see enterBlockCtx).
var CONTEXTS = map[Mask][]string{
	MAIN:        {},
	EVENTS:      {"events"},
	MAIL_MAIN:   {"mail"},
	MAIL_SRV:    {"mail", "server"},
	STREAM_MAIN: {"stream"},
	STREAM_SRV:  {"stream", "server"},
	STREAM_UPS:  {"stream", "upstream"},
	HTTP_MAIN:   {"http"},
	HTTP_SRV:    {"http", "server"},
	HTTP_LOC:    {"http", "location"},
	HTTP_UPS:    {"http", "upstream"},
	HTTP_SIF:    {"http", "server", "if"},
	HTTP_LIF:    {"http", "location", "if"},
	HTTP_LMT:    {"http", "location", "limit_except"},
}

// enterBlockCtx computes the child context for a directive that opens
// a block. A "location" directive always lands in the flat ["http",
// "location"] context regardless of whether it is nested in a server
// block or in another location block, so repeated nesting of location
// blocks does not grow the context path. Every other directive simply
// appends its own name to the current context.
func enterBlockCtx(directive string, ctx []string) []string {
	if directive == "location" {
		return []string{"http", "location"}
	}
	child := make([]string, len(ctx), len(ctx)+1)
	copy(child, ctx)
	return append(child, directive)
}

// ctxMaskFor reverse-looks-up ctx in CONTEXTS, returning the matching
// bit and true, or 0 and false if ctx doesn't correspond to any known
// context.
func ctxMaskFor(ctx []string) (Mask, bool) {
	for _, bit := range contextBits {
		path := CONTEXTS[bit]
		if equalStrings(path, ctx) {
			return bit, true
		}
	}
	return 0, false
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Catalog is a mapping from directive name to its non-empty sequence
// of valid usage masks. It is immutable process-wide state once
// parsing begins for a given operation; extensions may register
// additional entries at startup.
type Catalog struct {
	mu      sync.RWMutex
	entries map[string][]Mask
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{entries: make(map[string][]Mask)}
}

// Register adds masks as additional valid usages of directive. It is
// additive: calling Register twice for the same directive accumulates
// masks rather than replacing them.
func (c *Catalog) Register(directive string, masks ...Mask) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[directive] = append(c.entries[directive], masks...)
}

// Lookup returns the masks registered for directive and whether any
// were found.
func (c *Catalog) Lookup(directive string) ([]Mask, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	masks, ok := c.entries[directive]
	return masks, ok
}

// Has reports whether directive has any catalog entry at all.
func (c *Catalog) Has(directive string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.entries[directive]
	return ok
}
