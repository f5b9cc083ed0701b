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

// Package directives holds a representative, hand-seeded subset of the
// NGINX directive grammar expressed as ngxconf bitmask entries. It
// deliberately does not attempt to mirror the full upstream directive
// list; it covers most of the arity classes and context bits the
// catalog format supports (no entry uses TAKE4..TAKE7, STREAM_UPS, or
// HTTP_SIF), with directives real NGINX users would recognize.
package directives

import "github.com/ngxkit/ngxconf/ngxconf"

// entry is one name plus its set of valid usage masks, mirroring the
// name -> []Mask shape of ngxconf.Catalog's internal table.
type entry struct {
	name  string
	masks []ngxconf.Mask
}

// table is the seed data. Each directive lists every context it may
// appear in paired with the arity class that applies there; most
// directives use the same arity everywhere. Several (like
// "proxy_pass") are split across contexts to exercise multi-context
// entries, and "daemon" carries the DIRECT_CONF modifier.
var table = []entry{
	// Top-level, main-file-only blocks.
	{"events", []ngxconf.Mask{ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.MAIN}},
	{"http", []ngxconf.Mask{ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.MAIN}},
	{"stream", []ngxconf.Mask{ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.MAIN}},
	{"mail", []ngxconf.Mask{ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.MAIN}},

	// Global, main-only scalar directives.
	{"user", []ngxconf.Mask{ngxconf.TAKE12 | ngxconf.MAIN}},
	{"pid", []ngxconf.Mask{ngxconf.TAKE1 | ngxconf.MAIN}},
	{"worker_processes", []ngxconf.Mask{ngxconf.TAKE1 | ngxconf.MAIN}},
	{"daemon", []ngxconf.Mask{ngxconf.FLAG | ngxconf.MAIN | ngxconf.DIRECT_CONF}},
	{"include", []ngxconf.Mask{
		ngxconf.TAKE1 | ngxconf.MAIN,
		ngxconf.TAKE1 | ngxconf.EVENTS,
		ngxconf.TAKE1 | ngxconf.HTTP_MAIN,
		ngxconf.TAKE1 | ngxconf.HTTP_SRV,
		ngxconf.TAKE1 | ngxconf.HTTP_LOC,
		ngxconf.TAKE1 | ngxconf.HTTP_UPS,
		ngxconf.TAKE1 | ngxconf.STREAM_MAIN,
		ngxconf.TAKE1 | ngxconf.STREAM_SRV,
		ngxconf.TAKE1 | ngxconf.MAIL_MAIN,
		ngxconf.TAKE1 | ngxconf.MAIL_SRV,
	}},

	// events {}
	{"worker_connections", []ngxconf.Mask{ngxconf.TAKE1 | ngxconf.EVENTS}},
	{"multi_accept", []ngxconf.Mask{ngxconf.FLAG | ngxconf.EVENTS}},
	{"use", []ngxconf.Mask{ngxconf.TAKE1 | ngxconf.EVENTS}},

	// http {}
	{"server", []ngxconf.Mask{
		ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.HTTP_MAIN,
		ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.MAIL_MAIN,
		ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.STREAM_MAIN,
		ngxconf.BLOCK | ngxconf.NOARGS | ngxconf.HTTP_UPS,
	}},
	{"upstream", []ngxconf.Mask{
		ngxconf.BLOCK | ngxconf.TAKE1 | ngxconf.HTTP_MAIN,
		ngxconf.BLOCK | ngxconf.TAKE1 | ngxconf.STREAM_MAIN,
	}},
	{"location", []ngxconf.Mask{
		ngxconf.BLOCK | ngxconf.TAKE1 | ngxconf.HTTP_SRV,
		ngxconf.BLOCK | ngxconf.TAKE1 | ngxconf.HTTP_LOC,
		ngxconf.BLOCK | ngxconf.TAKE12 | ngxconf.HTTP_SRV,
		ngxconf.BLOCK | ngxconf.TAKE12 | ngxconf.HTTP_LOC,
	}},
	{"if", []ngxconf.Mask{
		ngxconf.BLOCK | ngxconf.TAKE1 | ngxconf.HTTP_SRV,
		ngxconf.BLOCK | ngxconf.TAKE1 | ngxconf.HTTP_LOC,
	}},
	{"limit_except", []ngxconf.Mask{ngxconf.BLOCK | ngxconf.ONEMORE | ngxconf.HTTP_LOC}},

	// http main/server/location scalars.
	{"listen", []ngxconf.Mask{
		ngxconf.ONEMORE | ngxconf.HTTP_SRV,
		ngxconf.ONEMORE | ngxconf.STREAM_SRV,
		ngxconf.ONEMORE | ngxconf.MAIL_SRV,
	}},
	{"server_name", []ngxconf.Mask{ngxconf.ONEMORE | ngxconf.HTTP_SRV}},
	{"root", []ngxconf.Mask{
		ngxconf.TAKE1 | ngxconf.HTTP_MAIN,
		ngxconf.TAKE1 | ngxconf.HTTP_SRV,
		ngxconf.TAKE1 | ngxconf.HTTP_LOC,
		ngxconf.TAKE1 | ngxconf.HTTP_LIF,
	}},
	{"index", []ngxconf.Mask{
		ngxconf.ONEMORE | ngxconf.HTTP_MAIN,
		ngxconf.ONEMORE | ngxconf.HTTP_SRV,
		ngxconf.ONEMORE | ngxconf.HTTP_LOC,
	}},
	{"try_files", []ngxconf.Mask{ngxconf.TWOMORE | ngxconf.HTTP_SRV, ngxconf.TWOMORE | ngxconf.HTTP_LOC}},
	{"return", []ngxconf.Mask{
		ngxconf.TAKE12 | ngxconf.HTTP_SRV,
		ngxconf.TAKE12 | ngxconf.HTTP_LOC,
		ngxconf.TAKE12 | ngxconf.HTTP_LIF,
	}},
	{"rewrite", []ngxconf.Mask{
		ngxconf.TAKE23 | ngxconf.HTTP_SRV,
		ngxconf.TAKE23 | ngxconf.HTTP_LOC,
		ngxconf.TAKE23 | ngxconf.HTTP_LIF,
	}},
	{"proxy_pass", []ngxconf.Mask{
		ngxconf.TAKE1 | ngxconf.HTTP_LOC,
		ngxconf.TAKE1 | ngxconf.HTTP_LIF,
		ngxconf.TAKE1 | ngxconf.HTTP_LMT,
	}},
	{"proxy_set_header", []ngxconf.Mask{
		ngxconf.TAKE2 | ngxconf.HTTP_MAIN,
		ngxconf.TAKE2 | ngxconf.HTTP_SRV,
		ngxconf.TAKE2 | ngxconf.HTTP_LOC,
	}},
	{"gzip", []ngxconf.Mask{
		ngxconf.FLAG | ngxconf.HTTP_MAIN,
		ngxconf.FLAG | ngxconf.HTTP_SRV,
		ngxconf.FLAG | ngxconf.HTTP_LOC,
	}},
	{"access_log", []ngxconf.Mask{
		ngxconf.ANY | ngxconf.HTTP_MAIN,
		ngxconf.ANY | ngxconf.HTTP_SRV,
		ngxconf.ANY | ngxconf.HTTP_LOC,
	}},
	{"log_format", []ngxconf.Mask{ngxconf.TWOMORE | ngxconf.HTTP_MAIN}},

	// stream/mail
	{"proxy_timeout", []ngxconf.Mask{ngxconf.TAKE1 | ngxconf.STREAM_SRV}},
	{"smtp_auth", []ngxconf.Mask{ngxconf.ONEMORE | ngxconf.MAIL_SRV}},
	{"set_by_lua_block", []ngxconf.Mask{
		ngxconf.TAKE12 | ngxconf.HTTP_MAIN,
		ngxconf.TAKE12 | ngxconf.HTTP_SRV,
		ngxconf.TAKE12 | ngxconf.HTTP_LOC,
	}},

	// Comments and unknown directives are never registered: the
	// catalog only ever holds real directive names.
}

// RegisterDefaults seeds catalog with this package's directive table.
// It is not idempotent: ngxconf.Catalog.Register is additive, so a
// second call on the same catalog duplicates every entry's masks.
// Callers should call it exactly once per catalog.
func RegisterDefaults(catalog *ngxconf.Catalog) {
	for _, e := range table {
		catalog.Register(e.name, e.masks...)
	}
}
