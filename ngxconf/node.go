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

// DirectiveNode is one statement in a parsed configuration tree. A
// comment is represented with Directive == "#" and its body (without
// the leading '#') in Comment.
type DirectiveNode struct {
	Directive string           `json:"directive"`
	Line      int              `json:"line"`
	Args      []string         `json:"args"`
	// HasBlock distinguishes a directive followed by "{...}" from one
	// terminated by ";". Block alone cannot carry this: an empty block
	// and no block both leave Block nil, so this field is the source
	// of truth the builder switches on.
	HasBlock bool             `json:"hasBlock,omitempty"`
	Block    []*DirectiveNode `json:"block,omitempty"`
	Includes []int            `json:"includes,omitempty"`
	Comment  string           `json:"comment,omitempty"`
	// File is only populated in combine mode, where it records which
	// source file this node originally came from.
	File string `json:"file,omitempty"`
}

// FileError is an error recorded against a single file's parse.
type FileError struct {
	Line     int `json:"line"`
	Error    string `json:"error"`
	Callback any `json:"callback,omitempty"`
}

// PayloadError is a FileError additionally carrying the file it came
// from, for the aggregated, payload-level error list.
type PayloadError struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Error    string `json:"error"`
	Callback any    `json:"callback,omitempty"`
}

// Status is the outcome of parsing one file, or of a whole payload.
type Status string

const (
	StatusOK     Status = "ok"
	StatusFailed Status = "failed"
)

// FileReport is the result of parsing a single file (or, in combine
// mode, the single logical file produced by inlining every include).
type FileReport struct {
	File   string       `json:"file"`
	Status Status       `json:"status"`
	Errors []FileError  `json:"errors"`
	Parsed []*DirectiveNode `json:"parsed"`
}

// Payload is the full result of a Parse call: one FileReport per file
// discovered through include expansion (or exactly one, in combine
// mode), plus the errors aggregated across all of them.
type Payload struct {
	Status Status         `json:"status"`
	Errors []PayloadError `json:"errors"`
	Config []FileReport   `json:"config"`
}

func (p *Payload) recordError(file string, line int, err error, callback any) {
	p.Status = StatusFailed
	p.Errors = append(p.Errors, PayloadError{File: file, Line: line, Error: err.Error(), Callback: callback})
}

func (fr *FileReport) recordError(line int, err error, callback any) {
	fr.Status = StatusFailed
	fr.Errors = append(fr.Errors, FileError{Line: line, Error: err.Error(), Callback: callback})
}
