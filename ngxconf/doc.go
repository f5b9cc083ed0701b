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

// Package ngxconf implements a lexer, parser, directive analyzer, and
// builder for NGINX configuration files. It converts configuration
// text into a directive tree, follows include directives across
// multiple files, validates directives against an injected catalog of
// allowed contexts and argument arities, and losslessly serializes the
// tree back to text.
package ngxconf
