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
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineInlinesIncludes(t *testing.T) {
	dir := t.TempDir()
	writeTempFile(t, dir, "servers/a.conf", "server { listen 80; }\n")
	writeTempFile(t, dir, "servers/b.conf", "server { listen 81; }\n")
	writeTempFile(t, dir, "http.conf", "http{ include servers/*.conf; }\n")
	main := writeTempFile(t, dir, "nginx.conf", "events{} include http.conf;\n")

	opts := NewParseOptions()
	opts.Catalog = seededCatalog()
	opts.Combine = true

	payload, err := Parse(main, opts)
	require.NoError(t, err)
	require.Len(t, payload.Config, 1)

	tree := payload.Config[0].Parsed
	require.Len(t, tree, 2) // events{}, http{...} -- no "include" node survives

	for _, node := range tree {
		assert.NotEqual(t, "include", node.Directive)
	}

	httpNode := tree[1]
	assert.Equal(t, "http", httpNode.Directive)
	assert.Equal(t, filepath.Join(dir, "http.conf"), httpNode.File)
	require.Len(t, httpNode.Block, 2)
	assert.Equal(t, "server", httpNode.Block[0].Directive)
	assert.Equal(t, filepath.Join(dir, "servers/a.conf"), httpNode.Block[0].File)
	assert.Equal(t, "server", httpNode.Block[1].Directive)
	assert.Equal(t, filepath.Join(dir, "servers/b.conf"), httpNode.Block[1].File)
}

func TestCombineStatusFailedPropagates(t *testing.T) {
	dir := t.TempDir()
	main := writeTempFile(t, dir, "nginx.conf", "include missing.conf;\n")

	opts := NewParseOptions()
	opts.Catalog = seededCatalog()
	opts.Combine = true

	payload, err := Parse(main, opts)
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, payload.Status)
	require.Len(t, payload.Config, 1)
	assert.Equal(t, StatusFailed, payload.Config[0].Status)
}
