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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatNormalizesIndentation(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "nginx.conf", "events{worker_connections   1024;}\n")

	out, err := Format(path, nil, BuildOptions{Indent: 2})
	require.NoError(t, err)
	assert.Equal(t, "events {\n  worker_connections 1024;\n}\n", out)
}

func TestFormatIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "nginx.conf", "http{ server{ listen 80; } }\n")

	first, err := Format(path, nil, DefaultBuildOptions())
	require.NoError(t, err)

	path2 := writeTempFile(t, dir, "reformatted.conf", first)
	second, err := Format(path2, nil, DefaultBuildOptions())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestFormatDoesNotExpandIncludes(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "nginx.conf", "http{ include servers.conf; }\n")

	out, err := Format(path, nil, DefaultBuildOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "include servers.conf;")
}
