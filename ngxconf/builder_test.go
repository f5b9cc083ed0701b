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

func TestBuildSimpleTree(t *testing.T) {
	tree := []*DirectiveNode{
		{
			Directive: "events",
			Line:      1,
			HasBlock:  true,
			Block: []*DirectiveNode{
				{Directive: "worker_connections", Line: 1, Args: []string{"1024"}},
			},
		},
	}
	out, err := Build(tree, DefaultBuildOptions())
	require.NoError(t, err)
	assert.Equal(t, "events {\n    worker_connections 1024;\n}", out)
}

func TestBuildQuotesArguments(t *testing.T) {
	tree := []*DirectiveNode{
		{Directive: "server_name", Line: 1, Args: []string{"has space"}},
	}
	out, err := Build(tree, DefaultBuildOptions())
	require.NoError(t, err)
	assert.Equal(t, "server_name 'has space';", out)
}

func TestBuildIfDirective(t *testing.T) {
	tree := []*DirectiveNode{
		{
			Directive: "if",
			Line:      1,
			Args:      []string{"$a", "=", "$b"},
			HasBlock:  true,
			Block: []*DirectiveNode{
				{Directive: "return", Line: 1, Args: []string{"403"}},
			},
		},
	}
	out, err := Build(tree, DefaultBuildOptions())
	require.NoError(t, err)
	assert.Equal(t, "if ($a = $b) {\n    return 403;\n}", out)
}

func TestBuildSameLineComment(t *testing.T) {
	tree := []*DirectiveNode{
		{Directive: "listen", Line: 1, Args: []string{"80"}},
		{Directive: "#", Line: 1, Comment: "default"},
		{Directive: "server_name", Line: 2, Args: []string{"example.com"}},
	}
	out, err := Build(tree, DefaultBuildOptions())
	require.NoError(t, err)
	assert.Equal(t, "listen 80; #default\nserver_name example.com;", out)
}

func TestBuildTabsOption(t *testing.T) {
	tree := []*DirectiveNode{
		{
			Directive: "events",
			Line:      1,
			HasBlock:  true,
			Block: []*DirectiveNode{
				{Directive: "worker_connections", Line: 1, Args: []string{"1024"}},
			},
		},
	}
	out, err := Build(tree, BuildOptions{Tabs: true})
	require.NoError(t, err)
	assert.Equal(t, "events {\n\tworker_connections 1024;\n}", out)
}

func TestBuildScriptBlockHook(t *testing.T) {
	ext := NewExtensions()
	ext.RegisterBuildHook(ScriptBlockBuildHook, "set_by_lua_block")
	tree := []*DirectiveNode{
		{Directive: "set_by_lua_block", Line: 1, Args: []string{"$res", " return { 1,2,3 } "}},
	}
	out, err := Build(tree, BuildOptions{Indent: 4, Extensions: ext})
	require.NoError(t, err)
	assert.Equal(t, "set_by_lua_block $res { return { 1,2,3 } }", out)
}

func TestMinifyExample(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "nginx.conf",
		"events { worker_connections 1024; } http { server { listen 80; } }\n")

	out, err := Minify(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "events {worker_connections 1024;}http {server {listen 80;}}\n", out)
}
