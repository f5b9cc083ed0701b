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

// combine flattens payload's per-file reports into a single logical
// FileReport rooted at the first file, inlining every include node's
// referenced files' top-level directives in place (recursively). Every
// node in the result carries the file it originated from. Status is
// failed iff any input file failed.
func combine(payload *Payload) (*FileReport, error) {
	root := payload.Config[0]

	status := StatusOK
	for _, fr := range payload.Config {
		if fr.Status == StatusFailed {
			status = StatusFailed
			break
		}
	}

	tree := inlineIncludes(root.Parsed, root.File, payload.Config, nil)

	return &FileReport{
		File:   root.File,
		Status: status,
		Errors: root.Errors,
		Parsed: tree,
	}, nil
}

// inlineIncludes walks nodes, setting File on each, and replaces every
// "include" node with the inlined top-level children of the files it
// resolved to (recursively). chain tracks the files currently being
// inlined along this path, guarding against a pathological include
// cycle.
func inlineIncludes(nodes []*DirectiveNode, file string, configs []FileReport, chain map[string]bool) []*DirectiveNode {
	var out []*DirectiveNode
	for _, n := range nodes {
		if n.Directive == "include" {
			for _, idx := range n.Includes {
				if idx < 0 || idx >= len(configs) {
					continue
				}
				target := configs[idx]
				if chain[target.File] {
					continue
				}
				childChain := make(map[string]bool, len(chain)+1)
				for k := range chain {
					childChain[k] = true
				}
				childChain[target.File] = true
				out = append(out, inlineIncludes(target.Parsed, target.File, configs, childChain)...)
			}
			continue
		}

		clone := *n
		clone.File = file
		if n.Block != nil {
			clone.Block = inlineIncludes(n.Block, file, configs, chain)
		}
		out = append(out, &clone)
	}
	return out
}
