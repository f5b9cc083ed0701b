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

package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/ngxkit/ngxconf/ngxconf"
	"github.com/spf13/cobra"
)

var (
	lexLineNumbers bool
	lexOut         string
)

var lexCmd = &cobra.Command{
	Use:   "lex <file>",
	Short: "Print the token stream for a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLex,
}

func init() {
	lexCmd.Flags().BoolVar(&lexLineNumbers, "line-numbers", false, "include line numbers in the output")
	lexCmd.Flags().StringVar(&lexOut, "out", "", "write output to this file instead of stdout")
}

type lexTokenJSON struct {
	Text   string `json:"text"`
	Line   int    `json:"line,omitempty"`
	Quoted bool   `json:"quoted"`
}

func runLex(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	file := args[0]
	f, err := os.Open(file)
	if err != nil {
		fail(logger, "opening file", err)
	}
	defer f.Close()

	lx := ngxconf.NewLexer(f, file, nil)
	var tokens []lexTokenJSON
	for {
		tok, ok, err := lx.Next()
		if err != nil {
			fail(logger, "lexing", err)
		}
		if !ok {
			break
		}
		entry := lexTokenJSON{Text: tok.Text, Quoted: tok.Quoted}
		if lexLineNumbers {
			entry.Line = tok.Line
		}
		tokens = append(tokens, entry)
	}

	var w io.Writer = os.Stdout
	if lexOut != "" {
		out, err := os.Create(lexOut)
		if err != nil {
			fail(logger, "creating output file", err)
		}
		defer out.Close()
		w = out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tokens)
}
