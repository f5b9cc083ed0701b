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
	"strings"

	"github.com/ngxkit/ngxconf/ngxconf"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var (
	parseCombine         bool
	parseSingleFile      bool
	parseIncludeComments bool
	parseStrict          bool
	parseIgnore          []string
	parseNoCatch         bool
	parseTraceOnError    bool
	parseOut             string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Parse a configuration file (and its includes) to a JSON payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	var flags *pflag.FlagSet = parseCmd.Flags()
	flags.BoolVar(&parseCombine, "combine", false, "flatten all includes into one logical file")
	flags.BoolVar(&parseSingleFile, "single-file", false, "do not traverse include directives")
	flags.BoolVar(&parseIncludeComments, "include-comments", false, "retain comment directives in the tree")
	flags.BoolVar(&parseStrict, "strict", false, "reject directives absent from the catalog")
	flags.StringSliceVarP(&parseIgnore, "ignore", "", nil, "directive names to skip entirely (comma-separated or repeated)")
	flags.BoolVar(&parseNoCatch, "no-catch", false, "abort on the first analyzer error instead of recording it")
	flags.BoolVar(&parseTraceOnError, "tb-onerror", false, "attach the error message string as each error's callback")
	flags.StringVar(&parseOut, "out", "", "write output to this file instead of stdout")
}

func runParse(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	file := args[0]
	opts := ngxconf.NewParseOptions()
	opts.Catalog = newCatalog()
	opts.Combine = parseCombine
	opts.SingleFile = parseSingleFile
	opts.Comments = parseIncludeComments
	opts.Strict = parseStrict
	opts.CatchErrors = !parseNoCatch

	if len(parseIgnore) > 0 {
		opts.Ignore = make(map[string]bool, len(parseIgnore))
		for _, name := range parseIgnore {
			name = strings.TrimSpace(name)
			if name != "" {
				opts.Ignore[name] = true
			}
		}
	}
	if parseTraceOnError {
		opts.OnError = func(err error) any {
			return err.Error()
		}
	}

	payload, err := ngxconf.Parse(file, opts)
	if err != nil {
		fail(logger, "parsing", err)
	}
	if payload.Status == ngxconf.StatusFailed {
		logger.Warn("parse completed with errors", zap.Int("errorCount", len(payload.Errors)))
	}

	var w io.Writer = os.Stdout
	if parseOut != "" {
		out, err := os.Create(parseOut)
		if err != nil {
			fail(logger, "creating output file", err)
		}
		defer out.Close()
		w = out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
