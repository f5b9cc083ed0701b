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
	"os"

	"github.com/ngxkit/ngxconf/ngxconf"
	"github.com/spf13/cobra"
)

var (
	formatIndent int
	formatTabs   bool
	formatOut    string
)

var formatCmd = &cobra.Command{
	Use:   "format <file>",
	Short: "Reformat a configuration file with canonical indentation",
	Args:  cobra.ExactArgs(1),
	RunE:  runFormat,
}

func init() {
	formatCmd.Flags().IntVar(&formatIndent, "indent", 4, "spaces per nesting level")
	formatCmd.Flags().BoolVar(&formatTabs, "tabs", false, "indent with tabs instead of spaces")
	formatCmd.Flags().StringVar(&formatOut, "out", "", "write output to this file instead of stdout")
}

func runFormat(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	opts := ngxconf.BuildOptions{Indent: formatIndent, Tabs: formatTabs}
	out, err := ngxconf.Format(args[0], nil, opts)
	if err != nil {
		fail(logger, "formatting", err)
	}

	if formatOut == "" {
		_, err = os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(formatOut, []byte(out), 0o644)
}
