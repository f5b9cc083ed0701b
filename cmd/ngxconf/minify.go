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

var minifyOut string

var minifyCmd = &cobra.Command{
	Use:   "minify <file>",
	Short: "Strip comments and whitespace from a configuration file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMinify,
}

func init() {
	minifyCmd.Flags().StringVar(&minifyOut, "out", "", "write output to this file instead of stdout")
}

func runMinify(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	out, err := ngxconf.Minify(args[0], nil)
	if err != nil {
		fail(logger, "minifying", err)
	}

	if minifyOut == "" {
		_, err = os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(minifyOut, []byte(out), 0o644)
}
