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

// Command ngxconf is a thin CLI front end over the ngxconf package: it
// lexes, parses, builds, formats, or minifies NGINX configuration
// files and prints JSON or reassembled configuration text.
package main

import (
	"fmt"
	"os"

	"github.com/ngxkit/ngxconf/directives"
	"github.com/ngxkit/ngxconf/ngxconf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "ngxconf",
	Short:        "Lex, parse, build, format, and minify NGINX configuration files",
	SilenceUsage: true,
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")
	rootCmd.AddCommand(lexCmd, parseCmd, buildCmd, formatCmd, minifyCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCatalog returns a catalog seeded with this binary's directive
// table (used by the parse subcommand). Each call builds a fresh
// instance since Catalog.Register is additive and a shared
// package-level catalog would accumulate duplicate entries across
// repeated test invocations.
func newCatalog() *ngxconf.Catalog {
	cat := ngxconf.NewCatalog()
	directives.RegisterDefaults(cat)
	return cat
}

func fail(logger *zap.Logger, msg string, err error) {
	logger.Error(msg, zap.Error(err))
	fmt.Fprintf(os.Stderr, "ngxconf: %s: %v\n", msg, err)
	os.Exit(1)
}
