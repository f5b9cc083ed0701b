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
	"fmt"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/ngxkit/ngxconf/ngxconf"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	buildDir       string
	buildForce     bool
	buildIndent    int
	buildTabs      bool
	buildNoHeaders bool
	buildStdout    bool
)

var buildCmd = &cobra.Command{
	Use:   "build <file>",
	Short: "Rebuild configuration text from a parsed JSON payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildDir, "dir", ".", "directory each file report's path is resolved against")
	buildCmd.Flags().BoolVar(&buildForce, "force", false, "overwrite existing files")
	buildCmd.Flags().IntVar(&buildIndent, "indent", 4, "spaces per nesting level")
	buildCmd.Flags().BoolVar(&buildTabs, "tabs", false, "indent with tabs instead of spaces")
	buildCmd.Flags().BoolVar(&buildNoHeaders, "no-headers", false, "omit the leading header comment")
	buildCmd.Flags().BoolVar(&buildStdout, "stdout", false, "print to stdout instead of writing files")
}

func runBuild(cmd *cobra.Command, args []string) error {
	logger := newLogger(verbose)
	defer logger.Sync()

	in, err := os.Open(args[0])
	if err != nil {
		fail(logger, "opening payload", err)
	}
	defer in.Close()

	var payload ngxconf.Payload
	if err := json.NewDecoder(in).Decode(&payload); err != nil {
		fail(logger, "decoding payload JSON", err)
	}

	opts := ngxconf.DefaultBuildOptions()
	opts.Indent = buildIndent
	opts.Tabs = buildTabs
	if !buildNoHeaders {
		opts.Header = "generated by ngxconf build"
	}

	if buildStdout {
		var total int
		for _, fr := range payload.Config {
			out, err := ngxconf.Build(fr.Parsed, opts)
			if err != nil {
				fail(logger, "building "+fr.File, err)
			}
			fmt.Println(out)
			total += len(out)
		}
		logger.Debug("build complete", zap.String("size", humanize.Bytes(uint64(total))))
		return nil
	}

	if !buildForce {
		for _, fr := range payload.Config {
			path := fr.File
			if !filepath.IsAbs(path) {
				path = filepath.Join(buildDir, path)
			}
			if _, err := os.Stat(path); err == nil {
				fail(logger, "refusing to overwrite existing file (use --force)", fmt.Errorf("%s already exists", path))
			}
		}
	}

	if err := ngxconf.BuildFiles(&payload, buildDir, opts); err != nil {
		fail(logger, "writing files", err)
	}
	logger.Info("wrote configuration files", zap.Int("count", len(payload.Config)))
	return nil
}
