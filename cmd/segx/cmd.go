// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"

	"cogentcore.org/geom/base/logx"
	"cogentcore.org/geom/scene"
	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	verbose     bool
	veryVerbose bool
	quiet       bool

	// format is the output format of the results: text, toml or yaml.
	format string
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:          "segx",
		Short:        "Test segments against the planes, triangles and hexahedra of scene files",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logx.UserLevel = logx.LevelFromFlags(opts.veryVerbose, opts.verbose, opts.quiet)
			logx.SetDefaultLogger()
		},
	}
	pf := root.PersistentFlags()
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "show info log messages")
	pf.BoolVar(&opts.veryVerbose, "vv", false, "show debug log messages")
	pf.BoolVarP(&opts.quiet, "quiet", "q", false, "only show error log messages")
	pf.StringVarP(&opts.format, "format", "f", "text", "output format of the results (text, toml or yaml)")

	root.AddCommand(newEvalCmd(opts), newWatchCmd(opts))
	return root
}

func newEvalCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <file>",
		Short: "Evaluate the queries of a scene file and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.eval(cmd.OutOrStdout(), args[0])
		},
	}
}

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch <file>",
		Short: "Evaluate a scene file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.watch(cmd.Context(), cmd.OutOrStdout(), args[0])
		},
	}
}

// eval opens and evaluates the given scene file, writing the results
// it could compute before returning any evaluation error.
func (o *options) eval(w io.Writer, filename string) error {
	format := scene.FormatText
	if err := format.SetString(o.format); err != nil {
		return err
	}
	sc := &scene.Scene{}
	if err := sc.Open(filename); err != nil {
		return err
	}
	res, err := sc.Evaluate()
	if werr := scene.WriteResults(w, res, format); werr != nil {
		return werr
	}
	return err
}
