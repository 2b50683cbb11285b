// Copyright 2026 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/intcodec"
	"github.com/cockroachdb/intcodec/tool"
	"github.com/spf13/cobra"
)

var errUsage = errors.New("exactly one of -c and -d is required")

// newRootCmd returns the root command. Invoked with -c or -d it converts
// stdin to stdout; otherwise it dispatches to the given subcommands.
func newRootCmd(subcommands ...*cobra.Command) *cobra.Command {
	var encodeFormat, decodeFormat string
	rootCmd := &cobra.Command{
		Use:   "intcodec (-c <format> | -d <format>)",
		Short: "convert integer tables between text and a compact binary form",
		Long: `
Convert a table of decimal integers read from stdin into its binary encoding
(-c), or a binary stream back into text (-d), writing the result to stdout.
` + tool.FormatHelp,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClassic(cmd, encodeFormat, decodeFormat)
		},
	}
	rootCmd.Flags().StringVarP(&encodeFormat, "encode", "c", "",
		"encode the text table on stdin with the given format")
	rootCmd.Flags().StringVarP(&decodeFormat, "decode", "d", "",
		"decode the binary stream on stdin with the given format")
	rootCmd.AddCommand(subcommands...)
	return rootCmd
}

func runClassic(cmd *cobra.Command, encodeFormat, decodeFormat string) error {
	encode := cmd.Flags().Changed("encode")
	decode := cmd.Flags().Changed("decode")
	if encode == decode {
		printHelp(cmd)
		return errUsage
	}
	s := encodeFormat
	if decode {
		s = decodeFormat
	}
	format, err := intcodec.ParseFormat(s)
	if err != nil {
		printHelp(cmd)
		return err
	}

	opts := &intcodec.Options{}
	if encode {
		_, err = intcodec.Encode(cmd.OutOrStdout(), cmd.InOrStdin(), format, opts)
	} else {
		_, err = intcodec.Decode(cmd.OutOrStdout(), cmd.InOrStdin(), format, opts)
	}
	return err
}

// printHelp writes the help text to stderr, keeping stdout for the converted
// stream.
func printHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	cmd.SetOut(cmd.ErrOrStderr())
	_ = cmd.Help()
	cmd.SetOut(out)
}
