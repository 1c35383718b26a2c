// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cli implements the hetgen command line.
package cli

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose   bool
	LogFormat string // "console" | "json"

	logger zerolog.Logger
}

// ValidLogFormats defines the allowed log formats.
var ValidLogFormats = []string{"console", "json"}

// NewRootCommand creates the root command for hetgen.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hetgen",
		Short: "hetgen - heterogeneous tuple and variant generator",
		Long: `Generate the tuple and variant arity families, and specialize them for
concrete shapes listed in a YAML manifest.

Shape errors (an index out of range, a type that appears twice, a variant
that cannot receive another's values) are reported before anything is
written.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidLogFormats, opts.LogFormat) {
				return fmt.Errorf("invalid log format %q: must be one of %v", opts.LogFormat, ValidLogFormats)
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.LogFormat, opts.Verbose)
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.LogFormat, "log-format", "console", "log format (console|json)")

	cmd.AddCommand(NewFamilyCommand(opts))
	cmd.AddCommand(NewShapesCommand(opts))
	cmd.AddCommand(NewPlanCommand(opts))

	return cmd
}
