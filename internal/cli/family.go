// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"github.com/spf13/cobra"

	"code.hybscloud.com/hetero/internal/gen"
)

// FamilyOptions holds flags for the family command.
type FamilyOptions struct {
	*RootOptions
	MaxArity int
	Output   string
	Package  string
}

// NewFamilyCommand creates the family command.
func NewFamilyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &FamilyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:       "family <tuple|variant>",
		Short:     "Generate a tuple or variant arity family",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(gen.KindTuple), string(gen.KindVariant)},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFamily(opts, gen.Kind(args[0]), cmd)
		},
	}

	cmd.Flags().IntVar(&opts.MaxArity, "max-arity", gen.MaxArity, "largest arity to generate")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package clause (default the family name)")

	return cmd
}

func runFamily(opts *FamilyOptions, kind gen.Kind, cmd *cobra.Command) error {
	src, err := gen.Family(kind, opts.MaxArity, opts.Package)
	if err != nil {
		return err
	}
	opts.logger.Debug().Str("family", string(kind)).Int("max_arity", opts.MaxArity).Int("bytes", len(src)).Msg("rendered")
	return writeOutput(cmd, opts.RootOptions, opts.Output, src)
}
