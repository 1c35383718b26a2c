// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"code.hybscloud.com/hetero/internal/gen"
)

// ShapesOptions holds flags for the shapes command.
type ShapesOptions struct {
	*RootOptions
	Output string
	Arch   string
}

// NewShapesCommand creates the shapes command.
func NewShapesCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShapesOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shapes <manifest.yaml>",
		Short: "Generate specializations for the shapes of a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(opts.RootOptions, args[0], opts.Arch)
			if err != nil {
				return err
			}
			src, err := gen.Render(p)
			if err != nil {
				return err
			}
			return writeOutput(cmd, opts.RootOptions, opts.Output, src)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "output file path (default stdout)")
	cmd.Flags().StringVar(&opts.Arch, "arch", runtime.GOARCH, "architecture sizing the types")

	return cmd
}

// loadPlan reads a manifest and plans it, logging what it found.
func loadPlan(opts *RootOptions, path, arch string) (*gen.Plan, error) {
	m, err := gen.LoadManifest(path)
	if err != nil {
		return nil, err
	}
	opts.logger.Debug().Str("manifest", path).
		Int("tuples", len(m.Tuples)).Int("variants", len(m.Variants)).
		Msg("loaded")
	p, err := gen.NewPlan(m, gen.Options{Arch: arch, Logger: opts.logger})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

// writeOutput writes src to path, or to the command's stdout if path is empty.
func writeOutput(cmd *cobra.Command, opts *RootOptions, path string, src []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(src)
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	opts.logger.Info().Str("file", path).Msg("wrote")
	return nil
}
