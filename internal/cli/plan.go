// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cli

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"
)

// PlanOptions holds flags for the plan command.
type PlanOptions struct {
	*RootOptions
	Arch string
}

// NewPlanCommand creates the plan command.
func NewPlanCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PlanOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "plan <manifest.yaml>",
		Short: "Check a manifest and print its plan without generating code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := loadPlan(opts.RootOptions, args[0], opts.Arch)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), p.Summary())
			return err
		},
	}

	cmd.Flags().StringVar(&opts.Arch, "arch", runtime.GOARCH, "architecture sizing the types")

	return cmd
}
