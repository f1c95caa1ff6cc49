package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// NewAlgorithmsCommand creates the algorithms command.
func NewAlgorithmsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "algorithms",
		Short:         "List playable algorithms",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			algos := Algorithms()
			f := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			return f.Success(algos, func(w io.Writer) error {
				for _, a := range algos {
					if _, err := fmt.Fprintf(w, "%-17s %-17s %s\n", a.Name, a.Input, a.Description); err != nil {
						return err
					}
				}
				return nil
			})
		},
	}
}
