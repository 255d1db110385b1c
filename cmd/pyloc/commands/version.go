package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/marcoimbee/pyloc/internal/version"
)

func newVersionCommand() *cobra.Command {
	var showFull bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showFull {
				fmt.Println(version.FullVersion())
			} else {
				fmt.Println(version.Version)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showFull, "full", "f", false,
		"show full version information")

	return cmd
}
