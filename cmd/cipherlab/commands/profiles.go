package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func profilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List available reference frequency profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := appCtx.Profiles.List(cmd.Context())
			if err != nil {
				return err
			}
			for _, name := range names {
				marker := " "
				if name == appCtx.Profile {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
	return cmd
}
