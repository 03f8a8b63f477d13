package commands

import (
	"github.com/spf13/cobra"
)

func decryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt text with a classical cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, true)
		},
	}
	addCipherFlags(cmd)
	return cmd
}
