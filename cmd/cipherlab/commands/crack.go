package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"cipherlab/internal/analysis"
	"cipherlab/internal/ctxlog"
)

func crackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crack",
		Short: "Recover a Caesar shift by frequency analysis",
		RunE:  runCrack,
	}
	addIOFlags(cmd)
	cmd.Flags().IntP("top", "n", 1, "number of candidates to show")
	return cmd
}

func runCrack(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd)
	if err != nil {
		return err
	}

	ref, err := appCtx.Reference(cmd.Context())
	if err != nil {
		return err
	}
	ctxlog.Get(cmd.Context()).Debug("cracking caesar cipher", "profile", ref.Name, "chars", len(text))

	top, _ := cmd.Flags().GetInt("top")
	if top < 1 {
		top = 1
	}

	guesses := analysis.RankShifts(text, ref.Table)
	if top == 1 {
		return writeOutput(cmd, guesses[0].Plaintext)
	}

	if top > len(guesses) {
		top = len(guesses)
	}
	for _, g := range guesses[:top] {
		fmt.Fprintf(cmd.OutOrStdout(), "shift %2d  score %10.2f  %s\n", g.Shift, g.Score, g.Plaintext)
	}
	return nil
}
