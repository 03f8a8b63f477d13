package commands

import (
	"context"

	"github.com/spf13/cobra"

	"cipherlab/internal/app"
	"cipherlab/internal/ctxlog"
)

var (
	profileName string
	profileDir  string
	verbose     bool
	appCtx      *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:           "cipherlab",
		Short:         "Classical ciphers and letter-frequency cryptanalysis",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(ctxlog.Setup(ctx, verbose))

			appCtx = app.New(app.Config{
				ProfileDir: profileDir,
				Profile:    profileName,
			})
			return nil
		},
	}

	root.PersistentFlags().StringVar(&profileName, "profile", "english", "reference frequency profile")
	root.PersistentFlags().StringVar(&profileDir, "profile-dir", "", "directory with extra *.yaml profiles")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(encryptCmd(), decryptCmd(), analyzeCmd(), crackCmd(), profilesCmd())
	return root.Execute()
}
