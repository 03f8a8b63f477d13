package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// inputText resolves the input for a command: --text wins, then --file,
// then piped stdin. An empty result is an error so commands fail fast
// instead of transforming nothing.
func inputText(cmd *cobra.Command) (string, error) {
	if text, _ := cmd.Flags().GetString("text"); text != "" {
		return text, nil
	}

	if filename, _ := cmd.Flags().GetString("file"); filename != "" {
		data, err := os.ReadFile(filename)
		if err != nil {
			return "", fmt.Errorf("read %q: %w", filename, err)
		}
		return string(data), nil
	}

	if stat, err := os.Stdin.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) == 0 {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	return "", fmt.Errorf("no input. use --text, --file, or pipe to stdin")
}

// writeOutput sends text to --output when set, stdout otherwise.
func writeOutput(cmd *cobra.Command, text string) error {
	if outputFile, _ := cmd.Flags().GetString("output"); outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(text), 0o600); err != nil {
			return fmt.Errorf("write %q: %w", outputFile, err)
		}
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

// addIOFlags registers the input/output flags shared by the text-processing
// subcommands.
func addIOFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("text", "t", "", "text to process")
	cmd.Flags().StringP("file", "f", "", "file to process")
	cmd.Flags().StringP("output", "o", "", "output file (default: stdout)")
}
