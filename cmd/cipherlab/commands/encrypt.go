package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"cipherlab/internal/cipher"
	"cipherlab/internal/ctxlog"
)

func encryptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt text with a classical cipher",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCipher(cmd, false)
		},
	}
	addCipherFlags(cmd)
	return cmd
}

// addCipherFlags registers the flags shared by encrypt and decrypt.
func addCipherFlags(cmd *cobra.Command) {
	addIOFlags(cmd)
	cmd.Flags().StringP("cipher", "c", "caesar", "cipher to use (caesar, vigenere, rot13)")
	cmd.Flags().IntP("shift", "s", 3, "caesar shift, any integer")
	cmd.Flags().StringP("keyword", "k", "", "vigenère keyword")
}

// runCipher is the shared body of encrypt and decrypt; decrypt just runs
// the inverse transformation.
func runCipher(cmd *cobra.Command, invert bool) error {
	text, err := inputText(cmd)
	if err != nil {
		return err
	}

	name, _ := cmd.Flags().GetString("cipher")
	var out string
	switch strings.ToLower(name) {
	case "caesar":
		shift, _ := cmd.Flags().GetInt("shift")
		if invert {
			out = cipher.CaesarDecrypt(text, shift)
		} else {
			out = cipher.CaesarEncrypt(text, shift)
		}
	case "vigenere":
		keyword, _ := cmd.Flags().GetString("keyword")
		if invert {
			out, err = cipher.VigenereDecrypt(text, keyword)
		} else {
			out, err = cipher.VigenereEncrypt(text, keyword)
		}
		if err != nil {
			return err
		}
	case "rot13":
		out = cipher.Rot13(text)
	default:
		return fmt.Errorf("unknown cipher %q. available: caesar, vigenere, rot13", name)
	}

	ctxlog.Get(cmd.Context()).Debug("transformed text", "cipher", name, "decrypt", invert, "chars", len(text))
	return writeOutput(cmd, out)
}
