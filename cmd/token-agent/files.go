package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-token-agent/internal/prompt"
	"github.com/MKhiriev/go-token-agent/internal/secret"
)

const (
	encryptPrompt     = "Enter encryption Password: "
	newPasswordPrompt = "Enter new Password: "
)

// passwordFlag returns the value of a password flag, or nil when it was not
// given so that the services prompt instead.
func passwordFlag(cmd *cobra.Command, name string) *secret.Buffer {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return secret.FromString(v)
}

// requirePassword is like passwordFlag but prompts right away when the flag
// is missing.
func requirePassword(ctx context.Context, cmd *cobra.Command, name string, p prompt.Prompter, message string) (*secret.Buffer, error) {
	if pw := passwordFlag(cmd, name); pw != nil {
		return pw, nil
	}
	return p.PromptPassword(ctx, message)
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(path)
}

func newEncryptCmd(a *app) *cobra.Command {
	var in string

	cmd := &cobra.Command{
		Use:   "encrypt <file>",
		Short: "Encrypt input into a password-protected envelope file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			plain, err := readInput(cmd, in)
			if err != nil {
				return fmt.Errorf("read plaintext: %w", err)
			}
			defer memguard.WipeBytes(plain)

			pw, err := requirePassword(cmd.Context(), cmd, "password", s.Prompter, encryptPrompt)
			if err != nil {
				return err
			}
			defer pw.Destroy()

			return s.Crypt.EncryptFile(cmd.Context(), args[0], plain, pw)
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "plaintext file (stdin when empty or -)")
	cmd.Flags().StringP("password", "p", "", "encryption password (prompted when omitted)")
	return cmd
}

func newDecryptCmd(a *app) *cobra.Command {
	var agentFile bool

	cmd := &cobra.Command{
		Use:   "decrypt <file>",
		Short: "Decrypt an envelope file to stdout",
		Long: `Decrypt an envelope file to stdout. Both the current format and legacy
files without a version line are accepted. Without --password the password is
prompted for, up to --max-pass-tries times.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			pw := passwordFlag(cmd, "password")
			defer pw.Destroy()

			var plain *secret.Buffer
			if agentFile {
				plain, err = s.Crypt.DecryptAgentFile(cmd.Context(), args[0], pw)
			} else {
				plain, err = s.Crypt.DecryptFile(cmd.Context(), args[0], pw)
			}
			if err != nil {
				return err
			}
			defer plain.Destroy()

			_, err = cmd.OutOrStdout().Write(plain.Bytes())
			return err
		},
	}
	cmd.Flags().BoolVar(&agentFile, "agent-file", false, "resolve <file> inside the agent configuration directory")
	cmd.Flags().StringP("password", "p", "", "decryption password (prompted when omitted)")
	return cmd
}

func newReencryptCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reencrypt <file>",
		Short: "Rewrite an envelope file in the current format",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			pw := passwordFlag(cmd, "password")
			defer pw.Destroy()

			newPw := passwordFlag(cmd, "new-password")
			if newPw == nil && pw == nil {
				if newPw, err = s.Prompter.PromptPassword(cmd.Context(), newPasswordPrompt); err != nil {
					return err
				}
			}
			defer newPw.Destroy()

			if err = s.Crypt.ReencryptFile(cmd.Context(), args[0], pw, newPw); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s re-encrypted\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringP("password", "p", "", "current password (prompted when omitted)")
	cmd.Flags().String("new-password", "", "new password (prompted when no password is given, otherwise the current one is kept)")
	return cmd
}
