package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-token-agent/models"
)

func newAccountCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage encrypted account configurations",
		Long: `Account configurations hold the credentials of one issuer encrypted under a
password. They are stored in the agent database and decrypted when the agent
loads them.`,
	}
	cmd.AddCommand(
		newAccountSaveCmd(a),
		newAccountListCmd(a),
		newAccountCheckCmd(a),
		newAccountDeleteCmd(a),
	)
	return cmd
}

func newAccountSaveCmd(a *app) *cobra.Command {
	var secretsFile string

	cmd := &cobra.Command{
		Use:   "save <short-name> <issuer-url>",
		Short: "Encrypt and store account credentials",
		Long: `Encrypt and store account credentials. The credentials are read as JSON
with the keys access_token, refresh_token, client_id and client_secret from
--secrets-file or stdin.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			raw, err := readInput(cmd, secretsFile)
			if err != nil {
				return fmt.Errorf("read account secrets: %w", err)
			}
			defer memguard.WipeBytes(raw)

			var secrets models.AccountSecrets
			defer secrets.Wipe()
			if err = json.Unmarshal(raw, &secrets); err != nil {
				return fmt.Errorf("decode account secrets: %w", err)
			}

			pw, err := requirePassword(cmd.Context(), cmd, "password", s.Prompter, encryptPrompt)
			if err != nil {
				return err
			}
			defer pw.Destroy()

			if err = s.AccountConfigs.Save(cmd.Context(), args[0], args[1], secrets, pw); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %s saved\n", args[0])
			return nil
		},
	}
	cmd.Flags().StringVarP(&secretsFile, "secrets-file", "f", "", "JSON credentials file (stdin when empty or -)")
	cmd.Flags().StringP("password", "p", "", "encryption password (prompted when omitted)")
	return cmd
}

func newAccountListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored account configurations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			configs, err := s.AccountConfigs.List(cmd.Context())
			if err != nil {
				return err
			}
			return printAccountConfigs(cmd, configs)
		},
	}
}

func printAccountConfigs(cmd *cobra.Command, configs []models.AccountConfig) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tISSUER\tUPDATED")
	for _, c := range configs {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ShortName, c.IssuerURL, c.UpdatedAt.Format(time.RFC3339))
	}
	return w.Flush()
}

func newAccountCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <short-name>",
		Short: "Verify that an account configuration decrypts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}

			pw := passwordFlag(cmd, "password")
			defer pw.Destroy()

			acc, err := s.AccountConfigs.Load(cmd.Context(), args[0], pw)
			if err != nil {
				return err
			}
			defer acc.Destroy()

			fmt.Fprintf(cmd.OutOrStdout(), "account %s (%s): %s\n", acc.ShortName, acc.IssuerURL, describeFields(acc))
			return nil
		},
	}
	cmd.Flags().StringP("password", "p", "", "decryption password (prompted when omitted)")
	return cmd
}

// describeFields tells which credentials are present without revealing them.
func describeFields(acc *models.Account) string {
	present := func(f *models.Field) string {
		if len(f.Value()) == 0 {
			return "-"
		}
		return "set"
	}
	return fmt.Sprintf("access_token=%s refresh_token=%s client_id=%s client_secret=%s",
		present(&acc.AccessToken), present(&acc.RefreshToken), present(&acc.ClientID), present(&acc.ClientSecret))
}

func newAccountDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <short-name>",
		Short: "Delete a stored account configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.setup(cmd)
			if err != nil {
				return err
			}
			if err = s.AccountConfigs.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "account %s deleted\n", args[0])
			return nil
		},
	}
}

