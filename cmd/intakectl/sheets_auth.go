package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"university-assistant/pkg/gsheets"
)

type sheetsAuthOptions struct {
	credentialsPath string
	tokenPath       string
}

func newSheetsAuthCmd() *cobra.Command {
	opts := sheetsAuthOptions{}
	cmd := &cobra.Command{
		Use:   "sheets-auth",
		Short: "Authorize Google Sheets access and write token.json",
		Long:  "Run once with OAuth Desktop App credentials. Service Account keys need no token.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSheetsAuth(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().StringVar(&opts.credentialsPath, "credentials", "credentials.json", "OAuth Desktop App credentials file")
	cmd.Flags().StringVar(&opts.tokenPath, "token", gsheets.TokenFile, "where to write the token")
	return cmd
}

func runSheetsAuth(ctx context.Context, in io.Reader, out io.Writer, opts sheetsAuthOptions) error {
	data, err := os.ReadFile(opts.credentialsPath)
	if err != nil {
		return fmt.Errorf("failed to read credentials file %q: %w", opts.credentialsPath, err)
	}

	config, err := gsheets.OAuthConfigFromJSON(data)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Step 1: open this URL and sign in with the Google account that owns the sheet:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
	fmt.Fprintln(out)
	fmt.Fprint(out, "Step 2: paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Fscan(in, &code); err != nil {
		return fmt.Errorf("failed to read authorization code: %w", err)
	}

	tok, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to exchange authorization code: %w", err)
	}
	if err := gsheets.SaveToken(opts.tokenPath, tok); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nToken saved to %s\n", opts.tokenPath)
	return nil
}
