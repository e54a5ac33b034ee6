// Command gcal-auth authorizes Google Calendar access once and writes the
// credential bundle the API server reads at startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth --credentials credentials.json --token token.json
//	go run ./scripts/gcal-auth status --token token.json
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"personal-assistant/pkg/gauth"
	"personal-assistant/pkg/gcalendar"
	"personal-assistant/pkg/log"
)

var (
	credentialsPath string
	tokenPath       string
	port            int
	timeout         time.Duration
	force           bool
)

var rootCmd = &cobra.Command{
	Use:   "gcal-auth",
	Short: "Authorize Google Calendar access and cache the token",
	Long: `gcal-auth runs the installed-app OAuth flow for the Google Calendar API.

It prints a consent URL, waits for Google to redirect back to a local
callback server and stores the resulting token (mode 0600) where the API
server expects it. A cached token that is still usable is kept unless
--force is given.`,
	SilenceUsage: true,
	RunE:         runAuthorize,
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of the cached token",
	RunE:  runStatus,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&tokenPath, "token", "token.json", "path of the cached credential bundle")

	rootCmd.Flags().StringVar(&credentialsPath, "credentials", "credentials.json", "OAuth client secrets file (Desktop app)")
	rootCmd.Flags().IntVar(&port, "port", 0, "loopback callback port (0 picks a free port)")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "how long to wait for the browser callback")
	rootCmd.Flags().BoolVar(&force, "force", false, "re-authorize even if a usable token is cached")

	rootCmd.AddCommand(statusCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func runAuthorize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	oauthCfg, err := gauth.LoadOAuthConfig(credentialsPath, gcalendar.Scope)
	if err != nil {
		return err
	}

	store := gauth.NewFileStore(tokenPath)
	flow := &gauth.LocalServerFlow{Port: port, Out: cmd.OutOrStdout(), Timeout: timeout}

	if force {
		tok, err := flow.Authorize(ctx, oauthCfg)
		if err != nil {
			return err
		}
		if err := store.Save(ctx, gauth.FromToken(tok, []string{gcalendar.Scope})); err != nil {
			return err
		}
	} else {
		manager := gauth.NewManager(gauth.Config{
			OAuth:      oauthCfg,
			Store:      store,
			Logger:     log.NewNop(),
			Authorizer: flow,
		})
		if _, err := manager.Ensure(ctx); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", store.Path())
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	creds, err := gauth.NewFileStore(tokenPath).Load(cmd.Context())
	if errors.Is(err, gauth.ErrNoCredentials) {
		fmt.Fprintf(cmd.OutOrStdout(), "No token cached at %s\n", tokenPath)
		return nil
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Token:         %s\n", tokenPath)
	fmt.Fprintf(out, "Refreshable:   %t\n", creds.RefreshToken != "")
	fmt.Fprintf(out, "Calendar scope: %t\n", creds.HasScopes([]string{gcalendar.Scope}))
	if creds.Expiry.IsZero() {
		fmt.Fprintln(out, "Expiry:        none")
	} else {
		fmt.Fprintf(out, "Expiry:        %s (valid: %t)\n", creds.Expiry.Format(time.RFC3339), creds.Token().Valid())
	}
	return nil
}
