package commands

import (
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/licht1stein/codaio/pkg/codaclient"
)

// NewLoginCommand creates the login command. The token is validated
// against the whoami endpoint before being persisted.
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an API token",
		Long:  "Validate a Coda API token and store it in the CLI config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoginCommand(token)
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "API token (prompted when omitted)")

	return cmd
}

func runLoginCommand(token string) error {
	if token == "" {
		fmt.Print("API token: ")

		byteToken, err := term.ReadPassword(int(syscall.Stdin))
		if err != nil {
			return fmt.Errorf("failed to read token: %w", err)
		}

		token = strings.TrimSpace(string(byteToken))

		fmt.Println()
	}

	if token == "" {
		return constants.ErrAPIKeyEmpty
	}

	ctx := context.Background()

	client, err := codaclient.New(ctx, &coda.Config{
		Endpoint: viper.GetString("api"),
		APIKey:   token,
	})
	if err != nil {
		return fmt.Errorf("creating client: %w", err)
	}

	user, err := client.Whoami(ctx)
	if err != nil {
		if coda.IsUnauthorized(err) {
			return fmt.Errorf("token rejected by the API: %w", err)
		}

		return fmt.Errorf("validating token: %w", err)
	}

	viper.Set("token", token)

	if err := viper.WriteConfig(); err != nil {
		// First login: the config file does not exist yet.
		if err := viper.SafeWriteConfig(); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	fmt.Fprintf(os.Stdout, "Logged in as %s (%s)\n", user.Name, user.LoginID)

	return nil
}
