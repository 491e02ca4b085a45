package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
)

// NewWhoamiCommand creates the whoami command
func NewWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Display the account behind the configured token",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			user, err := client.Whoami(ctx)
			if err != nil {
				return fmt.Errorf("failed to get account info: %w", err)
			}

			return outputUser(user)
		},
	}
}

func outputUser(user *coda.User) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(user)
	case constants.FormatYAML:
		return StandardYAMLRenderer(user)
	default:
		workspace := constants.NotAvailable
		if user.Workspace != nil {
			workspace = user.Workspace.ID
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("Name", user.Name)
		_ = table.Append("Login", user.LoginID)
		_ = table.Append("Token name", user.TokenName)
		_ = table.Append("Scoped", fmt.Sprintf("%t", user.Scoped))
		_ = table.Append("Workspace", workspace)
		_ = table.Render()

		return nil
	}
}
