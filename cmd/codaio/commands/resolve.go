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

// NewResolveCommand creates the resolve command.
func NewResolveCommand() *cobra.Command {
	var degradeGracefully bool

	cmd := &cobra.Command{
		Use:   "resolve URL",
		Short: "Resolve a browser link",
		Long:  "Resolve a doc browser URL to the API resource behind it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resolution, err := client.ResolveBrowserLink(ctx, args[0], degradeGracefully)
			if err != nil {
				return fmt.Errorf("failed to resolve link: %w", err)
			}

			return outputResolution(resolution)
		},
	}

	cmd.Flags().BoolVar(&degradeGracefully, "degrade-gracefully", false,
		"resolve to the closest parent resource when the exact target cannot be resolved")

	return cmd
}

func outputResolution(resolution *coda.Resolution) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(resolution)
	case constants.FormatYAML:
		return StandardYAMLRenderer(resolution)
	default:
		resourceID := constants.NotAvailable
		resourceType := constants.NotAvailable
		resourceName := constants.NotAvailable

		if resolution.Resource != nil {
			resourceID = resolution.Resource.ID
			resourceType = resolution.Resource.Type
			resourceName = resolution.Resource.Name
		}

		out := tablewriter.NewWriter(os.Stdout)
		out.Header("Property", "Value")
		_ = out.Append("Resource ID", resourceID)
		_ = out.Append("Resource type", resourceType)
		_ = out.Append("Resource name", resourceName)
		_ = out.Append("API href", resolution.Href)
		_ = out.Render()

		return nil
	}
}
