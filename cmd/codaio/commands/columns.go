package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
)

// NewColumnsCommand creates the columns command group.
func NewColumnsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "columns",
		Aliases: []string{"column"},
		Short:   "Manage columns",
		Long:    "List the columns of a table",
	}

	cmd.AddCommand(newColumnsListCommand())

	return cmd
}

func newColumnsListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list DOC_ID TABLE",
		Short: "List columns of a table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			params := coda.NewListParams()
			if limit > 0 {
				params.WithLimit(limit)
			}

			page, err := client.Columns().List(ctx, args[0], args[1], params)
			if err != nil {
				return fmt.Errorf("failed to list columns: %w", err)
			}

			return outputColumns(page.Items)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of columns to return (0 fetches all)")

	return cmd
}

func outputColumns(columns []coda.Column) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(columns)
	case constants.FormatYAML:
		return StandardYAMLRenderer(columns)
	default:
		if len(columns) == 0 {
			_, _ = os.Stdout.WriteString("No columns found\n")

			return nil
		}

		out := tablewriter.NewWriter(os.Stdout)
		out.Header("ID", "Name", "Format", "Calculated", "Display")

		for _, c := range columns {
			format := constants.NotAvailable
			if c.Format != nil {
				format = c.Format.Type
			}

			_ = out.Append(c.ID, c.Name, format,
				strconv.FormatBool(c.Calculated),
				strconv.FormatBool(c.Display))
		}

		_ = out.Render()

		return nil
	}
}
