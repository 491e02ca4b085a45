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

// NewTablesCommand creates the tables command group.
func NewTablesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tables",
		Aliases: []string{"table"},
		Short:   "Manage tables",
		Long:    "List and inspect the tables of a doc",
	}

	cmd.AddCommand(newTablesListCommand())
	cmd.AddCommand(newTablesGetCommand())

	return cmd
}

func newTablesListCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list DOC_ID",
		Short: "List tables in a doc",
		Args:  cobra.ExactArgs(1),
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

			page, err := client.Tables().List(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to list tables: %w", err)
			}

			return outputTables(page.Items)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of tables to return (0 fetches all)")

	return cmd
}

func outputTables(tables []coda.Table) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(tables)
	case constants.FormatYAML:
		return StandardYAMLRenderer(tables)
	default:
		if len(tables) == 0 {
			_, _ = os.Stdout.WriteString("No tables found\n")

			return nil
		}

		out := tablewriter.NewWriter(os.Stdout)
		out.Header("ID", "Name", "Rows", "Layout")

		for _, t := range tables {
			_ = out.Append(t.ID, t.Name, strconv.Itoa(t.RowCount), t.Layout)
		}

		_ = out.Render()

		return nil
	}
}

func newTablesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOC_ID TABLE",
		Short: "Get table details",
		Long:  "Get one table by id or name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			table, err := client.Tables().Get(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to get table: %w", err)
			}

			return outputTable(table)
		},
	}
}

func outputTable(t *coda.Table) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(t)
	case constants.FormatYAML:
		return StandardYAMLRenderer(t)
	default:
		displayColumn := constants.NotAvailable
		if t.DisplayColumn != nil {
			displayColumn = t.DisplayColumn.ID
		}

		out := tablewriter.NewWriter(os.Stdout)
		out.Header("Property", "Value")
		_ = out.Append("ID", t.ID)
		_ = out.Append("Name", t.Name)
		_ = out.Append("Rows", strconv.Itoa(t.RowCount))
		_ = out.Append("Layout", t.Layout)
		_ = out.Append("Display column", displayColumn)
		_ = out.Render()

		return nil
	}
}
