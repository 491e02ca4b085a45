package commands

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
)

// NewRowsCommand creates the rows command group.
func NewRowsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rows",
		Aliases: []string{"row"},
		Short:   "Manage rows",
		Long:    "List, inspect, upsert, and delete the rows of a table",
	}

	cmd.AddCommand(newRowsListCommand())
	cmd.AddCommand(newRowsGetCommand())
	cmd.AddCommand(newRowsUpsertCommand())
	cmd.AddCommand(newRowsDeleteCommand())

	return cmd
}

func newRowsListCommand() *cobra.Command {
	var (
		filterColumn   string
		filterValue    string
		useColumnNames bool
		limit          int
	)

	cmd := &cobra.Command{
		Use:   "list DOC_ID TABLE",
		Short: "List rows of a table",
		Long:  "List rows, optionally filtered to those whose column holds a value",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowsListCommand(args[0], args[1], filterColumn, filterValue, useColumnNames, limit)
		},
		Args: cobra.ExactArgs(2),
	}

	cmd.Flags().StringVar(&filterColumn, "filter-column", "", "column id or name to filter on")
	cmd.Flags().StringVar(&filterValue, "filter-value", "", "value the filter column must hold")
	cmd.Flags().BoolVar(&useColumnNames, "use-column-names", false, "key row values by column name instead of column id")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of rows to return (0 fetches all)")

	return cmd
}

func runRowsListCommand(docID, table, filterColumn, filterValue string, useColumnNames bool, limit int) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	params := coda.NewRowListParams()
	if filterColumn != "" {
		params.WithColumnFilter(filterColumn, filterValue)
	}

	if useColumnNames {
		params.WithUseColumnNames()
	}

	if limit > 0 {
		params.WithLimit(limit)
	}

	page, err := client.Rows().List(ctx, docID, table, params)
	if err != nil {
		return fmt.Errorf("failed to list rows: %w", err)
	}

	return outputRows(page.Items)
}

func outputRows(rows []coda.Row) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(rows)
	case constants.FormatYAML:
		return StandardYAMLRenderer(rows)
	default:
		if len(rows) == 0 {
			_, _ = os.Stdout.WriteString("No rows found\n")

			return nil
		}

		out := tablewriter.NewWriter(os.Stdout)
		out.Header("ID", "Name", "Index", "Values")

		for _, row := range rows {
			_ = out.Append(row.ID, row.Name,
				fmt.Sprintf("%d", row.Index),
				formatRowValues(row.Values))
		}

		_ = out.Render()

		return nil
	}
}

// formatRowValues renders the value map in a stable column order.
func formatRowValues(values map[string]interface{}) string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, fmt.Sprintf("%s=%s", key, FormatCellValue(values[key])))
	}

	return strings.Join(parts, ", ")
}

func newRowsGetCommand() *cobra.Command {
	var useColumnNames bool

	cmd := &cobra.Command{
		Use:   "get DOC_ID TABLE ROW",
		Short: "Get row details",
		Long:  "Get one row by id or name",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			row, err := client.Rows().Get(ctx, args[0], args[1], args[2],
				&coda.RowGetParams{UseColumnNames: useColumnNames})
			if err != nil {
				return fmt.Errorf("failed to get row: %w", err)
			}

			return outputRow(row)
		},
	}

	cmd.Flags().BoolVar(&useColumnNames, "use-column-names", false, "key row values by column name instead of column id")

	return cmd
}

func outputRow(row *coda.Row) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(row)
	case constants.FormatYAML:
		return StandardYAMLRenderer(row)
	default:
		out := tablewriter.NewWriter(os.Stdout)
		out.Header("Column", "Value")

		keys := make([]string, 0, len(row.Values))
		for key := range row.Values {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			_ = out.Append(key, FormatCellValue(row.Values[key]))
		}

		_ = out.Render()

		return nil
	}
}

func newRowsUpsertCommand() *cobra.Command {
	var (
		cells      []string
		fromFile   string
		keyColumns []string
	)

	cmd := &cobra.Command{
		Use:   "upsert DOC_ID TABLE",
		Short: "Insert or update rows",
		Long: "Insert a row built from --cell flags, or a batch read from a YAML file. " +
			"With --key-columns, rows whose key cells match an existing row update it in place. " +
			"The write is processed asynchronously; the command reports acceptance, not completion.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRowsUpsertCommand(args[0], args[1], cells, fromFile, keyColumns)
		},
	}

	cmd.Flags().StringArrayVar(&cells, "cell", nil, "cell as COLUMN=VALUE (repeatable)")
	cmd.Flags().StringVar(&fromFile, "from-file", "", "YAML file holding a list of rows, each a map of column to value")
	cmd.Flags().StringSliceVar(&keyColumns, "key-columns", nil, "columns that identify existing rows to update")

	return cmd
}

func runRowsUpsertCommand(docID, table string, cells []string, fromFile string, keyColumns []string) error {
	rows, err := buildUpsertRows(cells, fromFile)
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return constants.ErrNoRowsSpecified
	}

	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	result, err := client.Rows().Upsert(ctx, docID, table, &coda.RowUpsertRequest{
		Rows:       rows,
		KeyColumns: keyColumns,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert rows: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Accepted %d row(s) (request %s)\n", len(rows), result.RequestID)

	return nil
}

func buildUpsertRows(cells []string, fromFile string) ([]coda.RowEdit, error) {
	if fromFile != "" {
		return readRowsFile(fromFile)
	}

	if len(cells) == 0 {
		return nil, nil
	}

	edit, err := ParseCellFlags(cells)
	if err != nil {
		return nil, err
	}

	return []coda.RowEdit{edit}, nil
}

// ParseCellFlags converts repeated COLUMN=VALUE flags into one row edit.
func ParseCellFlags(cells []string) (coda.RowEdit, error) {
	edit := coda.RowEdit{Cells: make([]coda.CellEdit, 0, len(cells))}

	for _, cell := range cells {
		column, value, ok := strings.Cut(cell, "=")
		if !ok || column == "" {
			return coda.RowEdit{}, fmt.Errorf("%w: %q", constants.ErrInvalidCellFormat, cell)
		}

		edit.Cells = append(edit.Cells, coda.CellEdit{Column: column, Value: value})
	}

	return edit, nil
}

func readRowsFile(path string) ([]coda.RowEdit, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rows file: %w", err)
	}

	var rawRows []map[string]interface{}
	if err := yaml.Unmarshal(data, &rawRows); err != nil {
		return nil, fmt.Errorf("parsing rows file: %w", err)
	}

	rows := make([]coda.RowEdit, 0, len(rawRows))

	for _, raw := range rawRows {
		columns := make([]string, 0, len(raw))
		for column := range raw {
			columns = append(columns, column)
		}

		sort.Strings(columns)

		edit := coda.RowEdit{Cells: make([]coda.CellEdit, 0, len(raw))}
		for _, column := range columns {
			edit.Cells = append(edit.Cells, coda.CellEdit{Column: column, Value: raw[column]})
		}

		rows = append(rows, edit)
	}

	return rows, nil
}

func newRowsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOC_ID TABLE ROW_ID [ROW_ID...]",
		Short: "Delete rows",
		Long:  "Delete one or more rows by id; multiple ids are deleted in a single request",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			docID, table, rowIDs := args[0], args[1], args[2:]

			if len(rowIDs) == 1 {
				result, err := client.Rows().Delete(ctx, docID, table, rowIDs[0])
				if err != nil {
					return fmt.Errorf("failed to delete row: %w", err)
				}

				fmt.Fprintf(os.Stdout, "Accepted deletion of row %s (request %s)\n", rowIDs[0], result.RequestID)

				return nil
			}

			result, err := client.Rows().DeleteMany(ctx, docID, table, rowIDs)
			if err != nil {
				return fmt.Errorf("failed to delete rows: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Accepted deletion of %d rows (request %s)\n", len(rowIDs), result.RequestID)

			return nil
		},
	}
}
