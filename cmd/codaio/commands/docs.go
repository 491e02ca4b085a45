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

// NewDocsCommand creates the docs command group.
func NewDocsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "docs",
		Aliases: []string{"doc"},
		Short:   "Manage docs",
		Long:    "List, inspect, create, and delete Coda docs",
	}

	cmd.AddCommand(newDocsListCommand())
	cmd.AddCommand(newDocsGetCommand())
	cmd.AddCommand(newDocsCreateCommand())
	cmd.AddCommand(newDocsDeleteCommand())

	return cmd
}

func newDocsListCommand() *cobra.Command {
	var (
		isOwner bool
		query   string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List docs",
		Long:  "List docs the token can see; without --limit the full listing is fetched",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsListCommand(isOwner, query, limit)
		},
	}

	cmd.Flags().BoolVar(&isOwner, "owner", false, "only docs owned by the token's user")
	cmd.Flags().StringVar(&query, "query", "", "free-text search over doc names")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of docs to return (0 fetches all)")

	return cmd
}

func runDocsListCommand(isOwner bool, query string, limit int) error {
	ctx := context.Background()

	client, err := CreateClient(ctx)
	if err != nil {
		return err
	}

	params := coda.NewDocListParams()
	if isOwner {
		params.WithIsOwner()
	}

	if query != "" {
		params.WithQuery(query)
	}

	if limit > 0 {
		params.WithLimit(limit)
	}

	page, err := client.Docs().List(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to list docs: %w", err)
	}

	return outputDocs(page.Items)
}

func outputDocs(docs []coda.Doc) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(docs)
	case constants.FormatYAML:
		return StandardYAMLRenderer(docs)
	default:
		return renderDocTable(docs)
	}
}

func renderDocTable(docs []coda.Doc) error {
	if len(docs) == 0 {
		_, _ = os.Stdout.WriteString("No docs found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Name", "Owner", "Created", "Updated")

	for _, doc := range docs {
		_ = table.Append(doc.ID, doc.Name, doc.Owner,
			doc.CreatedAt.Format("2006-01-02"),
			doc.UpdatedAt.Format("2006-01-02"))
	}

	_ = table.Render()

	return nil
}

func newDocsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get DOC_ID",
		Short: "Get doc details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			doc, err := client.Docs().Get(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get doc: %w", err)
			}

			return outputDoc(doc)
		},
	}
}

func outputDoc(doc *coda.Doc) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return StandardJSONRenderer(doc)
	case constants.FormatYAML:
		return StandardYAMLRenderer(doc)
	default:
		table := tablewriter.NewWriter(os.Stdout)
		table.Header("Property", "Value")
		_ = table.Append("ID", doc.ID)
		_ = table.Append("Name", doc.Name)
		_ = table.Append("Owner", doc.Owner)
		_ = table.Append("Browser link", doc.BrowserLink)
		_ = table.Append("Created", doc.CreatedAt.Format("2006-01-02 15:04"))
		_ = table.Append("Updated", doc.UpdatedAt.Format("2006-01-02 15:04"))
		_ = table.Render()

		return nil
	}
}

func newDocsCreateCommand() *cobra.Command {
	var (
		sourceDoc string
		timezone  string
	)

	cmd := &cobra.Command{
		Use:   "create TITLE",
		Short: "Create a doc",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			doc, err := client.Docs().Create(ctx, &coda.DocCreateRequest{
				Title:     args[0],
				SourceDoc: sourceDoc,
				Timezone:  timezone,
			})
			if err != nil {
				return fmt.Errorf("failed to create doc: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Created doc %s (%s)\n", doc.Name, doc.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&sourceDoc, "source-doc", "", "copy an existing doc by id")
	cmd.Flags().StringVar(&timezone, "timezone", "", "doc timezone, e.g. America/Los_Angeles")

	return cmd
}

func newDocsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete DOC_ID",
		Short: "Delete a doc",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			if err := client.Docs().Delete(ctx, args[0]); err != nil {
				return fmt.Errorf("failed to delete doc: %w", err)
			}

			fmt.Fprintf(os.Stdout, "Deleted doc %s\n", args[0])

			return nil
		},
	}
}
