// Package commands implements the codaio CLI command tree.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/licht1stein/codaio/internal/constants"
	"github.com/licht1stein/codaio/pkg/coda"
	"github.com/licht1stein/codaio/pkg/codaclient"
)

// CreateClient builds a coda.Client from the CLI configuration: flags
// first, then config file, then CODAIO_* environment variables, all
// resolved through viper once at command start.
func CreateClient(ctx context.Context) (coda.Client, error) {
	token := viper.GetString("token")
	if token == "" {
		token = os.Getenv(constants.EnvAPIKey)
	}

	if token == "" {
		return nil, constants.ErrNoAPIKeyConfigured
	}

	config := &coda.Config{
		Endpoint: viper.GetString("api"),
		APIKey:   token,
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = newHCLogAdapter()
	}

	client, err := codaclient.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer creates a standard JSON encoder.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer creates a standard YAML encoder.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(constants.JSONIndentSize)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// FormatCellValue renders a cell value for tabular output, truncating
// long values so rows stay readable.
func FormatCellValue(value interface{}) string {
	if value == nil {
		return constants.NotAvailable
	}

	rendered := fmt.Sprintf("%v", value)
	if len(rendered) > constants.ValueDisplayLength {
		rendered = rendered[:constants.ValueDisplayLength-3] + "..."
	}

	return rendered
}

// hclogAdapter bridges hashicorp/go-hclog to the coda.Logger interface.
type hclogAdapter struct {
	logger hclog.Logger
}

func newHCLogAdapter() coda.Logger {
	return &hclogAdapter{
		logger: hclog.New(&hclog.LoggerOptions{
			Name:  "codaio",
			Level: hclog.Debug,
		}),
	}
}

func (a *hclogAdapter) Debug(msg string, fields map[string]interface{}) {
	a.logger.Debug(msg, flatten(fields)...)
}

func (a *hclogAdapter) Info(msg string, fields map[string]interface{}) {
	a.logger.Info(msg, flatten(fields)...)
}

func (a *hclogAdapter) Warn(msg string, fields map[string]interface{}) {
	a.logger.Warn(msg, flatten(fields)...)
}

func (a *hclogAdapter) Error(msg string, fields map[string]interface{}) {
	a.logger.Error(msg, flatten(fields)...)
}

func flatten(fields map[string]interface{}) []interface{} {
	args := make([]interface{}, 0, len(fields)*2)
	for key, value := range fields {
		args = append(args, key, value)
	}

	return args
}
