package constants

import "errors"

// Configuration errors shared by the CLI.
var (
	ErrNoAPIKeyConfigured = errors.New("no API key configured, use 'codaio login' or set CODA_API_KEY")
	ErrAPIKeyEmpty        = errors.New("API key must not be empty")
)

// Input validation errors shared by the CLI.
var (
	ErrInvalidCellFormat   = errors.New("invalid cell format, expected column=value")
	ErrNoRowsSpecified     = errors.New("no rows specified, use --cell or --from-file")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json, or yaml")
)
