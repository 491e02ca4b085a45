package constants

import "time"

// API endpoint and environment configuration.
const (
	// ClientVersion is reported in the User-Agent header.
	ClientVersion = "1.0.0"

	// DefaultEndpoint is the public Coda API root.
	DefaultEndpoint = "https://coda.io/apis/v1beta1"

	// EnvAPIKey is the environment variable holding the API token.
	EnvAPIKey = "CODA_API_KEY"

	// EnvEndpoint is the environment variable overriding the API endpoint.
	EnvEndpoint = "CODA_API_ENDPOINT"
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless a caller opts in; these bound the
// opt-in configuration.
const (
	// DefaultRetryMax is the attempt count when retries are left disabled.
	DefaultRetryMax = 0

	// OptInRetryMax is a reasonable ceiling for callers enabling retries.
	OptInRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size requested when a caller sets none.
	DefaultPageSize = 100

	// SmallPageSize is used for demonstrations or small lists.
	SmallPageSize = 5

	// MaxPages bounds cursor-following loops against a misbehaving server.
	MaxPages = 1000
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// ValueDisplayLength is the default length for truncating cell values.
	ValueDisplayLength = 60
)
