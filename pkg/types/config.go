package types

// OutputFormat selects the report serialization format.
type OutputFormat string

const (
	OutputJSON  OutputFormat = "json"
	OutputYAML  OutputFormat = "yaml"
	OutputTable OutputFormat = "table"
)

// OutputConfig holds presentation settings for the convert stage.
type OutputConfig struct {
	// Format selects the serialization: json, yaml, or table (default json).
	Format OutputFormat `json:"format" yaml:"format"`

	// Path is the output file; empty means standard output.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// StoreConfig holds settings for the position-history database.
type StoreConfig struct {
	// DBPath is the SQLite database file (default "plateconv.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}
