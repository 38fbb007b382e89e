package ports

// CleanOptions controls a single cleanup run.
type CleanOptions struct {
	// DryRun runs the full pipeline and produces a report without writing
	// the cleaned history back to disk.
	DryRun bool
}

// CleanReport summarizes what a cleanup run did. It is what the CLI renders
// as a table or as YAML.
type CleanReport struct {
	Path        string `yaml:"path"`
	ParsedUnits int    `yaml:"parsed_units"`
	ParseErrors int    `yaml:"parse_errors"`
	Ignored     int    `yaml:"ignored"`
	Retained    int    `yaml:"retained"`
	Unique      int    `yaml:"unique"`
	DryRun      bool   `yaml:"dry_run"`
}

// HistoryCleanupService normalizes, filters, deduplicates, and rewrites a
// shell history file.
type HistoryCleanupService interface {
	Clean(path string, opts CleanOptions) (CleanReport, error)
}
