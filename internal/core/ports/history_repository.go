package ports

// HistoryRepository provides access to the history file on disk.
type HistoryRepository interface {
	// Load reads the entire history file into memory.
	Load(path string) (string, error)
	// Replace atomically overwrites the history file with content. The write
	// goes to a temporary file in the same directory first, so an interrupted
	// run never leaves a partially written history file behind.
	Replace(path string, content string) error
}
