package ports

// HistoryFileFinder locates a shell history file from the environment and
// common default locations.
type HistoryFileFinder interface {
	Find() (string, error)
}
