package ports

// RecordClassifier decides whether a normalized command is kept in the
// cleaned history.
type RecordClassifier interface {
	Retain(command string) bool
}
