package types

// TaskParams is the string-keyed parameter source handed to the agent by the
// controlling workflow (dataset name, source path, instrument class, ...).
// Implementations are expected to be read-only for the life of a task.
type TaskParams interface {
	// Get returns the named parameter and whether it was present
	Get(name string) (string, bool)
	// GetDefault returns the named parameter, or def when absent or empty
	GetDefault(name, def string) string
}

// MapParams is a TaskParams backed by a plain map, used by tests and by the
// CLI when no workflow database is in play.
type MapParams map[string]string

func (m MapParams) Get(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}

func (m MapParams) GetDefault(name, def string) string {
	if v, ok := m[name]; ok && v != "" {
		return v
	}
	return def
}
