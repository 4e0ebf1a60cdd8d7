package settings

import (
	"log/slog"

	"github.com/xraph/batch/capability"
)

// Registry maps friendly job names to their raw, un-resolved configuration.
// It is a stateless lookup over an immutable table supplied at
// construction.
type Registry struct {
	table  map[string]map[string]any
	caps   *capability.Registry
	logger *slog.Logger
}

// NewRegistry creates a Registry over the given raw table. A nil logger
// falls back to slog.Default().
func NewRegistry(table map[string]map[string]any, caps *capability.Registry, logger *slog.Logger) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{table: table, caps: caps, logger: logger}
}

// Create resolves the settings registered under a friendly job name.
//
// A known name re-resolves its raw configuration on every call, so the
// result always reflects the current table contents and capability
// bindings. An unknown name is not an error: Create logs a warning so
// configuration typos stay visible, then synthesizes settings that bind
// the built-in no-op capability and carry the name as job type.
func (r *Registry) Create(name string) (*Settings, error) {
	if raw, ok := r.table[name]; ok {
		return Resolve(raw, r.caps)
	}

	r.logger.Warn("no settings registered for job name, using no-op defaults",
		slog.String("job_name", name),
	)
	return Resolve(map[string]any{
		"job_class": capability.NoopIdentifier,
		"job_type":  name,
	}, r.caps)
}
