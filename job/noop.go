package job

import "context"

// Noop is the built-in do-nothing capability. The settings registry binds
// it to friendly names that have no configuration, so an unknown name
// still resolves to runnable settings.
type Noop struct{}

// Run completes immediately without touching the snapshots.
func (Noop) Run(_ context.Context, _ *Inputs, _ *States) error { return nil }
