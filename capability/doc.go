// Package capability resolves dotted identifiers to job factories through
// a statically populated registry.
//
// An identifier like "reports.daily.Ingest" splits at the last dot into a
// container path ("reports.daily") and a symbol name ("Ingest"). Containers
// are registered at process startup, either as a ready symbol table via
// [Registry.RegisterStatic] or as a [Loader] invoked lazily on first
// resolution. There is no reflective loading: the name to implementation
// indirection is an explicit table.
//
// Loaded containers are cached by path. A container whose load is still in
// progress is treated as a cache miss and loaded again, so a loader that
// resolves other identifiers while initializing can never observe a
// partially initialized container.
//
// [NewRegistry] pre-registers the built-in container "batch.job" holding
// the [job.Noop] fallback under the identifier [NoopIdentifier].
package capability
