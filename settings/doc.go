// Package settings resolves raw per-job configuration into immutable,
// typed settings and builds the initial run record for one scheduled
// execution.
//
// # Resolution
//
// [Resolve] converts a loosely-typed map into a [Settings] value. Two keys
// are required: "job_class", a dotted capability identifier resolved
// through a capability registry, and "job_type", the friendly name stable
// across versions. Every other key is optional and falls back to a
// documented default. Values are coerced to their declared types eagerly;
// a coercion failure or a negative numeric value fails resolution, so a
// Settings value either fully forms or is not produced at all.
//
// # Registry
//
// [Registry] maps friendly job names to their raw configuration. Create
// re-resolves on every call (no memoization) and never fails on an unknown
// name: it logs a warning and synthesizes settings bound to the built-in
// no-op capability instead.
//
// # Record Factory
//
// [RecordFactory] turns a Settings value, a revision, and a run date into
// the initial pending [job.Record], with identifiers derived through the
// id package. Passing a zero run date substitutes the current UTC instant
// and forfeits reproducibility for that invocation.
package settings
