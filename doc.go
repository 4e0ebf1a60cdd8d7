// Package batch resolves raw per-job configuration into immutable, typed
// settings and derives the deterministic identifiers and initial run record
// for one scheduled execution of a recurring job.
//
// Batch is designed as a library, not a service. It performs no I/O: it does
// not execute jobs, evaluate schedules, talk to a datastore, or acquire
// locks. Those belong to external collaborators that consume what this
// library produces: a scheduler reads Settings.Schedule, an execution engine
// instantiates Settings.JobClass, a store persists the Record.
//
// # Quick Start
//
//	caps := capability.NewRegistry()
//	caps.RegisterStatic("reports.daily", map[string]job.Factory{
//	    "Ingest": func() job.Job { return &IngestJob{} },
//	})
//
//	reg := settings.NewRegistry(rawTable, caps, nil)
//	s, err := reg.Create("daily-ingest")
//
//	factory := settings.NewRecordFactory(id.DefaultOffsets(), nil)
//	rec, err := factory.NewRecord(s, 0, runDate)
//
// # Architecture
//
// Each concern lives in its own subpackage: capability holds the name to
// implementation indirection, settings the resolution, registry, and record
// factory, id the deterministic key derivation, and job the capability
// contract, run record, codec, and store boundary.
//
// Identifiers are a pure function of job type, version, run date, and
// revision, so an external store can implement create-if-absent
// deduplication on top of them.
package batch
