// Package job defines the job capability contract, the run record entity,
// the snapshot codec, and the record store interface.
//
// # Capability
//
// A [Job] is the behavioral contract a pluggable job implementation must
// satisfy: accept the decoded [Inputs] and [States] snapshots and expose a
// single execution entry point. Implementations are constructed through a
// [Factory] registered in a capability registry; this package never
// executes them.
//
// # Run Record
//
// A [Record] represents one scheduled execution plus revision. It is
// created once in pending status with equal create and update times, and
// from then on belongs to external collaborators: the execution engine
// advances Status, States, and UpdateTime, and the retention sweep reaps
// expired records.
//
// # Snapshots
//
// [Inputs] and [States] travel inside the record as opaque blobs produced
// by a [Codec]. Field names and wire types are fixed across releases;
// [MsgpackCodec] is the default encoding.
//
// # Store
//
// [Store] is the persistence boundary. Backends index records by
// (PartitionKey, RowKey) and must make CreateRecord create-if-absent,
// which together with deterministic key derivation gives run-level
// deduplication. The store/memory package provides a reference
// implementation for tests and development.
package job
