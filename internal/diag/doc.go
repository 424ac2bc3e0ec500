// Package diag defines the diagnostic model shared by all compiler phases.
//
// # Purpose
//
//   - Provide deterministic, immutable data structures that capture faults
//     found by the lexer / parser / evaluator.
//   - Fix the closed set of error kinds, each with exactly one severity and
//     an optional message template, so every phase reports through the same
//     vocabulary.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting layers.
//
// # Scope
//
// Package diag performs no formatting, IO, or CLI integration. Rendering
// lives in internal/diagfmt; the golden-file harness lives in
// internal/diagtest.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Kind – closed tag (see kind.go) with stable string form and a
//     statically associated Severity.
//   - Severity – two-level enum (Warning, Error) defined in severity.go.
//   - Locations – one or more source.Location values in attachment order;
//     a diagnostic without at least one location is a construction error.
//   - Message – the fully substituted human-readable text.
//
// Diagnostics are built once via Build, handed to a renderer, and
// discarded. They are never mutated after construction, so independent
// diagnostics may be built concurrently without coordination.
//
// # Faults of the subsystem itself
//
// Build can fail three ways, all of them programmer errors in the calling
// phase: UnknownKindError, EmptyLocationListError and
// ArgumentCountMismatchError. They must abort the current compilation unit
// loudly; MustBuild panics on any of them. Sink write failures belong to
// the rendering layer (diagfmt.SinkWriteError).
package diag
