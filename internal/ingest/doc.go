// Package ingest converts validated, untrusted recipe payloads into safe
// Markdown draft documents.
//
// The pipeline is a one-shot batch: load the schema and payload, validate
// the payload structure, then normalize each record in order. Normalization
// derives a canonical slug and date, sanitizes every free-text field,
// assembles an allow-listed metadata block and refuses records whose
// ingredients or steps end up empty. Each surviving record is serialized
// into a deterministic document layout and written (or, in dry-run mode,
// only reported).
//
// Structural defects are accumulated and reported together before any
// normalization happens; normalization failures abort the remaining batch
// at the first error, so a partial failure is always fully reviewed rather
// than silently skipped.
package ingest
