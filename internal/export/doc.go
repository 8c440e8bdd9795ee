// Package export renders journal entries and chat transcripts to
// portable formats: JSON, YAML, Markdown and standalone HTML.
//
// Exporters operate on a Document built from store records so the
// serialized shapes stay stable independently of the store types. The
// legacy per-entry password field is never exported.
package export
