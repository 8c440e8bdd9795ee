// Package annotate splits and composes the emotion and suggestion
// markers embedded in entry content.
//
// The store treats content as opaque text; these helpers are a
// best-effort convenience for callers that want the bare body, the
// emotion tag, or the suggestion on their own.
package annotate
