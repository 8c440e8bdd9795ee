// Package assistant calls a remote OpenAI-compatible API to generate
// journal suggestions and assistant chat replies.
//
// It owns prompt construction only; persistence of transcripts belongs
// to the store, and the store never interprets the generated text. When
// journal entries are included as chat context, their annotation
// markers are stripped first.
package assistant
