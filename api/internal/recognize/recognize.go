// Package recognize defines the collaborator ports the bot core depends
// on. Vendor-backed engines live in subpackages; the core only sees these
// interfaces, so tests swap them for fakes.
package recognize

import (
	"context"
	"net/http"
)

// Transcriber converts an audio payload to text.
// An empty string with a nil error means nothing was recognized; the
// dispatcher treats that the same as a failure.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, mime string) (string, error)
}

// TextExtractor pulls readable text out of an image.
type TextExtractor interface {
	ExtractText(ctx context.Context, image []byte) (string, error)
}

// Structurer asks a model to rewrite raw draft text into the labeled
// five-line form. Any error means "no structured result" to the caller;
// the call may take several seconds and must respect ctx.
type Structurer interface {
	Structure(ctx context.Context, prompt, rawText string) (string, error)
}

// SniffMime guesses a payload's content type from its magic bytes.
func SniffMime(b []byte) string {
	return http.DetectContentType(b)
}
