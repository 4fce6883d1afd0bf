package mimetypes

import "github.com/gabriel-vasile/mimetype"

const TextPlain = "text/plain"

// Detect sniffs the content type of data.
func Detect(data []byte) *mimetype.MIME {
	return mimetype.Detect(data)
}

// IsTranscript accepts text/plain and every text type refined from it: a chat export
// where most lines share the same comma layout is often sniffed as text/csv.
func IsTranscript(detected *mimetype.MIME) bool {
	for m := detected; m != nil; m = m.Parent() {
		if m.Is(TextPlain) {
			return true
		}
	}
	return false
}
