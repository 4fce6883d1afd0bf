package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsTranscript(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"Exported chat", []byte("1/1/23, 9:00 AM - Alice: Hello!\n1/1/23, 9:05 AM - Bob: Hi Alice\n"), true},
		{"Chat with emoji and accents", []byte("2/3/24, 21:00 - Zoé: à demain 😂\n"), true},
		{"PNG image", []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A, 0, 0, 0, 0x0D, 'I', 'H', 'D', 'R'}, false},
		{"PDF document", []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n1 0 obj\n"), false},
		{"Gzip archive", []byte{0x1f, 0x8b, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			detected := Detect(tt.data)
			req.Equal(tt.want, IsTranscript(detected), "detected=%s", detected.String())
		})
	}
}
