//go:generate go run go.uber.org/mock/mockgen -source=transcript.go -destination=../mocks/mock_transcript_repository.go -package=mocks
package repositories

import (
	"chat-stats/errors"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type ITranscriptRepository interface {
	Read(ctx context.Context, name string) ([]byte, error)
}

// FileTranscriptRepository reads exported transcripts from the local filesystem.
type FileTranscriptRepository struct {
	log      *slog.Logger
	maxBytes int64
}

func NewFileTranscriptRepository(log *slog.Logger, maxBytes int64) FileTranscriptRepository {
	return FileTranscriptRepository{log: log, maxBytes: maxBytes}
}

// Read loads the whole transcript. Files above maxBytes are refused before being read.
func (f FileTranscriptRepository) Read(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening transcript: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("reading transcript info: %w", err)
	}
	if f.maxBytes > 0 && info.Size() > f.maxBytes {
		return nil, fmt.Errorf("%s is %d bytes: %w", name, info.Size(), errors.ErrTranscriptTooLarge)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}
	f.log.Debug("Transcript read", "name", name, "bytes", len(data))
	return data, nil
}
