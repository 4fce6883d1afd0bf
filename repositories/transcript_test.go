package repositories

import (
	"chat-stats/errors"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func Test_Read_Transcript(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chat.txt")
	content := "1/1/23, 9:00 AM - Alice: Hello!\n"
	req.NoError(os.WriteFile(path, []byte(content), 0o600))

	repository := NewFileTranscriptRepository(logs.GetLoggerFromLevel(slog.LevelDebug), 1024)
	data, err := repository.Read(ctx, path)
	req.NoError(err)
	req.Equal(content, string(data))
}

func Test_Read_Transcript_Too_Large(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "chat.txt")
	req.NoError(os.WriteFile(path, make([]byte, 64), 0o600))

	repository := NewFileTranscriptRepository(logs.GetLoggerFromLevel(slog.LevelDebug), 32)
	_, err := repository.Read(ctx, path)
	req.ErrorIs(err, errors.ErrTranscriptTooLarge)

	// No limit configured
	unlimited := NewFileTranscriptRepository(logs.GetLoggerFromLevel(slog.LevelDebug), 0)
	data, err := unlimited.Read(ctx, path)
	req.NoError(err)
	req.Len(data, 64)
}

func Test_Read_Transcript_Missing(t *testing.T) {
	req := require.New(t)
	repository := NewFileTranscriptRepository(logs.GetLoggerFromLevel(slog.LevelDebug), 0)
	_, err := repository.Read(context.Background(), filepath.Join(t.TempDir(), "missing.txt"))
	req.ErrorIs(err, os.ErrNotExist)
}

func Test_Read_Transcript_Cancelled(t *testing.T) {
	req := require.New(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	repository := NewFileTranscriptRepository(logs.GetLoggerFromLevel(slog.LevelDebug), 0)
	_, err := repository.Read(ctx, "whatever.txt")
	req.ErrorIs(err, context.Canceled)
}
