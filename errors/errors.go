package errors

import "fmt"

var (
	ErrInvalidTranscript  = fmt.Errorf("transcript is not valid UTF-8 text")
	ErrNotText            = fmt.Errorf("transcript content is not plain text")
	ErrTranscriptTooLarge = fmt.Errorf("transcript exceeds the configured size")
	ErrUnknownScope       = fmt.Errorf("scope is not a participant of this transcript")
)
