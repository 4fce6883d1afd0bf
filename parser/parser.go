package parser

import (
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"chat-stats/domain"
	"chat-stats/errors"
)

const byteOrderMark = "\ufeff"

type Parser struct {
	log        *slog.Logger
	normalizer Normalizer
}

// New returns a parser reading timestamps as UTC wall-clock times.
func New(log *slog.Logger) *Parser {
	return NewInLocation(log, time.UTC)
}

func NewInLocation(log *slog.Logger, loc *time.Location) *Parser {
	return &Parser{log: log, normalizer: NewNormalizer(loc)}
}

// Parse builds the record store of one transcript.
// Entries with an unreadable timestamp or a blank message are dropped, never fatal.
// Only text that is not valid UTF-8 is rejected.
func (p *Parser) Parse(raw string) (domain.Store, error) {
	if !utf8.ValidString(raw) {
		return domain.Store{}, errors.ErrInvalidTranscript
	}
	raw = strings.TrimPrefix(raw, byteOrderMark)

	segments := Split(raw)
	records := make([]domain.Record, 0, len(segments))
	var unparseable, blank int
	for _, segment := range segments {
		at, ok := p.normalizer.Normalize(segment.Date, segment.Time)
		if !ok {
			unparseable++
			p.log.Debug("Dropping entry with unparseable timestamp",
				"date", segment.Date, "time", segment.Time)
			continue
		}
		author, message := Classify(segment.Body)
		if strings.TrimSpace(message) == "" {
			blank++
			continue
		}
		records = append(records, domain.NewRecord(len(records), at, author, message))
	}

	p.log.Debug("Transcript parsed",
		"segments", len(segments),
		"records", len(records),
		"unparseable", unparseable,
		"blank", blank)
	return domain.NewStore(records), nil
}
