package services

import (
	"chat-stats/analytics"
	"chat-stats/domain"
	"chat-stats/domain/mimetypes"
	"chat-stats/errors"
	"chat-stats/parser"
	"chat-stats/repositories"
	"context"
	"fmt"
	"log/slog"
)

type IAnalyzerService interface {
	Load(ctx context.Context, name string) (domain.Store, error)
	Dashboard(ctx context.Context, store domain.Store, scope string) (analytics.Dashboard, error)
}

type AnalyzerService struct {
	log        *slog.Logger
	repository repositories.ITranscriptRepository
	parser     *parser.Parser
	engine     *analytics.Engine
	limits     analytics.Limits
}

func NewAnalyzerService(log *slog.Logger,
	repository repositories.ITranscriptRepository,
	transcriptParser *parser.Parser,
	engine *analytics.Engine,
	limits analytics.Limits) *AnalyzerService {
	return &AnalyzerService{
		log:        log,
		repository: repository,
		parser:     transcriptParser,
		engine:     engine,
		limits:     limits,
	}
}

// Load reads a transcript, refuses anything that is not text and parses it.
func (s AnalyzerService) Load(ctx context.Context, name string) (domain.Store, error) {
	data, err := s.repository.Read(ctx, name)
	if err != nil {
		return domain.Store{}, fmt.Errorf("loading %s: %w", name, err)
	}
	if mtype := mimetypes.Detect(data); !mimetypes.IsTranscript(mtype) {
		return domain.Store{}, fmt.Errorf("%s detected as %s: %w", name, mtype.String(), errors.ErrNotText)
	}

	store, err := s.parser.Parse(string(data))
	if err != nil {
		return domain.Store{}, fmt.Errorf("parsing %s: %w", name, err)
	}
	s.log.Info("Transcript loaded",
		"name", name,
		"records", store.Len(),
		"participants", len(store.Participants()))
	return store, nil
}

// Dashboard computes every statistic of scope, which must be one of store.Scopes().
func (s AnalyzerService) Dashboard(ctx context.Context, store domain.Store, scope string) (analytics.Dashboard, error) {
	if !store.HasScope(scope) {
		return analytics.Dashboard{}, fmt.Errorf("%q: %w", scope, errors.ErrUnknownScope)
	}
	dashboard, err := s.engine.Dashboard(ctx, scope, store, s.limits)
	if err != nil {
		return analytics.Dashboard{}, fmt.Errorf("computing dashboard for %q: %w", scope, err)
	}
	s.log.Debug("Dashboard computed", "scope", scope, "messages", dashboard.Summary.Messages)
	return dashboard, nil
}
