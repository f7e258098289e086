package service

import (
	"context"
	"fmt"
	"strings"

	"spellingspark/internal/domain"
	"spellingspark/internal/repository"

	"go.uber.org/zap"
)

// DefinitionFetcher fetches definitions from the language model
type DefinitionFetcher interface {
	FetchDefinitions(ctx context.Context, words []string) (domain.Definitions, error)
}

// DefinitionService resolves definitions through the cache and the model
type DefinitionService struct {
	defRepo repository.DefinitionRepository
	fetcher DefinitionFetcher
	logger  *zap.Logger
}

// NewDefinitionService creates a new definition service
func NewDefinitionService(defRepo repository.DefinitionRepository, fetcher DefinitionFetcher, logger *zap.Logger) *DefinitionService {
	return &DefinitionService{
		defRepo: defRepo,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Prepare returns a definition for every word.
// Cached definitions are reused; the rest are fetched and cached.
func (s *DefinitionService) Prepare(ctx context.Context, words []string) (domain.Definitions, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordList
	}

	cached, err := s.defRepo.GetDefinitions(words)
	if err != nil {
		// The cache is an optimisation; fall through to the model
		s.logger.Warn("Failed to read cached definitions", zap.Error(err))
		cached = domain.Definitions{}
	}

	defs := make(domain.Definitions, len(words))
	var missing []string
	seen := make(map[string]bool)
	for _, w := range words {
		if def, ok := cached[strings.ToLower(w)]; ok {
			defs[w] = def
			continue
		}
		if key := strings.ToLower(w); !seen[key] {
			seen[key] = true
			missing = append(missing, w)
		}
	}

	if len(missing) == 0 {
		return defs, nil
	}

	fetched, err := s.fetcher.FetchDefinitions(ctx, missing)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare definitions: %w", err)
	}

	toCache := make(domain.Definitions)
	for _, w := range words {
		if _, ok := defs[w]; ok {
			continue
		}
		def := lookupFold(fetched, w)
		defs[w] = def
		if def != domain.DefinitionNotFound {
			toCache[w] = def
		}
	}

	if err := s.defRepo.SaveDefinitions(toCache); err != nil {
		s.logger.Warn("Failed to cache definitions", zap.Error(err), zap.Int("count", len(toCache)))
	}

	s.logger.Info("Definitions prepared",
		zap.Int("words", len(words)),
		zap.Int("cached", len(words)-len(missing)),
		zap.Int("fetched", len(missing)),
	)

	return defs, nil
}

// lookupFold finds word in defs ignoring case
func lookupFold(defs domain.Definitions, word string) string {
	if def, ok := defs[word]; ok && def != "" {
		return def
	}
	for w, def := range defs {
		if strings.EqualFold(w, word) && def != "" {
			return def
		}
	}
	return domain.DefinitionNotFound
}
