package service

import (
	"context"
	"fmt"
	"time"

	"spellingspark/internal/repository"

	"go.uber.org/zap"
)

// StatsService keeps the definition cache within its retention window
type StatsService struct {
	defRepo       repository.DefinitionRepository
	retentionDays int
	logger        *zap.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(defRepo repository.DefinitionRepository, retentionDays int, logger *zap.Logger) *StatsService {
	return &StatsService{
		defRepo:       defRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

// CleanupOldData removes cached definitions older than the retention window
// and reports how many were removed
func (s *StatsService) CleanupOldData() (int64, error) {
	removed, err := s.defRepo.CleanOldDefinitions(s.retentionDays)
	if err != nil {
		return 0, fmt.Errorf("failed to clean cached definitions: %w", err)
	}

	s.logger.Info("Definition cache cleaned",
		zap.Int("retention_days", s.retentionDays),
		zap.Int64("removed", removed),
	)
	return removed, nil
}

// Run cleans up once at start and then every interval until ctx is done
func (s *StatsService) Run(ctx context.Context, interval time.Duration) {
	s.cleanup()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Cleanup job stopped")
			return
		case <-ticker.C:
			s.cleanup()
		}
	}
}

func (s *StatsService) cleanup() {
	if _, err := s.CleanupOldData(); err != nil {
		s.logger.Error("Cleanup failed", zap.Error(err))
	}
}
