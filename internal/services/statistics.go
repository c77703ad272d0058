package services

import (
	"context"
	"fmt"
	"time"

	"talktrack/internal/domain"
	"talktrack/internal/stats"
)

// StatisticsService builds the speaking dashboard.
type StatisticsService struct {
	snapshots      domain.SnapshotReader
	contextTimeout time.Duration
}

func NewStatisticsService(snapshots domain.SnapshotReader, timeout time.Duration) *StatisticsService {
	return &StatisticsService{snapshots: snapshots, contextTimeout: timeout}
}

func (s *StatisticsService) GetStatistics(ctx context.Context, opts stats.Options) (*stats.Statistics, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	snap, err := s.snapshots.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return stats.Compute(snap, opts), nil
}
