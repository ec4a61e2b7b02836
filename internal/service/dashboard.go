package service

import (
	"context"
	"fmt"

	"github.com/metrosync/backend/internal/domain"
	"github.com/metrosync/backend/internal/repo"
)

// DashboardService computes the dashboard statistics aggregate.
type DashboardService struct {
	stats repo.StatsRepo
}

// NewDashboardService constructs a DashboardService backed by the provided repo.
func NewDashboardService(stats repo.StatsRepo) *DashboardService {
	return &DashboardService{stats: stats}
}

// Stats returns the current dashboard snapshot.
func (s *DashboardService) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := s.stats.Dashboard(ctx)
	if err != nil {
		return domain.DashboardStats{}, fmt.Errorf("service.DashboardService.Stats: %w", err)
	}
	return stats, nil
}
