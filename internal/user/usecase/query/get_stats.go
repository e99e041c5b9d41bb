package query

import (
	"fmt"

	"github.com/mestakip/tiretrack/internal/user/domain"
)

// GetStatsQuery represents the query to get account statistics
type GetStatsQuery struct{}

// UserStats holds account counts broken down by role and status
type UserStats struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
	Admins        int64 `json:"admins"`
	Managers      int64 `json:"managers"`
	Operators     int64 `json:"operators"`
}

// GetStatsHandler handles the account stats query
type GetStatsHandler struct {
	repo domain.UserRepository
}

// NewGetStatsHandler creates a new stats handler
func NewGetStatsHandler(repo domain.UserRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle executes the stats query
func (h *GetStatsHandler) Handle(q GetStatsQuery) (*UserStats, error) {
	total, err := h.repo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	stats := &UserStats{TotalUsers: total}

	if stats.ActiveUsers, err = h.repo.CountByStatus(domain.StatusActive); err != nil {
		return nil, err
	}
	if stats.InactiveUsers, err = h.repo.CountByStatus(domain.StatusInactive); err != nil {
		return nil, err
	}
	if stats.Admins, err = h.repo.CountByRole(domain.RoleAdmin); err != nil {
		return nil, err
	}
	if stats.Managers, err = h.repo.CountByRole(domain.RoleManager); err != nil {
		return nil, err
	}
	if stats.Operators, err = h.repo.CountByRole(domain.RoleOperator); err != nil {
		return nil, err
	}

	return stats, nil
}
