package command

import (
	"fmt"

	"github.com/mestakip/tiretrack/internal/user/domain"
)

// ToggleStatusCommand represents the command to flip an account between
// active and inactive
type ToggleStatusCommand struct {
	UserID uint
}

// ToggleStatusHandler handles account status toggling
type ToggleStatusHandler struct {
	repo domain.UserRepository
}

// NewToggleStatusHandler creates a new toggle status handler
func NewToggleStatusHandler(repo domain.UserRepository) *ToggleStatusHandler {
	return &ToggleStatusHandler{repo: repo}
}

// Handle executes the toggle status command
func (h *ToggleStatusHandler) Handle(cmd ToggleStatusCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	if user.Status == domain.StatusActive {
		user.Status = domain.StatusInactive
	} else {
		user.Status = domain.StatusActive
	}

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to toggle status: %w", err)
	}

	return user, nil
}
