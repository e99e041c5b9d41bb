package command

import (
	"fmt"

	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
)

// ChangeRoleCommand represents the command to change an account's role
type ChangeRoleCommand struct {
	UserID uint
	Role   string
}

// ChangeRoleHandler handles role changes
type ChangeRoleHandler struct {
	repo domain.UserRepository
}

// NewChangeRoleHandler creates a new change role handler
func NewChangeRoleHandler(repo domain.UserRepository) *ChangeRoleHandler {
	return &ChangeRoleHandler{repo: repo}
}

// Handle executes the change role command
func (h *ChangeRoleHandler) Handle(cmd ChangeRoleCommand) (*domain.User, error) {
	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, cmd.Role)
	}

	user, err := h.repo.FindByID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	user.Role = cmd.Role
	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to change role: %w", err)
	}

	return user, nil
}
