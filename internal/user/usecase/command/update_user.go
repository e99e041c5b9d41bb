package command

import (
	"fmt"

	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/auth"
)

// UpdateUserCommand represents the command to update an account's details
type UpdateUserCommand struct {
	ID        uint
	Email     string
	FirstName string
	LastName  string
	Telephone string
	Password  string
}

// UpdateUserHandler handles account updates
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Email != "" && cmd.Email != user.Email {
		if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
			return nil, fmt.Errorf("%w: email already registered", apperr.ErrValidation)
		}
		user.Email = cmd.Email
	}
	if cmd.FirstName != "" {
		user.FirstName = cmd.FirstName
	}
	if cmd.LastName != "" {
		user.LastName = cmd.LastName
	}
	if cmd.Telephone != "" {
		user.Telephone = cmd.Telephone
	}
	if cmd.Password != "" {
		if len(cmd.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", apperr.ErrValidation)
		}
		hashed, err := auth.HashPassword(cmd.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = hashed
	}

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
