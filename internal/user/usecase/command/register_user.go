package command

import (
	"fmt"

	"github.com/mestakip/tiretrack/internal/user/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/auth"
)

// RegisterUserCommand represents the command to register a new account
type RegisterUserCommand struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Telephone string
	Role      string
}

// RegisterUserHandler handles account registration
type RegisterUserHandler struct {
	repo domain.UserRepository
}

// NewRegisterUserHandler creates a new register user handler
func NewRegisterUserHandler(repo domain.UserRepository) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

// Handle executes the register user command
func (h *RegisterUserHandler) Handle(cmd RegisterUserCommand) (*domain.User, error) {
	if cmd.Username == "" {
		return nil, fmt.Errorf("%w: username is required", apperr.ErrValidation)
	}
	if cmd.Email == "" {
		return nil, fmt.Errorf("%w: email is required", apperr.ErrValidation)
	}
	if len(cmd.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", apperr.ErrValidation)
	}
	if cmd.Role == "" {
		cmd.Role = domain.RoleOperator
	}
	if !domain.ValidRole(cmd.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", apperr.ErrValidation, cmd.Role)
	}

	if existing, _ := h.repo.FindByUsername(cmd.Username); existing != nil {
		return nil, fmt.Errorf("%w: username already taken", apperr.ErrValidation)
	}
	if existing, _ := h.repo.FindByEmail(cmd.Email); existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperr.ErrValidation)
	}

	hashed, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		Username:  cmd.Username,
		Email:     cmd.Email,
		Password:  hashed,
		FirstName: cmd.FirstName,
		LastName:  cmd.LastName,
		Telephone: cmd.Telephone,
		Role:      cmd.Role,
		Status:    domain.StatusActive,
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
