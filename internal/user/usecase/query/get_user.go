package query

import (
	"github.com/mestakip/tiretrack/internal/user/domain"
)

// GetUserQuery represents the query to get a single account
type GetUserQuery struct {
	ID uint
}

// GetUserHandler handles the get user query
type GetUserHandler struct {
	repo domain.UserRepository
}

// NewGetUserHandler creates a new get user handler
func NewGetUserHandler(repo domain.UserRepository) *GetUserHandler {
	return &GetUserHandler{repo: repo}
}

// Handle executes the get user query
func (h *GetUserHandler) Handle(q GetUserQuery) (*domain.User, error) {
	return h.repo.FindByID(q.ID)
}
