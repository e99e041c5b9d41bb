package command

import (
	"fmt"
	"strings"

	"github.com/mestakip/tiretrack/internal/catalog/domain"
	"github.com/mestakip/tiretrack/pkg/apperr"
	"github.com/mestakip/tiretrack/pkg/authz"
)

type CreateCategoryCommand struct {
	Name  string `json:"name"`
	Scope authz.Scope
}

type UpdateCategoryCommand struct {
	ID    uint
	Name  string `json:"name"`
	Scope authz.Scope
}

type DeleteCategoryCommand struct {
	ID    uint
	Scope authz.Scope
}

// CategoryHandler covers category writes
type CategoryHandler struct {
	categories domain.CategoryRepository
}

func NewCategoryHandler(categories domain.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{categories: categories}
}

func (h *CategoryHandler) HandleCreate(cmd CreateCategoryCommand) (*domain.Category, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", apperr.ErrValidation)
	}

	slug, err := uniqueSlug(name, h.categories.SlugExists)
	if err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:    name,
		Slug:    slug,
		OwnerID: cmd.Scope.UserID,
	}
	if err := h.categories.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (h *CategoryHandler) HandleUpdate(cmd UpdateCategoryCommand) (*domain.Category, error) {
	category, err := h.categories.FindByID(cmd.Scope, cmd.ID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, fmt.Errorf("category name is required: %w", apperr.ErrValidation)
	}

	// The slug is stable after creation; only the display name changes.
	category.Name = name
	if err := h.categories.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (h *CategoryHandler) HandleDelete(cmd DeleteCategoryCommand) error {
	if _, err := h.categories.FindByID(cmd.Scope, cmd.ID); err != nil {
		return err
	}
	return h.categories.Delete(cmd.ID)
}

// uniqueSlug derives a slug from name and suffixes a counter while the slug
// is already taken
func uniqueSlug(name string, exists func(string) (bool, error)) (string, error) {
	base := domain.Slugify(name)
	if base == "" {
		base = "item"
	}
	slug := base
	for i := 2; ; i++ {
		taken, err := exists(slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
