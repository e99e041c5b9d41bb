package domain

import (
	"strings"
	"time"
	"unicode"

	"github.com/mestakip/tiretrack/pkg/authz"
)

// Item group and season classification shared with the tire inventory
const (
	GroupPassenger  = "PASSENGER"
	GroupCommercial = "COMMERCIAL"
	GroupBattery    = "BATTERY"

	SeasonSummer    = "SUMMER"
	SeasonWinter    = "WINTER"
	SeasonAllSeason = "ALL_SEASON"
)

// Currencies
const (
	CurrencyTRY = "TRY"
	CurrencyUSD = "USD"
)

// Category groups items; the slug is unique across the table
type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;not null"`
	OwnerID   uint      `json:"owner_id" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Item is a stocked product. Quantity is a running stock count mutated by
// purchase completion; it is intentionally not validated non-negative.
type Item struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Slug         string     `json:"slug" gorm:"uniqueIndex;not null"`
	Description  string     `json:"description"`
	CategoryID   uint       `json:"category_id" gorm:"not null;index"`
	Category     *Category  `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Quantity     int        `json:"quantity" gorm:"default:0"`
	Price        float64    `json:"price" gorm:"default:0"`
	Currency     string     `json:"currency" gorm:"default:'TRY'"`
	ExpiringDate *time.Time `json:"expiring_date,omitempty"`
	VendorID     *uint      `json:"vendor_id,omitempty" gorm:"index"`
	Brand        string     `json:"brand"`
	Group        string     `json:"group"`
	Season       string     `json:"season"`
	OwnerID      uint       `json:"owner_id" gorm:"index"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (Item) TableName() string {
	return "items"
}

// LookupResult is the wire shape of the item lookup endpoint. Quantity is
// always 1 and TotalProduct 0: the caller (a sale form) seeds its rows with
// a single unit.
type LookupResult struct {
	ID           uint   `json:"id"`
	Text         string `json:"text"`
	Category     string `json:"category"`
	Quantity     int    `json:"quantity"`
	TotalProduct int    `json:"total_product"`
}

// Lookup converts an item to its lookup wire shape
func (i *Item) Lookup() LookupResult {
	categoryName := ""
	if i.Category != nil {
		categoryName = i.Category.Name
	}
	return LookupResult{
		ID:           i.ID,
		Text:         i.Name,
		Category:     categoryName,
		Quantity:     1,
		TotalProduct: 0,
	}
}

// Slugify lowercases a name and replaces runs of non-alphanumerics with a
// single dash
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(name) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastDash = false
		case !lastDash:
			b.WriteRune('-')
			lastDash = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(scope authz.Scope, id uint) (*Category, error)
	FindAll(scope authz.Scope, limit, offset int) ([]Category, error)
	Update(category *Category) error
	// Delete removes a category; it fails with a validation error while
	// items still reference it (restrict, not cascade).
	Delete(id uint) error
	CountItems(categoryID uint) (int64, error)
	SlugExists(slug string) (bool, error)
}

// ItemRepository defines the contract for item data access
type ItemRepository interface {
	Create(item *Item) error
	FindByID(scope authz.Scope, id uint) (*Item, error)
	FindBySlug(scope authz.Scope, slug string) (*Item, error)
	FindAll(scope authz.Scope, limit, offset int) ([]Item, error)
	// Search applies every term as a case-insensitive name filter (AND)
	Search(scope authz.Scope, terms []string, limit, offset int) ([]Item, error)
	// Lookup returns up to limit items whose name contains term
	Lookup(term string, limit int) ([]Item, error)
	Update(item *Item) error
	Delete(id uint) error
	AddQuantity(id uint, delta int) error
	Count(scope authz.Scope) (int64, error)
	SlugExists(slug string) (bool, error)
}
