// Package authz implements the row-level visibility rule shared by every
// listing, detail and reporting query: admins see everything, everyone else
// sees only rows they own.
package authz

import "gorm.io/gorm"

// Scope identifies the acting user for visibility filtering
type Scope struct {
	UserID uint
	Admin  bool
}

// Visible reports whether a row owned by ownerID is visible to the scope:
// admins see every row, everyone else only their own.
func (s Scope) Visible(ownerID uint) bool {
	if s.Admin {
		return true
	}
	return ownerID == s.UserID
}

// Filter narrows a query to rows the scope may see. Admins get the query
// back unchanged; other users are restricted to their own rows via column.
func (s Scope) Filter(db *gorm.DB, column string) *gorm.DB {
	if s.Admin {
		return db
	}
	return db.Where(column+" = ?", s.UserID)
}
