package authz

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type row struct {
	ID      uint
	OwnerID uint
}

func TestVisible(t *testing.T) {
	owner := Scope{UserID: 7}
	assert.True(t, owner.Visible(7))
	assert.False(t, owner.Visible(8))

	admin := Scope{UserID: 1, Admin: true}
	assert.True(t, admin.Visible(7))
	assert.True(t, admin.Visible(8))
}

func TestFilter(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&row{}))
	require.NoError(t, db.Create(&[]row{{OwnerID: 1}, {OwnerID: 1}, {OwnerID: 2}}).Error)

	var mine []row
	require.NoError(t, Scope{UserID: 1}.Filter(db, "owner_id").Find(&mine).Error)
	assert.Len(t, mine, 2)

	var all []row
	require.NoError(t, Scope{UserID: 1, Admin: true}.Filter(db, "owner_id").Find(&all).Error)
	assert.Len(t, all, 3)
}
