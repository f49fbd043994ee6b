package model

import "time"

// FavoriteModel mirrors the 'favorites' table: one row per (user, product)
// membership. The composite unique index gives the set its semantics and lets
// the repository toggle memberships with single conditional statements instead
// of read-then-write sequences.
//
// No soft-delete column on purpose: a removed favorite must be re-addable, and
// a lingering soft-deleted row would collide with the unique index.
type FavoriteModel struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	UserKey   string `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_product"`
	ProductID string `gorm:"type:varchar(255);not null;uniqueIndex:idx_favorites_user_product"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (FavoriteModel) TableName() string {
	return "favorites"
}
