package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table. This service only reads from it;
// the catalog is maintained elsewhere.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null;index"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:decimal(10,2);not null;default:0"`
	Image       string    `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
