package entity

import (
	"time"

	"github.com/google/uuid"
)

// Product is a read-only catalog item. The catalog is an external collaborator
// as far as the core is concerned: this service only queries it by id or by
// substring match on the name, it never writes to it.
type Product struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}
