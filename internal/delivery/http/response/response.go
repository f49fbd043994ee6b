// Package response defines the JSON bodies the API serves. The shapes are a
// client contract carried over from the previous generation of the service,
// so field names here must not change.
package response

import (
	"github.com/labstack/echo/v4"

	"storefront/internal/domain/entity"
)

// Register is the body of a successful registration.
type Register struct {
	Token   string                `json:"token"`
	Account *entity.PublicAccount `json:"account"`
}

// Login is the body of a successful login. The account travels under "user"
// here, unlike registration; clients depend on the asymmetry.
type Login struct {
	User  *entity.PublicAccount `json:"user"`
	Token string                `json:"token"`
}

// Toggle reports which way a favorite toggle went.
type Toggle struct {
	Status entity.ToggleStatus `json:"status"`
}

// IsFavorite answers a membership query.
type IsFavorite struct {
	IsFavorited bool `json:"isFavorited"`
}

// FavoriteList is a user's full favorite set.
type FavoriteList struct {
	User       string   `json:"user"`
	ProductIDs []string `json:"productIds"`
}

// Message is the single error shape the API serves for every failure.
type Message struct {
	Message string `json:"message"`
}

// Error writes the uniform error body with the given status code.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Message{Message: message})
}
