// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CatalogHandler  *handler.CatalogHandler
	FavoriteHandler *handler.FavoriteHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	catalogHandler  *handler.CatalogHandler
	favoriteHandler *handler.FavoriteHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		catalogHandler:  params.CatalogHandler,
		favoriteHandler: params.FavoriteHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// The flat paths are a client contract inherited from the previous generation
// of this service and must stay as they are.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	// Credential routes, always open.
	e.POST("/register", r.authHandler.Register)
	e.POST("/login", r.authHandler.Login)

	// Catalog routes, read-only and open.
	e.GET("/products", r.catalogHandler.Search)
	e.GET("/product/:id", r.catalogHandler.Get)

	// Favorites routes. Gate applies session enforcement only when
	// auth.enforceSession is switched on; the historical default is open.
	e.POST("/favorite", r.favoriteHandler.Toggle, r.authMiddleware.Gate)
	e.POST("/isfavorite", r.favoriteHandler.IsFavorite, r.authMiddleware.Gate)
	e.GET("/favorites/:user", r.favoriteHandler.List, r.authMiddleware.Gate)
}
