// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shelter/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatHandler       *handler.CatHandler
	FavouriteHandler *handler.FavouriteHandler
	TradingHandler   *handler.TradingHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	catHandler       *handler.CatHandler
	favouriteHandler *handler.FavouriteHandler
	tradingHandler   *handler.TradingHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catHandler:       params.CatHandler,
		favouriteHandler: params.FavouriteHandler,
		tradingHandler:   params.TradingHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Cat listing, detail, registration and purchase
	catGroup := e.Group("/cats")
	{
		catGroup.GET("", r.catHandler.ListCats)
		catGroup.POST("", r.tradingHandler.AddCat)
		catGroup.GET("/:id", r.catHandler.GetCat)
		catGroup.GET("/:id/qr", r.catHandler.ShareQR)
		catGroup.POST("/:id/buy", r.tradingHandler.BuyCat)
	}

	// Per-user favourites
	favouriteGroup := e.Group("/favourites")
	{
		favouriteGroup.GET("", r.favouriteHandler.ListFavourites)
		favouriteGroup.POST("", r.favouriteHandler.AddFavourite)
		favouriteGroup.DELETE("/:catId", r.favouriteHandler.RemoveFavourite)
	}
}
