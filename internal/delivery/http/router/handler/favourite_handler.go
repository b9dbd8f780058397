package handler

import (
	"log/slog"
	"net/http"

	"shelter/internal/delivery/http/response"
	"shelter/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavouriteHandlerParams holds dependencies for FavouriteHandler, injected by Fx.
type FavouriteHandlerParams struct {
	fx.In

	FavouriteUC usecase.FavouriteUsecase
	Logger      *slog.Logger
}

// FavouriteHandler holds dependencies for favourites-related handlers
type FavouriteHandler struct {
	favouriteUC usecase.FavouriteUsecase
	logger      *slog.Logger
}

// NewFavouriteHandler is the constructor for FavouriteHandler
func NewFavouriteHandler(params FavouriteHandlerParams) *FavouriteHandler {
	return &FavouriteHandler{
		favouriteUC: params.FavouriteUC,
		logger:      params.Logger,
	}
}

// AddFavouriteRequest represents the request body for adding a favourite
type AddFavouriteRequest struct {
	CatID uuid.UUID `json:"cat_id" validate:"required"`
}

// ListFavourites handles retrieving the caller's favourite cats
func (h *FavouriteHandler) ListFavourites(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	cats, err := h.favouriteUC.ListFavourites(c.Request().Context(), token)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cats, "Favourites retrieved successfully")
}

// AddFavourite handles adding a cat to the caller's favourites
func (h *FavouriteHandler) AddFavourite(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	var req AddFavouriteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid favourite input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.favouriteUC.AddFavourite(c.Request().Context(), token, req.CatID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusNoContent, nil, "Favourite added successfully")
}

// RemoveFavourite handles removing a cat from the caller's favourites
func (h *FavouriteHandler) RemoveFavourite(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	catID, err := uuid.Parse(c.Param("catId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	if err := h.favouriteUC.RemoveFavourite(c.Request().Context(), token, catID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusNoContent, nil, "Favourite removed successfully")
}
