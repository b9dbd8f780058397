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

// TradingHandlerParams holds dependencies for TradingHandler, injected by Fx.
type TradingHandlerParams struct {
	fx.In

	TradingUC usecase.TradingUsecase
	Logger    *slog.Logger
}

// TradingHandler holds dependencies for purchase and registration handlers
type TradingHandler struct {
	tradingUC usecase.TradingUsecase
	logger    *slog.Logger
}

// NewTradingHandler is the constructor for TradingHandler
func NewTradingHandler(params TradingHandlerParams) *TradingHandler {
	return &TradingHandler{
		tradingUC: params.TradingUC,
		logger:    params.Logger,
	}
}

// AddCatRequest represents the request body for registering a new cat
type AddCatRequest struct {
	Breed string `json:"breed" validate:"required"`
	Name  string `json:"name" validate:"required"`
	Photo string `json:"photo,omitempty"`
}

// AddCat handles registering a new cat with the shelter
func (h *TradingHandler) AddCat(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	var req AddCatRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cat registration input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	catID, err := h.tradingUC.AddCat(c.Request().Context(), token, &usecase.AddCatInput{
		Breed: req.Breed,
		Name:  req.Name,
		Photo: req.Photo,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"id": catID.String()}, "Cat registered successfully")
}

// BuyCat handles purchasing a cat at its current price
func (h *TradingHandler) BuyCat(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	bill, err := h.tradingUC.BuyCat(c.Request().Context(), token, catID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, bill, "Cat purchased successfully")
}
