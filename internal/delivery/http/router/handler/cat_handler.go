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

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// CatHandlerParams holds dependencies for CatHandler, injected by Fx.
type CatHandlerParams struct {
	fx.In

	CatUC  usecase.CatUsecase
	Logger *slog.Logger
}

// CatHandler holds dependencies for cat listing and detail handlers
type CatHandler struct {
	catUC  usecase.CatUsecase
	logger *slog.Logger
}

// NewCatHandler is the constructor for CatHandler
func NewCatHandler(params CatHandlerParams) *CatHandler {
	return &CatHandler{
		catUC:  params.CatUC,
		logger: params.Logger,
	}
}

// ListCats handles retrieving a page of cats
func (h *CatHandler) ListCats(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	skip, err := parseQueryInt(c, "skip", 0)
	if err != nil || skip < 0 {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid skip parameter")
	}

	limit, err := parseQueryInt(c, "limit", defaultListLimit)
	if err != nil || limit <= 0 || limit > maxListLimit {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid limit parameter")
	}

	cats, err := h.catUC.ListCats(c.Request().Context(), token, skip, limit)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cats, "Cats retrieved successfully")
}

// GetCat handles retrieving a single cat by id
func (h *CatHandler) GetCat(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	cat, err := h.catUC.GetCat(c.Request().Context(), token, catID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cat, "Cat retrieved successfully")
}

// ShareQR handles generating a shareable QR code for a cat listing
func (h *CatHandler) ShareQR(c echo.Context) error {
	token, ok := sessionToken(c)
	if !ok {
		return response.Unauthorized(c, "SESSION_MISSING", "Missing session token")
	}

	catID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cat ID")
	}

	qrCode, err := h.catUC.CatShareQR(c.Request().Context(), token, catID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	// Return QR code as PNG image
	c.Response().Header().Set("Content-Disposition", "inline; filename=cat-qr.png")

	return c.Blob(http.StatusOK, "image/png", qrCode)
}
