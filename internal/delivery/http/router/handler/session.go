package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// HeaderSessionToken carries the caller's opaque session token. The token is
// forwarded to the authorization collaborator untouched; its format is not
// interpreted here.
const HeaderSessionToken = "X-Session-Token"

func sessionToken(c echo.Context) (string, bool) {
	token := c.Request().Header.Get(HeaderSessionToken)

	return token, token != ""
}

func parseQueryInt(c echo.Context, name string, fallback int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.Atoi(raw)
}
