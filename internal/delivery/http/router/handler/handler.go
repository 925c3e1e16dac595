// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"alufactory/internal/delivery/http/middleware"
	"alufactory/internal/delivery/http/response"
	"alufactory/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// actor extracts the authenticated Actor set by the auth middleware.
func actor(c echo.Context) (usecase.Actor, error) {
	act, ok := middleware.ActorFromContext(c)
	if !ok {
		return usecase.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}

	return act, nil
}

// pathUUID parses a UUID path parameter.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}

	return id, nil
}

// pageQuery reads ?page= and ?per_page= with zero defaults; the usecase
// layer normalizes them.
func pageQuery(c echo.Context) usecase.PageInput {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))

	return usecase.PageInput{Page: page, PerPage: perPage}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
