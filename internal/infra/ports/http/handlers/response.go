package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aliasparty/backend/internal/domain/errs"
	"github.com/aliasparty/backend/internal/usecase"
)

// jsonError maps a domain error onto an HTTP status with the common
// error body shape.
func jsonError(c echo.Context, err error) error {
	return c.JSON(errorStatus(err), map[string]string{"error": err.Error()})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errs.ErrRoomNotFound),
		errors.Is(err, errs.ErrTeamNotFound),
		errors.Is(err, errs.ErrUserNotFound):
		return http.StatusNotFound

	case errors.Is(err, errs.ErrTeamFull),
		errors.Is(err, errs.ErrDuplicateMember),
		errors.Is(err, errs.ErrRoomNameTaken),
		errors.Is(err, errs.ErrUsernameTaken):
		return http.StatusConflict

	case errors.Is(err, errs.ErrInvalidInput),
		errors.Is(err, errs.ErrTeamEmpty):
		return http.StatusBadRequest

	case errors.Is(err, usecase.ErrInvalidCredentials):
		return http.StatusUnauthorized

	default:
		return http.StatusInternalServerError
	}
}
