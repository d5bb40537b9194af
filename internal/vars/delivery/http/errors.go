package http

import (
	"errors"
	"net/http"

	"lifelog-engine/internal/vars"
	"lifelog-engine/pkg/response"
)

// mapError translates variable-store errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, vars.ErrEmptyName):
		return response.NewErr(http.StatusBadRequest, 400, "variable name is empty")
	case errors.Is(err, vars.ErrUnreadableValue):
		return response.NewErr(http.StatusBadRequest, 400, "value has no recognizable quantity")
	case errors.Is(err, vars.ErrVariableExists):
		return response.NewErr(http.StatusConflict, 409, "variable already exists")
	case errors.Is(err, vars.ErrVariableNotFound):
		return response.NewErr(http.StatusNotFound, 404, "variable not found")
	default:
		return response.NewErr(http.StatusInternalServerError, response.InternalServerErrorCode, response.DefaultErrorMessage)
	}
}
