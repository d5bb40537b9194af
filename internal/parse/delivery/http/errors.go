package http

import (
	"errors"
	"net/http"

	"lifelog-engine/internal/parse"
	"lifelog-engine/pkg/response"
)

// mapError translates use-case errors into HTTP errors. Collaborator
// failures never reach here; the pipeline degrades them into result items.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, parse.ErrEmptyText):
		return response.NewErr(http.StatusBadRequest, 400, "text is empty")
	default:
		return response.NewErr(http.StatusInternalServerError, response.InternalServerErrorCode, response.DefaultErrorMessage)
	}
}
