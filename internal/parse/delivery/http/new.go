package http

import (
	"github.com/gin-gonic/gin"

	"lifelog-engine/internal/parse"
	pkgLog "lifelog-engine/pkg/log"
)

// Handler is the interface for the parse HTTP delivery layer.
type Handler interface {
	Parse(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc parse.UseCase
}

// New creates a new HTTP handler for the parse domain.
func New(l pkgLog.Logger, uc parse.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
