package http

import (
	"github.com/gin-gonic/gin"

	"lifelog-engine/internal/vars"
	pkgLog "lifelog-engine/pkg/log"
)

// Handler is the interface for the variables HTTP delivery layer.
type Handler interface {
	Define(c *gin.Context)
	List(c *gin.Context)
	Detail(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc vars.UseCase
}

// New creates a new HTTP handler for the variable store.
func New(l pkgLog.Logger, uc vars.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
