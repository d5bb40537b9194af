package http

import (
	"github.com/gin-gonic/gin"

	"lifelog-engine/internal/profile"
	pkgLog "lifelog-engine/pkg/log"
)

// Handler is the interface for the profile HTTP delivery layer.
type Handler interface {
	Detail(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc profile.UseCase
}

// New creates a new HTTP handler for the health profile.
func New(l pkgLog.Logger, uc profile.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
