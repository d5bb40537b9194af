package http

import (
	"github.com/gin-gonic/gin"
)

// processUpdateReq binds and validates the profile update body.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
