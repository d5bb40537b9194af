package http

import (
	"github.com/gin-gonic/gin"
)

// processDefineReq binds and validates the define request body.
func (h *handler) processDefineReq(c *gin.Context) (defineReq, error) {
	var req defineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update request body and the URI name.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.Name = c.Param("name")
	return req, req.validate()
}
