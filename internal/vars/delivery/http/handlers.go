package http

import (
	"github.com/gin-gonic/gin"

	"lifelog-engine/pkg/response"
)

// Define godoc
// @Summary     Define a variable
// @Description Creates a named quantity. Accepts either split fields or a one-line "rent = 1200 usd" definition.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       body body defineReq true "Variable definition"
// @Success     200 {object} defineResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - variable already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables [POST]
func (h *handler) Define(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDefineReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Define(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Define: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDefineResp(v))
}

// List godoc
// @Summary     List variables
// @Description Returns every stored variable sorted by type then name.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(out))
}

// Detail godoc
// @Summary     Get one variable
// @Description Resolves a name with the evaluator's priority: meal, then expense, then income.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       name path string true "Variable name"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables/{name} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	v, err := h.uc.Get(ctx, c.Param("name"))
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newDetailResp(v))
}

// Update godoc
// @Summary     Update a variable
// @Description Rewrites a variable's value and optionally its type or currency.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       name path string    true "Variable name"
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables/{name} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	v, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newUpdateResp(v))
}

// Delete godoc
// @Summary     Delete a variable
// @Description Removes every variable bearing the name, across types.
// @Tags        Variables
// @Accept      json
// @Produce     json
// @Param       name path string true "Variable name"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/variables/{name} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Delete(ctx, c.Param("name")); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}
