package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lifelog-engine/pkg/response"
)

// Detail godoc
// @Summary     Get the health profile
// @Description Returns the stored health metrics used for calorie estimation.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Success     200 {object} profileResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := h.uc.Get(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, response.NewErr(http.StatusInternalServerError, response.InternalServerErrorCode, response.DefaultErrorMessage))
		return
	}

	response.OK(c, h.newProfileResp(p))
}

// Update godoc
// @Summary     Update the health profile
// @Description Partially updates the health metrics. Omitted fields keep their value.
// @Tags        Profile
// @Accept      json
// @Produce     json
// @Param       body body updateReq true "Fields to update"
// @Success     200 {object} profileResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/profile [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	p, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, response.NewErr(http.StatusInternalServerError, response.InternalServerErrorCode, response.DefaultErrorMessage))
		return
	}

	response.OK(c, h.newProfileResp(p))
}
