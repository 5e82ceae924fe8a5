package http

import (
	"github.com/gin-gonic/gin"

	"github.com/enesozmus/betterrest/pkg/response"
)

// Recommend godoc
// @Summary     Recommend a bedtime
// @Description Runs the pre-trained regression model against wake time, desired sleep, and coffee intake, and returns the recommended bedtime.
// @Tags        Sleep
// @Accept      json
// @Produce     json
// @Param       body body recommendReq true "Inputs"
// @Success     200  {object} recommendResp
// @Failure     400  {object} response.Resp "Bad Request - out-of-range or malformed input"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Prediction failure"
// @Router      /api/v1/sleep/recommendations [POST]
func (h *handler) Recommend(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecommendReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Recommend(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Recommend: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newRecommendResp(output))
}

// ModelInfo godoc
// @Summary     Model metadata
// @Description Describes the regression artifact currently serving predictions.
// @Tags        Sleep
// @Accept      json
// @Produce     json
// @Success     200 {object} modelResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/sleep/model [GET]
func (h *handler) ModelInfo(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ModelInfo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ModelInfo: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newModelResp(output))
}
