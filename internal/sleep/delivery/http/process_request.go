package http

import (
	"github.com/gin-gonic/gin"
)

// processRecommendReq binds and validates the recommendation request body.
func (h *handler) processRecommendReq(c *gin.Context) (recommendReq, error) {
	var req recommendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
