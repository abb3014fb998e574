package controller

import (
	"strconv"

	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	ActivityService *service.ActivityService
	Hub             *service.NotifyHub
}

func NewActivityController(activityService *service.ActivityService, hub *service.NotifyHub) *ActivityController {
	return &ActivityController{
		ActivityService: activityService,
		Hub:             hub,
	}
}

// Recent godoc
// @Summary Recent platform activity
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Param limit query int false "Max entries, default 50"
// @Param type query string false "Filter by event type"
// @Success 200 {object} util.Response{data=[]model.ActivityLog}
// @Router /api/admin/activity [get]
func (c *ActivityController) Recent(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "50"))

	if activityType := ctx.Query("type"); activityType != "" {
		entries, err := c.ActivityService.RecentByType(activityType, limit)
		if err != nil {
			respondServiceError(ctx, err)
			return
		}
		util.Success(ctx, entries)
		return
	}

	entries, err := c.ActivityService.Recent(limit)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// Feed godoc
// @Summary Live activity feed
// @Description Upgrades to a websocket; pass the JWT via the token query parameter
// @Tags admin
// @Security ApiKeyAuth
// @Success 101 {string} string "Switching Protocols"
// @Router /api/activity/ws [get]
func (c *ActivityController) Feed(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	service.ServeFeed(c.Hub, ctx.Writer, ctx.Request, claims.UserID)
}
