package controller

import (
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	DashboardService  *service.DashboardService
	StreamService     *service.StreamService
	MotivationService *service.MotivationService
}

func NewDashboardController(
	dashboardService *service.DashboardService,
	streamService *service.StreamService,
	motivationService *service.MotivationService,
) *DashboardController {
	return &DashboardController{
		DashboardService:  dashboardService,
		StreamService:     streamService,
		MotivationService: motivationService,
	}
}

// @Summary 获取复习提醒
// @Description 复习日在 3 天内（含逾期）的任务，按临近程度升序取前 5 条
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/dashboard/revision-reminders [get]
func (c *DashboardController) GetRevisionReminders(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	reminders, err := c.DashboardService.GetRevisionReminders(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reminders)
}

// @Summary 获取仪表盘首页数据
// @Description 今日任务、方向完成率、激励短句与已学习天数的聚合
// @Tags 仪表盘
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/dashboard [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	todayTasks, err := c.DashboardService.GetTodayTasks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	streamStats, err := c.StreamService.GetAllStreamStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	reminders, err := c.DashboardService.GetRevisionReminders(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	studiedDays, err := c.DashboardService.GetStudiedDays(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	// 激励短句取不到时不阻塞首页
	motivation, _ := c.MotivationService.GetCurrentMotivation(ctx.Request.Context())

	util.Success(ctx, gin.H{
		"todayTasks":        todayTasks,
		"streamStats":       streamStats,
		"revisionReminders": reminders,
		"studiedDays":       studiedDays,
		"motivation":        motivation,
	})
}
