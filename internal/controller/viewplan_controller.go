package controller

import (
	"time"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ViewPlanController struct {
	ViewPlanService *service.ViewPlanService
}

func NewViewPlanController(viewPlanService *service.ViewPlanService) *ViewPlanController {
	return &ViewPlanController{ViewPlanService: viewPlanService}
}

// 日期参数缺省为今天
func (c *ViewPlanController) parseDate(ctx *gin.Context) (time.Time, bool) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		return util.Today(), true
	}
	date, err := util.ParseDate(dateStr)
	if err != nil {
		util.BadRequest(ctx, "invalid date, expected yyyy-mm-dd")
		return time.Time{}, false
	}
	return date, true
}

// @Summary 日视图计划
// @Description 指定日期的 DAILY 任务
// @Tags 视图计划
// @Produce json
// @Security BearerAuth
// @Param date query string false "日期 yyyy-mm-dd，缺省今天"
// @Success 200 {object} util.Response
// @Router /api/viewplan/daily [get]
func (c *ViewPlanController) GetDailyTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	date, ok := c.parseDate(ctx)
	if !ok {
		return
	}

	tasks, err := c.ViewPlanService.GetDailyTasks(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// @Summary 周视图计划
// @Description 指定日期所在周的 WEEKLY 任务
// @Tags 视图计划
// @Produce json
// @Security BearerAuth
// @Param date query string false "日期 yyyy-mm-dd，缺省今天"
// @Success 200 {object} util.Response
// @Router /api/viewplan/weekly [get]
func (c *ViewPlanController) GetWeeklyTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	date, ok := c.parseDate(ctx)
	if !ok {
		return
	}

	tasks, err := c.ViewPlanService.GetWeeklyTasks(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// @Summary 月视图计划
// @Description 指定日期所在自然月的 MONTHLY 任务
// @Tags 视图计划
// @Produce json
// @Security BearerAuth
// @Param date query string false "日期 yyyy-mm-dd，缺省今天"
// @Success 200 {object} util.Response
// @Router /api/viewplan/monthly [get]
func (c *ViewPlanController) GetMonthlyTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	date, ok := c.parseDate(ctx)
	if !ok {
		return
	}

	tasks, err := c.ViewPlanService.GetMonthlyTasks(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}
