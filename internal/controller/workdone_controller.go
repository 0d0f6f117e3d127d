package controller

import (
	"errors"
	"time"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type WorkDoneController struct {
	WorkDoneService *service.WorkDoneService
}

func NewWorkDoneController(workDoneService *service.WorkDoneService) *WorkDoneController {
	return &WorkDoneController{WorkDoneService: workDoneService}
}

// @Summary 获取工作日志列表
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/workdone [get]
func (c *WorkDoneController) GetEntries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	entries, err := c.WorkDoneService.GetAllEntries(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 获取单条工作日志
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Param id path int true "日志ID"
// @Success 200 {object} util.Response
// @Router /api/workdone/{id} [get]
func (c *WorkDoneController) GetEntry(ctx *gin.Context) {
	entry, err := c.WorkDoneService.GetEntry(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// @Summary 按日期获取工作日志
// @Description 当天没有记录时返回空数据而非 404，前端据此渲染空白模板
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Param date path string true "日期 yyyy-mm-dd"
// @Success 200 {object} util.Response
// @Router /api/workdone/date/{date} [get]
func (c *WorkDoneController) GetEntryByDate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	date, err := util.ParseDate(ctx.Param("date"))
	if err != nil {
		util.BadRequest(ctx, "invalid date, expected yyyy-mm-dd")
		return
	}

	entry, err := c.WorkDoneService.GetEntryByDate(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if entry == nil {
		// 当天无记录时返回空白模板，前端直接渲染可编辑表单
		entry = &model.WorkDoneEntry{
			UserID:            claims.UserID,
			Date:              util.TruncateDate(date),
			DayOfWeek:         date.Weekday().String(),
			Items:             []model.WorkDoneItem{},
			SatisfactionLevel: 3,
		}
	}
	util.Success(ctx, entry)
}

// @Summary 获取一周的工作日志
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Param startDate query string true "周起始日期 yyyy-mm-dd"
// @Success 200 {object} util.Response
// @Router /api/workdone/week [get]
func (c *WorkDoneController) GetWeekEntries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	start, err := util.ParseDate(ctx.Query("startDate"))
	if err != nil {
		util.BadRequest(ctx, "invalid startDate, expected yyyy-mm-dd")
		return
	}

	entries, err := c.WorkDoneService.GetWeekEntries(claims.UserID, start)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 创建工作日志
// @Description 总积分按条目积分之和重算，忽略调用方传入的值
// @Tags 工作日志
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.WorkDoneEntry true "日志内容"
// @Success 201 {object} util.Response
// @Router /api/workdone [post]
func (c *WorkDoneController) CreateEntry(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var entry model.WorkDoneEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.WorkDoneService.CreateEntry(claims.UserID, &entry); err != nil {
		if errors.Is(err, util.ErrInvalidRating) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// @Summary 更新工作日志
// @Description 条目列表整体替换，总积分重算
// @Tags 工作日志
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "日志ID"
// @Param body body model.WorkDoneEntry true "日志内容"
// @Success 200 {object} util.Response
// @Router /api/workdone/{id} [put]
func (c *WorkDoneController) UpdateEntry(ctx *gin.Context) {
	var input model.WorkDoneEntry
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.WorkDoneService.UpdateEntry(util.MustParseUint(ctx.Param("id")), &input)
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		if errors.Is(err, util.ErrInvalidRating) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// @Summary 删除工作日志
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Param id path int true "日志ID"
// @Success 200 {object} util.Response
// @Router /api/workdone/{id} [delete]
func (c *WorkDoneController) DeleteEntry(ctx *gin.Context) {
	if err := c.WorkDoneService.DeleteEntry(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 获取积分概览
// @Description 总积分与滚动近 7 天积分，附最近 10 条日志明细
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/workdone/points/summary [get]
func (c *WorkDoneController) GetPointsSummary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	summary, err := c.WorkDoneService.GetPointsSummary(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// @Summary 获取周满意度
// @Description 周一到周日 7 个槽位，无记录的日子 hasEntry=false
// @Tags 工作日志
// @Produce json
// @Security BearerAuth
// @Param startDate query string false "周起始日期 yyyy-mm-dd，缺省为本周一"
// @Success 200 {object} util.Response
// @Router /api/workdone/satisfaction/weekly [get]
func (c *WorkDoneController) GetWeeklySatisfaction(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var weekStart *time.Time
	if startStr := ctx.Query("startDate"); startStr != "" {
		start, err := util.ParseDate(startStr)
		if err != nil {
			util.BadRequest(ctx, "invalid startDate, expected yyyy-mm-dd")
			return
		}
		weekStart = &start
	}

	data, err := c.WorkDoneService.GetWeeklySatisfaction(claims.UserID, weekStart)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, data)
}
