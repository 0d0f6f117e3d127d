package controller

import (
	"errors"
	"strconv"
	"time"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	CalendarService *service.CalendarService
}

func NewCalendarController(calendarService *service.CalendarService) *CalendarController {
	return &CalendarController{CalendarService: calendarService}
}

// @Summary 标记学习日
// @Description 同一天重复标记时覆盖
// @Tags 日历
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "date、studied"
// @Success 200 {object} util.Response
// @Router /api/calendar [post]
func (c *CalendarController) MarkDay(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Date    string `json:"date"`
		Studied bool   `json:"studied"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	date := util.Today()
	if req.Date != "" {
		var err error
		date, err = util.ParseDate(req.Date)
		if err != nil {
			util.BadRequest(ctx, "invalid date, expected yyyy-mm-dd")
			return
		}
	}

	entry, err := c.CalendarService.MarkDay(claims.UserID, date, req.Studied)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entry)
}

// @Summary 获取某月日历
// @Tags 日历
// @Produce json
// @Security BearerAuth
// @Param year query int true "年份"
// @Param month query int true "月份 1-12"
// @Success 200 {object} util.Response
// @Router /api/calendar [get]
func (c *CalendarController) GetMonth(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	year, err := strconv.Atoi(ctx.Query("year"))
	if err != nil {
		util.BadRequest(ctx, "invalid year")
		return
	}
	month, err := strconv.Atoi(ctx.Query("month"))
	if err != nil || month < 1 || month > 12 {
		util.BadRequest(ctx, "invalid month")
		return
	}

	entries, err := c.CalendarService.GetMonth(claims.UserID, year, time.Month(month))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 获取已学习日期列表
// @Description 全部 studied=true 的日期，yyyy-mm-dd 字符串数组
// @Tags 日历
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/calendar/studied-days [get]
func (c *CalendarController) GetStudiedDays(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dates, err := c.CalendarService.GetStudiedDates(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, dates)
}

// @Summary 获取某天的打点
// @Tags 日历
// @Produce json
// @Security BearerAuth
// @Param date path string true "日期 yyyy-mm-dd"
// @Success 200 {object} util.Response
// @Router /api/calendar/{date} [get]
func (c *CalendarController) GetDay(ctx *gin.Context) {
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

	entry, err := c.CalendarService.GetDay(claims.UserID, date)
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
