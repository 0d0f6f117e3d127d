package controller

import (
	"errors"
	"strconv"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MoodController struct {
	MoodService *service.MoodService
}

func NewMoodController(moodService *service.MoodService) *MoodController {
	return &MoodController{MoodService: moodService}
}

// @Summary 获取情绪记录列表
// @Description 支持 days 参数只取最近 N 天
// @Tags 情绪
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/mood [get]
func (c *MoodController) GetEntries(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if daysStr := ctx.Query("days"); daysStr != "" {
		days, err := strconv.Atoi(daysStr)
		if err != nil || days <= 0 {
			util.BadRequest(ctx, "invalid days")
			return
		}
		entries, err := c.MoodService.GetRecentEntries(claims.UserID, days)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, entries)
		return
	}

	entries, err := c.MoodService.GetAllEntries(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 获取某天的情绪记录
// @Tags 情绪
// @Produce json
// @Security BearerAuth
// @Param date path string true "日期 yyyy-mm-dd"
// @Success 200 {object} util.Response
// @Router /api/mood/date/{date} [get]
func (c *MoodController) GetEntriesByDate(ctx *gin.Context) {
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

	entries, err := c.MoodService.GetEntriesByDate(claims.UserID, date)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, entries)
}

// @Summary 获取单条情绪记录
// @Tags 情绪
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/mood/{id} [get]
func (c *MoodController) GetEntry(ctx *gin.Context) {
	entry, err := c.MoodService.GetEntry(util.MustParseUint(ctx.Param("id")))
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

// @Summary 创建情绪记录
// @Description mood/energy/motivation 均为 1-5
// @Tags 情绪
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.MoodEntry true "记录内容"
// @Success 201 {object} util.Response
// @Router /api/mood [post]
func (c *MoodController) CreateEntry(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var entry model.MoodEntry
	if err := ctx.ShouldBindJSON(&entry); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MoodService.CreateEntry(claims.UserID, &entry); err != nil {
		if errors.Is(err, util.ErrInvalidRating) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, entry)
}

// @Summary 更新情绪记录
// @Tags 情绪
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Param body body service.UpdateMoodInput true "更新字段"
// @Success 200 {object} util.Response
// @Router /api/mood/{id} [put]
func (c *MoodController) UpdateEntry(ctx *gin.Context) {
	var input service.UpdateMoodInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	entry, err := c.MoodService.UpdateEntry(util.MustParseUint(ctx.Param("id")), &input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEntryNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrInvalidRating):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, entry)
}

// @Summary 删除情绪记录
// @Tags 情绪
// @Produce json
// @Security BearerAuth
// @Param id path int true "记录ID"
// @Success 200 {object} util.Response
// @Router /api/mood/{id} [delete]
func (c *MoodController) DeleteEntry(ctx *gin.Context) {
	if err := c.MoodService.DeleteEntry(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
