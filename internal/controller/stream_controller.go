package controller

import (
	"errors"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreamController struct {
	StreamService *service.StreamService
}

func NewStreamController(streamService *service.StreamService) *StreamController {
	return &StreamController{StreamService: streamService}
}

// @Summary 获取学习方向列表
// @Tags 学习方向
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/streams [get]
func (c *StreamController) GetStreams(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	streams, err := c.StreamService.GetAllStreams(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, streams)
}

// @Summary 获取学习方向详情
// @Description 包含方向下全部任务
// @Tags 学习方向
// @Produce json
// @Security BearerAuth
// @Param id path int true "方向ID"
// @Success 200 {object} util.Response
// @Router /api/streams/{id} [get]
func (c *StreamController) GetStream(ctx *gin.Context) {
	stream, err := c.StreamService.GetStream(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrStreamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stream)
}

// @Summary 创建学习方向
// @Tags 学习方向
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "名称"
// @Success 201 {object} util.Response
// @Router /api/streams [post]
func (c *StreamController) CreateStream(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stream := &model.Stream{Name: req.Name}
	if err := c.StreamService.CreateStream(claims.UserID, stream); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, stream)
}

// @Summary 重命名学习方向
// @Description 任务通过外键关联方向，重命名后读取侧自动生效
// @Tags 学习方向
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "方向ID"
// @Param body body object true "名称"
// @Success 200 {object} util.Response
// @Router /api/streams/{id} [put]
func (c *StreamController) UpdateStream(ctx *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stream, err := c.StreamService.UpdateStream(util.MustParseUint(ctx.Param("id")), req.Name)
	if err != nil {
		if errors.Is(err, util.ErrStreamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, stream)
}

// @Summary 删除学习方向
// @Description 所属任务不随之删除，外键置空
// @Tags 学习方向
// @Produce json
// @Security BearerAuth
// @Param id path int true "方向ID"
// @Success 200 {object} util.Response
// @Router /api/streams/{id} [delete]
func (c *StreamController) DeleteStream(ctx *gin.Context) {
	if err := c.StreamService.DeleteStream(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrStreamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 获取方向完成统计
// @Description 按任务状态分组计数，完成率在无任务时为 0
// @Tags 学习方向
// @Produce json
// @Security BearerAuth
// @Param id path int true "方向ID"
// @Success 200 {object} util.Response
// @Router /api/streams/{id}/stats [get]
func (c *StreamController) GetStreamStats(ctx *gin.Context) {
	stats, err := c.StreamService.GetStreamStats(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrStreamNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// @Summary 获取全部方向的完成统计
// @Tags 学习方向
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/streams/stats [get]
func (c *StreamController) GetAllStreamStats(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	stats, err := c.StreamService.GetAllStreamStats(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}
