package controller

import (
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MotivationController struct {
	MotivationService *service.MotivationService
}

func NewMotivationController(motivationService *service.MotivationService) *MotivationController {
	return &MotivationController{MotivationService: motivationService}
}

// @Summary 获取当前显示的激励短句
// @Tags 激励短句
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/motivation [get]
func (c *MotivationController) GetCurrentMotivation(ctx *gin.Context) {
	motivation, err := c.MotivationService.GetCurrentMotivation(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"content": motivation})
}

// @Summary 获取所有激励短句
// @Description 管理员权限
// @Tags 激励短句
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/motivations [get]
func (c *MotivationController) GetAllMotivations(ctx *gin.Context) {
	motivations, err := c.MotivationService.GetAllMotivations()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, motivations)
}

// @Summary 创建激励短句
// @Description 管理员权限
// @Tags 激励短句
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body object true "内容"
// @Success 200 {object} util.Response
// @Router /api/admin/motivations [post]
func (c *MotivationController) CreateMotivation(ctx *gin.Context) {
	var req struct {
		Content string `json:"content" binding:"required,min=4,max=200"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.MotivationService.CreateMotivation(req.Content); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "激励短句创建成功"})
}

// @Summary 更新激励短句
// @Description 管理员权限
// @Tags 激励短句
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "短句ID"
// @Param body body object true "内容与启用状态"
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id} [put]
func (c *MotivationController) UpdateMotivation(ctx *gin.Context) {
	var req struct {
		Content   string `json:"content" binding:"required,min=4,max=200"`
		IsEnabled bool   `json:"isEnabled"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	id := util.MustParseUint(ctx.Param("id"))
	if err := c.MotivationService.UpdateMotivation(ctx.Request.Context(), id, req.Content, req.IsEnabled); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "激励短句更新成功"})
}

// @Summary 删除激励短句
// @Description 管理员权限
// @Tags 激励短句
// @Produce json
// @Security BearerAuth
// @Param id path int true "短句ID"
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id} [delete]
func (c *MotivationController) DeleteMotivation(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.MotivationService.DeleteMotivation(ctx.Request.Context(), id); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "激励短句删除成功"})
}

// @Summary 立即切换激励短句
// @Description 管理员权限
// @Tags 激励短句
// @Produce json
// @Security BearerAuth
// @Param id path int true "短句ID"
// @Success 200 {object} util.Response
// @Router /api/admin/motivations/{id}/switch [post]
func (c *MotivationController) SwitchToMotivation(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if err := c.MotivationService.SwitchToMotivation(ctx.Request.Context(), id); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"message": "切换成功"})
}
