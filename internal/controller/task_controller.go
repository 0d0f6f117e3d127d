package controller

import (
	"errors"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TaskController struct {
	TaskService *service.TaskService
}

func NewTaskController(taskService *service.TaskService) *TaskController {
	return &TaskController{TaskService: taskService}
}

// @Summary 获取任务列表
// @Description 当前用户的全部学习任务，按分配日期降序，支持按 date、status、streamId 过滤
// @Tags 任务
// @Produce json
// @Security BearerAuth
// @Param date query string false "分配日期 yyyy-mm-dd"
// @Param status query string false "任务状态"
// @Param streamId query int false "学习方向ID"
// @Success 200 {object} util.Response
// @Router /api/tasks [get]
func (c *TaskController) GetTasks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if dateStr := ctx.Query("date"); dateStr != "" {
		date, err := util.ParseDate(dateStr)
		if err != nil {
			util.BadRequest(ctx, "invalid date, expected yyyy-mm-dd")
			return
		}
		tasks, err := c.TaskService.GetTasksByDate(claims.UserID, date)
		if err != nil {
			util.LogInternalError(ctx, err)
			return
		}
		util.Success(ctx, tasks)
		return
	}

	status := model.TaskStatus(ctx.Query("status"))
	var streamID uint
	if idStr := ctx.Query("streamId"); idStr != "" {
		streamID = util.MustParseUint(idStr)
	}

	tasks, err := c.TaskService.GetFilteredTasks(claims.UserID, status, streamID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tasks)
}

// @Summary 获取单个任务
// @Tags 任务
// @Produce json
// @Security BearerAuth
// @Param id path int true "任务ID"
// @Success 200 {object} util.Response
// @Router /api/tasks/{id} [get]
func (c *TaskController) GetTask(ctx *gin.Context) {
	task, err := c.TaskService.GetTask(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// @Summary 创建任务
// @Description 新任务状态固定为 PENDING，分配日期缺省为今天
// @Tags 任务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.LearningTask true "任务内容"
// @Success 201 {object} util.Response
// @Router /api/tasks [post]
func (c *TaskController) CreateTask(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var task model.LearningTask
	if err := ctx.ShouldBindJSON(&task); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if task.Title == "" {
		util.BadRequest(ctx, "title is required")
		return
	}

	if err := c.TaskService.CreateTask(claims.UserID, &task); err != nil {
		if errors.Is(err, util.ErrStreamNotFound) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, task)
}

// @Summary 更新任务
// @Description 按字段合并更新，已完成的任务拒绝编辑
// @Tags 任务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "任务ID"
// @Param body body service.UpdateTaskInput true "更新字段"
// @Success 200 {object} util.Response
// @Router /api/tasks/{id} [put]
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	var input service.UpdateTaskInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.UpdateTask(util.MustParseUint(ctx.Param("id")), &input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrTaskNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrTaskCompleted):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrStreamNotFound):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, task)
}

// @Summary 更新任务状态
// @Description 状态切到 COMPLETED 时写入完成日期，切回其他状态时清空
// @Tags 任务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "任务ID"
// @Param body body object true "status"
// @Success 200 {object} util.Response
// @Router /api/tasks/{id}/status [patch]
func (c *TaskController) UpdateStatus(ctx *gin.Context) {
	var req struct {
		Status model.TaskStatus `json:"status" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	switch req.Status {
	case model.TaskPending, model.TaskCompleted, model.TaskSkipped:
	default:
		util.BadRequest(ctx, "invalid status")
		return
	}

	task, err := c.TaskService.UpdateStatus(util.MustParseUint(ctx.Param("id")), req.Status)
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// @Summary 上报秒表时长
// @Description 秒表暂停后把本次累计的秒数累加到任务上
// @Tags 任务
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "任务ID"
// @Param body body object true "seconds"
// @Success 200 {object} util.Response
// @Router /api/tasks/{id}/stopwatch [patch]
func (c *TaskController) AddStopwatchTime(ctx *gin.Context) {
	var req struct {
		Seconds int `json:"seconds" binding:"required,min=1"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	task, err := c.TaskService.AddStopwatchTime(util.MustParseUint(ctx.Param("id")), req.Seconds)
	if err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, task)
}

// @Summary 删除任务
// @Tags 任务
// @Produce json
// @Security BearerAuth
// @Param id path int true "任务ID"
// @Success 200 {object} util.Response
// @Router /api/tasks/{id} [delete]
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	if err := c.TaskService.DeleteTask(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrTaskNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
