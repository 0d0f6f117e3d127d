package controller

import (
	"errors"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type StreamNoteController struct {
	NoteService *service.StreamNoteService
}

func NewStreamNoteController(noteService *service.StreamNoteService) *StreamNoteController {
	return &StreamNoteController{NoteService: noteService}
}

// @Summary 获取方向画布上的便签
// @Tags 便签
// @Produce json
// @Security BearerAuth
// @Param streamId query int true "方向ID"
// @Success 200 {object} util.Response
// @Router /api/stream-notes [get]
func (c *StreamNoteController) GetNotes(ctx *gin.Context) {
	streamID := util.MustParseUint(ctx.Query("streamId"))
	if streamID == 0 {
		util.BadRequest(ctx, "streamId is required")
		return
	}

	notes, err := c.NoteService.GetNotesByStream(streamID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, notes)
}

// @Summary 创建便签
// @Description 双击画布空白处创建，x/y 为画布坐标
// @Tags 便签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.StreamNote true "便签内容"
// @Success 201 {object} util.Response
// @Router /api/stream-notes [post]
func (c *StreamNoteController) CreateNote(ctx *gin.Context) {
	var note model.StreamNote
	if err := ctx.ShouldBindJSON(&note); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if note.StreamID == 0 {
		util.BadRequest(ctx, "streamId is required")
		return
	}

	if err := c.NoteService.CreateNote(&note); err != nil {
		if errors.Is(err, util.ErrStreamNotFound) {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, note)
}

// @Summary 更新便签
// @Description 支持拖拽后仅提交坐标
// @Tags 便签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "便签ID"
// @Param body body service.UpdateNoteInput true "更新字段"
// @Success 200 {object} util.Response
// @Router /api/stream-notes/{id} [put]
func (c *StreamNoteController) UpdateNote(ctx *gin.Context) {
	var input service.UpdateNoteInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	note, err := c.NoteService.UpdateNote(util.MustParseUint(ctx.Param("id")), &input)
	if err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, note)
}

// @Summary 删除便签
// @Tags 便签
// @Produce json
// @Security BearerAuth
// @Param id path int true "便签ID"
// @Success 200 {object} util.Response
// @Router /api/stream-notes/{id} [delete]
func (c *StreamNoteController) DeleteNote(ctx *gin.Context) {
	if err := c.NoteService.DeleteNote(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrEntryNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
