package controller

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"walkalong_backend/internal/model"
	"walkalong_backend/internal/service"
	"walkalong_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// 单个作答 PDF 的大小上限
const maxPdfSize = 20 << 20

type AnswerController struct {
	AnswerService *service.AnswerService
}

func NewAnswerController(answerService *service.AnswerService) *AnswerController {
	return &AnswerController{AnswerService: answerService}
}

// @Summary 获取题目列表
// @Tags 答题练习
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/answers/questions [get]
func (c *AnswerController) GetQuestions(ctx *gin.Context) {
	questions, err := c.AnswerService.GetAllQuestions()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// @Summary 创建题目
// @Tags 答题练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.AnswerQuestion true "题目内容"
// @Success 201 {object} util.Response
// @Router /api/answers/questions [post]
func (c *AnswerController) CreateQuestion(ctx *gin.Context) {
	var q model.AnswerQuestion
	if err := ctx.ShouldBindJSON(&q); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if q.Text == "" {
		util.BadRequest(ctx, "text is required")
		return
	}

	if err := c.AnswerService.CreateQuestion(&q); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// @Summary 删除题目
// @Tags 答题练习
// @Produce json
// @Security BearerAuth
// @Param id path int true "题目ID"
// @Success 200 {object} util.Response
// @Router /api/answers/questions/{id} [delete]
func (c *AnswerController) DeleteQuestion(ctx *gin.Context) {
	if err := c.AnswerService.DeleteQuestion(util.MustParseUint(ctx.Param("id"))); err != nil {
		if errors.Is(err, util.ErrQuestionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary 提交作答
// @Description multipart 上传 PDF，表单字段：file、questionId、timeTaken、parentSubmissionId（重写时）
// @Tags 答题练习
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "作答 PDF"
// @Param questionId formData int true "题目ID"
// @Success 201 {object} util.Response
// @Router /api/answers/submissions [post]
func (c *AnswerController) SubmitAnswer(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questionID := util.MustParseUint(ctx.PostForm("questionId"))
	if questionID == 0 {
		util.BadRequest(ctx, "questionId is required")
		return
	}

	timeTaken, _ := strconv.Atoi(ctx.PostForm("timeTaken"))

	var parentID *uint
	if parentStr := ctx.PostForm("parentSubmissionId"); parentStr != "" {
		id := util.MustParseUint(parentStr)
		parentID = &id
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	if fileHeader.Size > maxPdfSize {
		util.BadRequest(ctx, fmt.Sprintf("file too large, max %d bytes", maxPdfSize))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	mimeType, err := util.SniffMimeType(file)
	if err != nil || !util.IsPDF(mimeType) {
		util.BadRequest(ctx, "only PDF files are accepted")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	submission, err := c.AnswerService.SubmitAnswer(
		ctx.Request.Context(), claims.UserID, questionID, file, fileHeader.Size, timeTaken, parentID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrQuestionNotFound), errors.Is(err, util.ErrSubmissionNotFound):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, submission)
}

// @Summary 获取提交列表
// @Tags 答题练习
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/answers/submissions [get]
func (c *AnswerController) GetSubmissions(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	submissions, err := c.AnswerService.GetSubmissions(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submissions)
}

// @Summary 获取单次提交
// @Tags 答题练习
// @Produce json
// @Security BearerAuth
// @Param id path int true "提交ID"
// @Success 200 {object} util.Response
// @Router /api/answers/submissions/{id} [get]
func (c *AnswerController) GetSubmission(ctx *gin.Context) {
	submission, err := c.AnswerService.GetSubmission(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, submission)
}

// @Summary 下载作答 PDF
// @Tags 答题练习
// @Produce application/pdf
// @Security BearerAuth
// @Param id path int true "提交ID"
// @Success 200 {file} binary
// @Router /api/answers/submissions/{id}/pdf [get]
func (c *AnswerController) DownloadPdf(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	reader, err := c.AnswerService.OpenPdf(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, util.ErrSubmissionNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	defer reader.Close()

	ctx.Header("Content-Disposition", fmt.Sprintf("inline; filename=submission-%d.pdf", id))
	ctx.Header("Content-Type", util.MimePDF)
	io.Copy(ctx.Writer, reader)
}

// @Summary 提交批改
// @Description 每个提交只接受一次批改，重复批改返回 409
// @Tags 答题练习
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "提交ID"
// @Param body body service.SubmitReviewInput true "批改内容"
// @Success 201 {object} util.Response
// @Router /api/answers/submissions/{id}/review [post]
func (c *AnswerController) SubmitReview(ctx *gin.Context) {
	var input service.SubmitReviewInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	review, err := c.AnswerService.SubmitReview(util.MustParseUint(ctx.Param("id")), &input)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSubmissionNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAlreadyReviewed):
			util.Conflict(ctx, err.Error())
		case errors.Is(err, util.ErrInvalidScore):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, review)
}

// @Summary 获取批改结果
// @Tags 答题练习
// @Produce json
// @Security BearerAuth
// @Param id path int true "提交ID"
// @Success 200 {object} util.Response
// @Router /api/answers/submissions/{id}/review [get]
func (c *AnswerController) GetReview(ctx *gin.Context) {
	review, err := c.AnswerService.GetReview(util.MustParseUint(ctx.Param("id")))
	if err != nil {
		if errors.Is(err, util.ErrReviewNotFound) {
			util.NotFound(ctx)
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, review)
}
