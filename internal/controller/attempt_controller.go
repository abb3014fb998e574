package controller

import (
	"skillforge_backend/internal/model"
	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AttemptController struct {
	AttemptService *service.AttemptService
}

func NewAttemptController(attemptService *service.AttemptService) *AttemptController {
	return &AttemptController{AttemptService: attemptService}
}

type SubmitAttemptRequest struct {
	Answers map[string]string `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary Submit a quiz attempt
// @Description Scores server-side; the quiz must be assigned to the caller. Every submission is kept.
// @Tags quizzes
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param body body SubmitAttemptRequest true "Answers keyed by question id"
// @Success 201 {object} util.Response{data=model.QuizAttempt}
// @Failure 403 {object} util.Response "Quiz not assigned"
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id}/attempts [post]
func (c *AttemptController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AttemptService.Submit(ctx.Param("id"), claims.UserID, req.Answers)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, attempt)
}

// MyAttempts godoc
// @Summary The caller's attempts
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/attempts/my [get]
func (c *AttemptController) MyAttempts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempts, err := c.AttemptService.ListByStudent(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// Get godoc
// @Summary Get one attempt
// @Description Students may only read their own attempts
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attempt id"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 404 {object} util.Response
// @Router /api/attempts/{id} [get]
func (c *AttemptController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	attempt, err := c.AttemptService.GetByID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if claims.Role == model.Student && attempt.StudentID != claims.UserID {
		util.Forbidden(ctx)
		return
	}
	util.Success(ctx, attempt)
}

// ListByQuiz godoc
// @Summary List a quiz's attempts
// @Tags teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response{data=[]model.QuizAttempt}
// @Router /api/teacher/quizzes/{id}/attempts [get]
func (c *AttemptController) ListByQuiz(ctx *gin.Context) {
	attempts, err := c.AttemptService.ListByQuiz(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, attempts)
}

// Grade godoc
// @Summary Override an attempt's score
// @Description The override must lie between 0 and the attempt's total points; regrading replaces the previous overlay
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Attempt id"
// @Param body body service.GradeInput true "Override and feedback"
// @Success 200 {object} util.Response{data=model.QuizAttempt}
// @Failure 400 {object} util.Response "Override out of bounds"
// @Failure 404 {object} util.Response
// @Router /api/teacher/attempts/{id}/grade [post]
func (c *AttemptController) Grade(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.GradeInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.AttemptService.Grade(ctx.Param("id"), claims.UserID, input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, attempt)
}
