package controller

import (
	"skillforge_backend/internal/model"
	"skillforge_backend/internal/quiz"
	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService       *service.QuizService
	AssignmentService *service.AssignmentService
}

func NewQuizController(quizService *service.QuizService, assignmentService *service.AssignmentService) *QuizController {
	return &QuizController{
		QuizService:       quizService,
		AssignmentService: assignmentService,
	}
}

// Create godoc
// @Summary Create a quiz
// @Description Questions are validated as a set; the quiz needs at least one
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.QuizInput true "Quiz details"
// @Success 201 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /api/teacher/quizzes [post]
func (c *QuizController) Create(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var input service.QuizInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.Create(userID, isAdmin, input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, q)
}

// Get godoc
// @Summary Get one quiz
// @Description Students receive the quiz with the answer key stripped
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/quizzes/{id} [get]
func (c *QuizController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	q, err := c.QuizService.GetByID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	if claims.Role == model.Student {
		assigned, err := c.AssignmentService.IsAssigned(q.ID, claims.UserID)
		if err != nil {
			respondServiceError(ctx, err)
			return
		}
		if !assigned {
			util.Error(ctx, 403, util.ErrQuizNotAssigned.Error())
			return
		}
		util.Success(ctx, service.StripAnswers(q))
		return
	}

	util.Success(ctx, q)
}

// ListByCourse godoc
// @Summary List a course's quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Param courseId path string true "Course id"
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/courses/{courseId}/quizzes [get]
func (c *QuizController) ListByCourse(ctx *gin.Context) {
	quizzes, err := c.QuizService.ListByCourse(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims != nil && claims.Role == model.Student {
		stripped := make([]*model.Quiz, len(quizzes))
		for i := range quizzes {
			stripped[i] = service.StripAnswers(&quizzes[i])
		}
		util.Success(ctx, stripped)
		return
	}
	util.Success(ctx, quizzes)
}

// ListAssigned godoc
// @Summary The student's assigned quizzes
// @Tags quizzes
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Quiz}
// @Router /api/quizzes/assigned [get]
func (c *QuizController) ListAssigned(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quizzes, err := c.AssignmentService.AssignedQuizzes(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	stripped := make([]*model.Quiz, len(quizzes))
	for i := range quizzes {
		stripped[i] = service.StripAnswers(&quizzes[i])
	}
	util.Success(ctx, stripped)
}

type UpdateQuizRequest struct {
	Title string `json:"title" binding:"required"`
}

// Update godoc
// @Summary Rename a quiz
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param body body UpdateQuizRequest true "New title"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/teacher/quizzes/{id} [put]
func (c *QuizController) Update(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req UpdateQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.UpdateTitle(ctx.Param("id"), userID, isAdmin, req.Title)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// Delete godoc
// @Summary Delete a quiz
// @Tags teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/quizzes/{id} [delete]
func (c *QuizController) Delete(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	if err := c.QuizService.Delete(ctx.Param("id"), userID, isAdmin); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// AddQuestion godoc
// @Summary Append a question
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param body body quiz.Question true "Question"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions [post]
func (c *QuizController) AddQuestion(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var question quiz.Question
	if err := ctx.ShouldBindJSON(&question); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.AddQuestion(ctx.Param("id"), userID, isAdmin, question)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// RemoveQuestion godoc
// @Summary Remove a question
// @Tags teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param questionId path string true "Question id"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 404 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions/{questionId} [delete]
func (c *QuizController) RemoveQuestion(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	q, err := c.QuizService.RemoveQuestion(ctx.Param("id"), ctx.Param("questionId"), userID, isAdmin)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

type ReorderRequest struct {
	Order []string `json:"order" binding:"required"`
}

// ReorderQuestions godoc
// @Summary Reorder the question sequence
// @Description The order list must be an exact permutation of the current question ids
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param body body ReorderRequest true "New id order"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions/order [put]
func (c *QuizController) ReorderQuestions(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req ReorderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	q, err := c.QuizService.ReorderQuestions(ctx.Param("id"), userID, isAdmin, req.Order)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

// QuestionPatchRequest mirrors quiz.QuestionPatch for binding; nil fields
// are left unchanged.
type QuestionPatchRequest struct {
	Kind          *string   `json:"type"`
	Text          *string   `json:"question"`
	Options       *[]string `json:"options"`
	CorrectAnswer *string   `json:"correctAnswer"`
	Points        *int      `json:"points"`
}

// UpdateQuestion godoc
// @Summary Patch one question
// @Description Absent fields keep their value; the merged question is re-validated
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param questionId path string true "Question id"
// @Param body body QuestionPatchRequest true "Partial question"
// @Success 200 {object} util.Response{data=model.Quiz}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/quizzes/{id}/questions/{questionId} [put]
func (c *QuizController) UpdateQuestion(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req QuestionPatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	patch := quiz.QuestionPatch{
		Text:          req.Text,
		Options:       req.Options,
		CorrectAnswer: req.CorrectAnswer,
		Points:        req.Points,
	}
	if req.Kind != nil {
		kind := quiz.QuestionKind(*req.Kind)
		patch.Kind = &kind
	}

	q, err := c.QuizService.UpdateQuestion(ctx.Param("id"), ctx.Param("questionId"), userID, isAdmin, patch)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, q)
}

type AssignRequest struct {
	StudentIDs []string `json:"studentIds" binding:"required"`
}

// Assign godoc
// @Summary Assign a quiz to students
// @Description Best-effort bulk operation; already-assigned students are skipped and bad ids reported
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Param body body AssignRequest true "Student ids"
// @Success 200 {object} util.Response{data=service.BulkResult}
// @Failure 404 {object} util.Response
// @Router /api/teacher/quizzes/{id}/assignments [post]
func (c *QuizController) Assign(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var req AssignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssignmentService.AssignBulk(ctx.Param("id"), userID, isAdmin, req.StudentIDs)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, result)
}

// Assignments godoc
// @Summary List a quiz's assignments
// @Tags teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Quiz id"
// @Success 200 {object} util.Response{data=[]model.QuizAssignment}
// @Router /api/teacher/quizzes/{id}/assignments [get]
func (c *QuizController) Assignments(ctx *gin.Context) {
	assignments, err := c.AssignmentService.StudentsForQuiz(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, assignments)
}
