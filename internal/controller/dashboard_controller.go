package controller

import (
	"skillforge_backend/internal/repository"
	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	ReportService *service.ReportService
	UserRepo      *repository.UserRepository
	CourseRepo    *repository.CourseRepository
	QuizRepo      *repository.QuizRepository
	AttemptRepo   *repository.AttemptRepository
}

func NewDashboardController(reportService *service.ReportService, userRepo *repository.UserRepository, courseRepo *repository.CourseRepository, quizRepo *repository.QuizRepository, attemptRepo *repository.AttemptRepository) *DashboardController {
	return &DashboardController{
		ReportService: reportService,
		UserRepo:      userRepo,
		CourseRepo:    courseRepo,
		QuizRepo:      quizRepo,
		AttemptRepo:   attemptRepo,
	}
}

// Student godoc
// @Summary Student dashboard
// @Description Average effective score percent, per-course material completion and attempt counts
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.StudentDashboard}
// @Router /api/dashboard/student [get]
func (c *DashboardController) Student(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dash, err := c.ReportService.StudentDashboard(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}

// Mentor godoc
// @Summary Mentor dashboard
// @Description Per-quiz attempt counts, ungraded backlog and average effective scores
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.MentorDashboard}
// @Router /api/teacher/dashboard [get]
func (c *DashboardController) Mentor(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	dash, err := c.ReportService.MentorDashboard(claims.UserID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}

// Admin godoc
// @Summary Admin dashboard
// @Description Platform-wide counters
// @Tags dashboard
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=service.AdminDashboard}
// @Router /api/admin/dashboard [get]
func (c *DashboardController) Admin(ctx *gin.Context) {
	dash, err := service.AdminDashboardCounts(c.UserRepo, c.CourseRepo, c.QuizRepo, c.AttemptRepo)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, dash)
}
