package controller

import (
	"skillforge_backend/internal/model"
	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CourseController struct {
	CourseService *service.CourseService
}

func NewCourseController(courseService *service.CourseService) *CourseController {
	return &CourseController{CourseService: courseService}
}

func actorFrom(ctx *gin.Context) (userID string, isAdmin bool, ok bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return "", false, false
	}
	return claims.UserID, claims.Role == model.Admin, true
}

// List godoc
// @Summary List all courses
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Course}
// @Router /api/courses [get]
func (c *CourseController) List(ctx *gin.Context) {
	courses, err := c.CourseService.List()
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// Get godoc
// @Summary Get one course
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 404 {object} util.Response
// @Router /api/courses/{id} [get]
func (c *CourseController) Get(ctx *gin.Context) {
	course, err := c.CourseService.GetByID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Create godoc
// @Summary Create a course
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param body body service.CourseInput true "Course details"
// @Success 201 {object} util.Response{data=model.Course}
// @Failure 400 {object} util.Response
// @Router /api/teacher/courses [post]
func (c *CourseController) Create(ctx *gin.Context) {
	userID, _, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Create(userID, input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// Update godoc
// @Summary Update a course
// @Description Only the owning mentor or an admin may edit
// @Tags teacher
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param body body service.CourseInput true "Course details"
// @Success 200 {object} util.Response{data=model.Course}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/courses/{id} [put]
func (c *CourseController) Update(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	var input service.CourseInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	course, err := c.CourseService.Update(ctx.Param("id"), userID, isAdmin, input)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// Delete godoc
// @Summary Delete a course
// @Tags teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/courses/{id} [delete]
func (c *CourseController) Delete(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	if err := c.CourseService.Delete(ctx.Param("id"), userID, isAdmin); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UploadMaterial godoc
// @Summary Upload a course material
// @Description Accepts a multipart file; videos are probed for duration
// @Tags teacher
// @Accept multipart/form-data
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param file formData file true "Material file"
// @Param title formData string false "Display title"
// @Success 201 {object} util.Response{data=model.CourseMaterial}
// @Failure 400 {object} util.Response
// @Router /api/teacher/courses/{id}/materials [post]
func (c *CourseController) UploadMaterial(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	file, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	material, err := c.CourseService.UploadMaterial(ctx.Request.Context(), ctx.Param("id"), userID, isAdmin, file, ctx.PostForm("title"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Created(ctx, material)
}

// RemoveMaterial godoc
// @Summary Remove a course material
// @Tags teacher
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param materialId path string true "Material id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/teacher/courses/{id}/materials/{materialId} [delete]
func (c *CourseController) RemoveMaterial(ctx *gin.Context) {
	userID, isAdmin, ok := actorFrom(ctx)
	if !ok {
		return
	}

	if err := c.CourseService.RemoveMaterial(ctx.Param("id"), ctx.Param("materialId"), userID, isAdmin); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// MarkMaterialViewed godoc
// @Summary Mark a material as viewed
// @Description Idempotent; feeds the student's completion percentage
// @Tags courses
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Course id"
// @Param materialId path string true "Material id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/courses/{id}/materials/{materialId}/viewed [post]
func (c *CourseController) MarkMaterialViewed(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CourseService.MarkMaterialViewed(ctx.Param("id"), ctx.Param("materialId"), claims.UserID); err != nil {
		respondServiceError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
