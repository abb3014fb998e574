package app

import (
	"skillforge_backend/docs"
	"skillforge_backend/internal/config"
	"skillforge_backend/internal/middleware"
	"skillforge_backend/internal/model"
	"skillforge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	a.registerPublicRoutes(router, c)

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerStudentRoutes(authGroup, c)
		a.registerTeacherRoutes(authGroup, c)
		a.registerAdminRoutes(authGroup, c)
	}
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}
}

func (a *App) registerStudentRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/profile", c.auth.GetProfile)
	rg.PUT("/user/profile", c.auth.UpdateProfile)

	// Courses are readable by every authenticated role.
	rg.GET("/courses", c.course.List)
	rg.GET("/courses/:id", c.course.Get)
	rg.GET("/courses/:id/quizzes", c.quiz.ListByCourse)
	rg.POST("/courses/:id/materials/:materialId/viewed", c.course.MarkMaterialViewed)

	rg.GET("/quizzes/assigned", c.quiz.ListAssigned)
	rg.GET("/quizzes/:id", c.quiz.Get)
	rg.POST("/quizzes/:id/attempts", middleware.RoleMiddleware(model.Student), c.attempt.Submit)

	rg.GET("/attempts/my", c.attempt.MyAttempts)
	rg.GET("/attempts/:id", c.attempt.Get)

	rg.GET("/dashboard/student", middleware.RoleMiddleware(model.Student), c.dashboard.Student)
}

func (a *App) registerTeacherRoutes(rg *gin.RouterGroup, c *controllers) {
	teacher := rg.Group("/teacher")
	teacher.Use(middleware.RoleMiddleware(model.Mentor))
	{
		teacher.GET("/students", c.user.ListStudents)

		teacher.POST("/courses", c.course.Create)
		teacher.PUT("/courses/:id", c.course.Update)
		teacher.DELETE("/courses/:id", c.course.Delete)
		teacher.POST("/courses/:id/materials", c.course.UploadMaterial)
		teacher.DELETE("/courses/:id/materials/:materialId", c.course.RemoveMaterial)

		teacher.POST("/quizzes", c.quiz.Create)
		teacher.PUT("/quizzes/:id", c.quiz.Update)
		teacher.DELETE("/quizzes/:id", c.quiz.Delete)
		teacher.POST("/quizzes/:id/questions", c.quiz.AddQuestion)
		teacher.PUT("/quizzes/:id/questions/order", c.quiz.ReorderQuestions)
		teacher.PUT("/quizzes/:id/questions/:questionId", c.quiz.UpdateQuestion)
		teacher.DELETE("/quizzes/:id/questions/:questionId", c.quiz.RemoveQuestion)

		teacher.POST("/quizzes/:id/assignments", c.quiz.Assign)
		teacher.GET("/quizzes/:id/assignments", c.quiz.Assignments)
		teacher.GET("/quizzes/:id/attempts", c.attempt.ListByQuiz)
		teacher.POST("/attempts/:id/grade", c.attempt.Grade)

		teacher.GET("/dashboard", c.dashboard.Mentor)
	}

	// The live feed serves mentors and admins.
	rg.GET("/activity/ws", middleware.RoleMiddleware(model.Mentor), c.activity.Feed)
}

func (a *App) registerAdminRoutes(rg *gin.RouterGroup, c *controllers) {
	admin := rg.Group("/admin")
	admin.Use(middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.user.List)
		admin.GET("/users/:id", c.user.Get)
		admin.PUT("/users/:id", c.user.Update)
		admin.DELETE("/users/:id", c.user.Delete)
		admin.PUT("/users/:id/password", c.user.ResetPassword)
		admin.PUT("/users/:id/disabled", c.user.SetDisabled)

		admin.GET("/activity", c.activity.Recent)
		admin.GET("/dashboard", c.dashboard.Admin)
	}
}
