package app

import (
	"walkalong_backend/docs"
	"walkalong_backend/internal/config"
	"walkalong_backend/internal/middleware"
	"walkalong_backend/internal/model"
	"walkalong_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由（无需登录）
	a.registerPublicRoutes(router, c)

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		a.registerMemberRoutes(authGroup, c)
	}

	// 管理员相关接口
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers) {
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
		public.GET("/motivation", c.motivation.GetCurrentMotivation)
	}
}

func (a *App) registerMemberRoutes(rg *gin.RouterGroup, c *controllers) {
	rg.GET("/auth/me", c.auth.Me)

	// 任务
	rg.GET("/tasks", c.task.GetTasks)
	rg.POST("/tasks", c.task.CreateTask)
	rg.GET("/tasks/:id", c.task.GetTask)
	rg.PUT("/tasks/:id", c.task.UpdateTask)
	rg.PATCH("/tasks/:id/status", c.task.UpdateStatus)
	rg.PATCH("/tasks/:id/stopwatch", c.task.AddStopwatchTime)
	rg.DELETE("/tasks/:id", c.task.DeleteTask)

	// 学习方向
	rg.GET("/streams", c.stream.GetStreams)
	rg.POST("/streams", c.stream.CreateStream)
	rg.GET("/streams/stats", c.stream.GetAllStreamStats)
	rg.GET("/streams/:id", c.stream.GetStream)
	rg.PUT("/streams/:id", c.stream.UpdateStream)
	rg.DELETE("/streams/:id", c.stream.DeleteStream)
	rg.GET("/streams/:id/stats", c.stream.GetStreamStats)

	// 便签
	rg.GET("/stream-notes", c.streamNote.GetNotes)
	rg.POST("/stream-notes", c.streamNote.CreateNote)
	rg.PUT("/stream-notes/:id", c.streamNote.UpdateNote)
	rg.DELETE("/stream-notes/:id", c.streamNote.DeleteNote)

	// 情绪
	rg.GET("/mood", c.mood.GetEntries)
	rg.POST("/mood", c.mood.CreateEntry)
	rg.GET("/mood/date/:date", c.mood.GetEntriesByDate)
	rg.GET("/mood/:id", c.mood.GetEntry)
	rg.PUT("/mood/:id", c.mood.UpdateEntry)
	rg.DELETE("/mood/:id", c.mood.DeleteEntry)

	// 工作日志
	rg.GET("/workdone", c.workDone.GetEntries)
	rg.POST("/workdone", c.workDone.CreateEntry)
	rg.GET("/workdone/week", c.workDone.GetWeekEntries)
	rg.GET("/workdone/points/summary", c.workDone.GetPointsSummary)
	rg.GET("/workdone/satisfaction/weekly", c.workDone.GetWeeklySatisfaction)
	rg.GET("/workdone/date/:date", c.workDone.GetEntryByDate)
	rg.GET("/workdone/:id", c.workDone.GetEntry)
	rg.PUT("/workdone/:id", c.workDone.UpdateEntry)
	rg.DELETE("/workdone/:id", c.workDone.DeleteEntry)

	// 视图计划
	rg.GET("/viewplan/daily", c.viewPlan.GetDailyTasks)
	rg.GET("/viewplan/weekly", c.viewPlan.GetWeeklyTasks)
	rg.GET("/viewplan/monthly", c.viewPlan.GetMonthlyTasks)

	// 仪表盘与分析
	rg.GET("/dashboard", c.dashboard.GetDashboard)
	rg.GET("/dashboard/revision-reminders", c.dashboard.GetRevisionReminders)
	rg.GET("/analytics/overview", c.analytics.GetOverview)

	// 日历
	rg.GET("/calendar", c.calendar.GetMonth)
	rg.POST("/calendar", c.calendar.MarkDay)
	rg.GET("/calendar/studied-days", c.calendar.GetStudiedDays)
	rg.GET("/calendar/:date", c.calendar.GetDay)

	// 答题练习
	rg.GET("/answers/questions", c.answer.GetQuestions)
	rg.POST("/answers/questions", c.answer.CreateQuestion)
	rg.DELETE("/answers/questions/:id", c.answer.DeleteQuestion)
	rg.GET("/answers/submissions", c.answer.GetSubmissions)
	rg.POST("/answers/submissions", c.answer.SubmitAnswer)
	rg.GET("/answers/submissions/:id", c.answer.GetSubmission)
	rg.GET("/answers/submissions/:id/pdf", c.answer.DownloadPdf)
	rg.GET("/answers/submissions/:id/review", c.answer.GetReview)
	rg.POST("/answers/submissions/:id/review", c.answer.SubmitReview)
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/motivations", c.motivation.GetAllMotivations)
		admin.POST("/motivations", c.motivation.CreateMotivation)
		admin.PUT("/motivations/:id", c.motivation.UpdateMotivation)
		admin.DELETE("/motivations/:id", c.motivation.DeleteMotivation)
		admin.POST("/motivations/:id/switch", c.motivation.SwitchToMotivation)
	}
}
