package router

import (
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/config"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/domain"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/handler"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/middleware"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/repository"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/scheduler"
	"github.com/Narongsakkaewp/Finding-Tutor-Website-sub001/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, scheduleSvc *service.ScheduleService, notifSvc *service.NotificationService, driver *scheduler.Driver) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	approvalRepo := repository.NewApprovalRepository(db)
	calendarRepo := repository.NewCalendarRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	authSvc := service.NewAuthService(cfg, userRepo)

	authHandler := handler.NewAuthHandler(authSvc)
	postHandler := handler.NewPostHandler(postRepo)
	approvalHandler := handler.NewApprovalHandler(approvalRepo, postRepo, userRepo, notifSvc)
	calendarHandler := handler.NewCalendarHandler(calendarRepo)
	notificationHandler := handler.NewNotificationHandler(notifRepo)
	reviewHandler := handler.NewReviewHandler(reviewRepo)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc, driver, cfg.Scheduler.BackfillDays)

	authMw := middleware.AuthRequired(&cfg.JWT)

	api := r.Group("/api/v1")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		api.GET("/student-posts", postHandler.ListStudentPosts)
		api.GET("/tutor-posts", postHandler.ListTutorPosts)
		api.GET("/posts/:id/reviews", reviewHandler.ListForPost)

		studentOnly := middleware.RequireRole(domain.RoleStudent)
		tutorOnly := middleware.RequireRole(domain.RoleTutor)

		authed := api.Group("")
		authed.Use(authMw)
		{
			authed.POST("/student-posts", studentOnly, postHandler.CreateStudentPost)
			authed.POST("/tutor-posts", tutorOnly, postHandler.CreateTutorPost)

			authed.POST("/tutor-posts/:id/join", studentOnly, approvalHandler.Join)
			authed.POST("/student-posts/:id/offer", tutorOnly, approvalHandler.Offer)
			authed.PUT("/joins/:id/status", approvalHandler.DecideJoin)
			authed.PUT("/offers/:id/status", approvalHandler.DecideOffer)

			authed.POST("/calendar", calendarHandler.Create)
			authed.GET("/calendar", calendarHandler.List)
			authed.DELETE("/calendar/:id", calendarHandler.Delete)

			authed.GET("/notifications", notificationHandler.List)
			authed.PUT("/notifications/:id/read", notificationHandler.MarkRead)

			authed.POST("/reviews", studentOnly, reviewHandler.Create)

			authed.GET("/schedule/alerts/:userId", scheduleHandler.Alerts)
			authed.POST("/schedule/review-backfill", scheduleHandler.ReviewBackfill)
		}
	}

	return r
}
