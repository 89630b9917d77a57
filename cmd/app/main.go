package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"flock/cmd/fx/attention_fx"
	"flock/cmd/fx/auth_fx"
	"flock/cmd/fx/camp_fx"
	"flock/cmd/fx/controllers_fx"
	"flock/cmd/fx/dashboard_fx"
	"flock/cmd/fx/db_fx"
	"flock/cmd/fx/event_fx"
	"flock/cmd/fx/followup_fx"
	"flock/cmd/fx/import_fx"
	"flock/cmd/fx/mail_fx"
	"flock/cmd/fx/member_fx"
	"flock/cmd/fx/memcache_fx"
	"flock/cmd/fx/messaging_fx"
	"flock/internal/api/controllers"
	"flock/internal/authz"
	"flock/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		auth_fx.Module,
		member_fx.Module,
		camp_fx.Module,
		event_fx.Module,
		followup_fx.Module,
		attention_fx.Module,
		import_fx.Module,
		messaging_fx.Module,
		dashboard_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server on :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	campController *controllers.CampController,
	eventController *controllers.EventController,
	followUpController *controllers.FollowUpController,
	attentionController *controllers.AttentionController,
	importController *controllers.ImportController,
	messagingController *controllers.MessagingController,
	dashboardController *controllers.DashboardController) *gin.Engine {

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		authController, memberController, campController, eventController,
		followUpController, attentionController, importController,
		messagingController, dashboardController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	authController *controllers.AuthController,
	memberController *controllers.MemberController,
	campController *controllers.CampController,
	eventController *controllers.EventController,
	followUpController *controllers.FollowUpController,
	attentionController *controllers.AttentionController,
	importController *controllers.ImportController,
	messagingController *controllers.MessagingController,
	dashboardController *controllers.DashboardController) {

	// Open endpoints: staff login and the token-gated member form.
	r.POST("/auth/login", authController.Login)
	r.PUT("/self-service/:token", memberController.SelfServiceUpdate)

	api := r.Group("/")
	api.Use(middleware.JWTAuthMiddleware())

	api.GET("/auth/me", authController.Me)
	api.POST("/auth/users", middleware.RequireRole(authz.RoleAdmin), authController.CreateUser)

	members := api.Group("/members")
	members.GET("", memberController.List)
	members.POST("", memberController.Create)
	members.POST("/bulk-delete", middleware.RequireRole(authz.RoleAdmin), memberController.BulkDelete)
	members.GET("/:id", memberController.Get)
	members.PUT("/:id", memberController.Update)
	members.DELETE("/:id", memberController.Delete)
	members.POST("/:id/shepherd", memberController.AssignShepherd)
	members.DELETE("/:id/shepherd", memberController.UnassignShepherd)
	members.POST("/:id/self-service-link", memberController.IssueSelfServiceLink)
	members.GET("/:id/followups", followUpController.ListByMember)

	camps := api.Group("/camps")
	camps.GET("", campController.List)
	camps.POST("", middleware.RequireRole(authz.RoleAdmin), campController.Create)
	camps.PUT("/:id/leader", middleware.RequireRole(authz.RoleAdmin), campController.SetLeader)

	events := api.Group("/events")
	events.GET("", eventController.List)
	events.POST("", eventController.Create)
	events.GET("/:id", eventController.Get)
	events.PUT("/:id", eventController.Update)
	events.DELETE("/:id", middleware.RequireRole(authz.RoleAdmin), eventController.Delete)
	events.POST("/:id/attendance", eventController.MarkAttendance)
	events.GET("/:id/attendance", eventController.ListAttendance)

	followUps := api.Group("/followups")
	followUps.POST("", followUpController.Create)
	followUps.PUT("/:id/complete", followUpController.Complete)

	attention := api.Group("/attention")
	attention.GET("", attentionController.List)
	attention.POST("/dismiss", attentionController.Dismiss)

	importGroup := api.Group("/import")
	importGroup.Use(middleware.RequireRole(authz.RoleAdmin))
	importGroup.POST("/sheet", importController.ImportSheet)
	importGroup.POST("/rows", importController.ImportRows)
	importGroup.GET("/progress", importController.Progress)

	messages := api.Group("/messages")
	messages.POST("/sms", messagingController.SendSMS)
	messages.POST("/email", messagingController.SendEmail)
	messages.POST("/whatsapp-link", messagingController.WhatsAppLink)
	messages.POST("/draft", messagingController.Draft)

	api.GET("/dashboard", dashboardController.Report)
}
