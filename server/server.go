package server

import (
	"net/http"
	"time"

	"distracto-server/confs"
	"distracto-server/db"
	"distracto-server/demo"
	"distracto-server/handlers"
	httpHandler "distracto-server/handlers/http"
	"distracto-server/logger"
	"distracto-server/middleware"
	"distracto-server/repositories"
	"distracto-server/services"
	"distracto-server/usecases"
	"distracto-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app       *gin.Engine
	db        db.Database
	cfg       *confs.Config
	log       *logger.Logger
	processor *services.SyncProcessor
}

func NewServer(database db.Database, cfg *confs.Config, log *logger.Logger) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return &Server{
		app: gin.Default(),
		db:  database,
		cfg: cfg,
		log: log,
	}
}

func (s *Server) Start() error {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{s.cfg.ClientURL}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	config.AllowCredentials = true
	s.app.Use(cors.New(config))

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	screenTimeRepo := repositories.NewScreenTimePgRepository(s.db)
	blockedSiteRepo := repositories.NewBlockedSitePgRepository(s.db)
	timetableRepo := repositories.NewTimetablePgRepository(s.db)
	chatRepo := repositories.NewChatPgRepository(s.db)

	// Initialize use cases
	usersUseCase := usecases.NewUsersUseCase(userRepo)
	screenTimeUseCase := usecases.NewScreenTimeUseCase(screenTimeRepo)
	blockerUseCase := usecases.NewBlockerUseCase(blockedSiteRepo)
	timetableUseCase := usecases.NewTimetableUseCase(timetableRepo)
	socialUseCase := usecases.NewSocialUseCase(chatRepo, userRepo)
	aiUseCase := usecases.NewAIUseCase(timetableUseCase)

	// Extension sync buffer
	s.processor = services.NewSyncProcessor(screenTimeRepo, s.log, s.cfg.SyncFlushInterval)
	s.processor.Start()

	// WebSocket manager and handler
	manager := ws.NewManager()
	wsHandler := handlers.NewWSHandler(manager, s.log)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(userRepo, s.log)
	usersHandler := httpHandler.NewUsersHandler(usersUseCase, s.log)
	screenTimeHandler := httpHandler.NewScreenTimeHandler(screenTimeUseCase, s.processor, s.log)
	blockerHandler := httpHandler.NewBlockedSitesHandler(blockerUseCase, s.log)
	timetableHandler := httpHandler.NewTimetableHandler(timetableUseCase, s.log)
	socialHandler := httpHandler.NewSocialHandler(socialUseCase, userRepo, manager, s.log)
	aiHandler := httpHandler.NewAIHandler(aiUseCase, s.log)

	// Setup API routes
	api := s.app.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":      "OK",
				"timestamp":   time.Now().UTC().Format(time.RFC3339),
				"environment": s.cfg.Environment,
				"syncBuffer":  s.processor.Stats(),
			})
		})

		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			screenTime := protected.Group("/screen-time")
			{
				screenTime.GET("", screenTimeHandler.GetScreenTime)
				screenTime.PUT("", screenTimeHandler.UpdateScreenTime)
				screenTime.POST("/sync", screenTimeHandler.Sync)
				screenTime.GET("/export", screenTimeHandler.Export)
				screenTime.GET("/weekly/:startDate", screenTimeHandler.GetWeekly)
				screenTime.GET("/:date", screenTimeHandler.GetScreenTime)
				screenTime.PUT("/:date", screenTimeHandler.UpdateScreenTime)
			}

			blocker := protected.Group("/website-blocker")
			{
				blocker.GET("", blockerHandler.ListBlockedSites)
				blocker.POST("", blockerHandler.CreateBlockedSite)
				blocker.PUT("/:id", blockerHandler.UpdateBlockedSite)
				blocker.DELETE("/:id", blockerHandler.DeleteBlockedSite)
			}

			timetable := protected.Group("/timetable")
			{
				timetable.GET("", timetableHandler.ListTimetables)
				timetable.POST("", timetableHandler.CreateTimetable)
				timetable.PUT("/:id", timetableHandler.UpdateTimetable)
				timetable.DELETE("/:id", timetableHandler.DeleteTimetable)
			}

			users := protected.Group("/users")
			{
				users.GET("/me", usersHandler.GetMe)
				users.GET("/profile", usersHandler.GetProfile)
				users.PUT("/profile", usersHandler.UpdateProfile)
				users.GET("/search", usersHandler.SearchUsers)
				users.POST("/follow/:userId", usersHandler.FollowUser)
				users.DELETE("/follow/:userId", usersHandler.UnfollowUser)
			}

			social := protected.Group("/social")
			{
				social.GET("/chats", socialHandler.ListChats)
				social.POST("/chats", socialHandler.CreateChat)
				social.POST("/chats/:chatId/messages", socialHandler.SendMessage)
				social.POST("/chats/:chatId/read", socialHandler.MarkChatRead)
				social.GET("/followers", socialHandler.GetFollowers)
				social.GET("/following", socialHandler.GetFollowing)
			}

			ai := protected.Group("/ai")
			{
				ai.POST("/chat", aiHandler.Chat)
				ai.POST("/timetable", aiHandler.GenerateTimetable)
			}
		}

		// Demo social services, only in demo deployments
		if s.cfg.DemoMode {
			s.log.Info("demo mode enabled, mounting mock social routes")
			store := demo.NewStore(300*time.Millisecond, 1200*time.Millisecond)
			demoHandler := demo.NewHandler(store)
			demoGroup := api.Group("/demo")
			demoGroup.Use(middleware.RequireAuth())
			demoHandler.RegisterRoutes(demoGroup)
		}
	}

	s.app.GET("/ws", middleware.RequireAuth(), wsHandler.Handle)

	s.log.Info("server starting", "port", s.cfg.Port, "environment", s.cfg.Environment)
	return s.app.Run("0.0.0.0:" + s.cfg.Port)
}

// Stop flushes the sync buffer.
func (s *Server) Stop() {
	if s.processor != nil {
		s.processor.Stop()
	}
}
