package server

import (
	"net/http"

	"personapath/internal/advisor"
	"personapath/internal/config"
	"personapath/internal/handler"
	"personapath/internal/llm"
	"personapath/internal/mentor"
	"personapath/internal/middleware"
	"personapath/internal/planner"
	"personapath/internal/repository"
	"personapath/internal/service"
	"personapath/internal/skills"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
)

type Server struct {
	router *gin.Engine
	db     *sqlx.DB
	cfg    *config.Config
	llm    *llm.MultiProviderClient
	logger *zap.Logger
	log    *logrus.Logger
}

func NewServer(db *sqlx.DB, cfg *config.Config, llmClient *llm.MultiProviderClient, logger *zap.Logger, log *logrus.Logger) (*Server, error) {
	router := gin.Default()

	s := &Server{
		router: router,
		db:     db,
		cfg:    cfg,
		llm:    llmClient,
		logger: logger,
		log:    log,
	}

	if err := s.setupRoutes(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Server) setupRoutes() error {
	s.router.Use(middleware.RequestLogger(s.logger))

	authRepo := repository.NewAuthRepository(s.db, s.log)
	roleRepo := repository.NewRoleRepository(s.db, s.logger)
	chatRepo := repository.NewChatRepository(s.db, s.logger)
	mentorRepo := repository.NewMentorRepository(s.db, s.logger)
	careerRepo := repository.NewCareerPathRepository(s.db, s.logger)

	authService := service.NewAuthService(authRepo, s.cfg.Auth.JWTSecret, s.cfg.TokenTTL(), s.logger)

	var completer advisor.Completer
	if s.llm != nil {
		completer = s.llm
	}
	assistant, err := advisor.NewAssistant(roleRepo, chatRepo, completer, s.logger)
	if err != nil {
		return err
	}

	careerPlanner := planner.NewPlanner(careerRepo, s.logger)
	skillAnalyzer := skills.NewAnalyzer(roleRepo, s.logger)
	mentorMatcher := mentor.NewMatcher(mentorRepo, s.logger)

	authHandler := handler.NewAuthHandler(authService, s.log)
	chatHandler := handler.NewChatHandler(assistant, chatRepo, s.logger)
	roleHandler := handler.NewRoleHandler(roleRepo, assistant, s.logger)
	careerHandler := handler.NewCareerHandler(careerPlanner, skillAnalyzer, s.logger)
	mentorHandler := handler.NewMentorHandler(mentorRepo, roleRepo, mentorMatcher, s.logger)
	analyticsHandler := handler.NewAnalyticsHandler(authRepo, roleRepo, chatRepo, mentorRepo, s.logger)

	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authGroup := s.router.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	// Read-only catalog routes are public
	s.router.GET("/api/roles", roleHandler.List)
	s.router.GET("/api/roles/search", roleHandler.Search)
	s.router.GET("/api/mentors", mentorHandler.List)

	authRequired := s.router.Group("/api")
	authRequired.Use(middleware.AuthMiddleware(authService.JWTSecret(), s.logger))
	{
		authRequired.GET("/auth/me", authHandler.Me)

		authRequired.POST("/chat/query", chatHandler.Query)
		authRequired.GET("/chat/history", chatHandler.History)
		authRequired.DELETE("/chat/history", chatHandler.ClearHistory)
		authRequired.DELETE("/chat/history/:id", chatHandler.DeleteEntry)

		authRequired.POST("/career/roadmap", careerHandler.Roadmap)
		authRequired.GET("/career/roadmap", careerHandler.RoadmapHistory)
		authRequired.POST("/career/skill-analysis", careerHandler.SkillAnalysis)
		authRequired.POST("/career/development-plan", careerHandler.DevelopmentPlan)

		authRequired.POST("/roles", roleHandler.Create)

		authRequired.GET("/mentors/recommendations", mentorHandler.Recommendations)
		authRequired.POST("/mentors/plan", mentorHandler.Plan)

		authRequired.GET("/analytics/summary", analyticsHandler.Summary)
		authRequired.GET("/analytics/activity", analyticsHandler.Activity)
	}

	return nil
}

func (s *Server) Run(addr string) {
	s.logger.Info("Server starting", zap.String("addr", addr))
	if err := s.router.Run(addr); err != nil {
		s.logger.Fatal("Server failed to start", zap.Error(err))
	}
}
