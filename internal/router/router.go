package router

import (
	"github.com/gin-gonic/gin"

	"vendasim/internal/domain"
	"vendasim/internal/handler"
	"vendasim/internal/middleware"
	"vendasim/internal/service"
)

// Handlers groups the HTTP handlers wired into the engine.
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Persona    *handler.PersonaHandler
	Simulation *handler.SimulationHandler
	Quiz       *handler.QuizHandler
	Flashcard  *handler.FlashcardHandler
	Stats      *handler.StatsHandler
	Health     *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(authSvc service.AuthService, allowedOrigins []string, h Handlers) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/refresh", h.Auth.Refresh)
	auth.POST("/forgot-password", h.Auth.ForgotPassword)
	auth.POST("/reset-password", h.Auth.ResetPassword)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	// User management
	users := protected.Group("/users")
	users.GET("/me", h.User.Me)
	users.POST("", middleware.RequireRole(domain.RoleAdmin), h.User.Create)
	users.GET("", middleware.RequireRole(domain.RoleAdmin), h.User.List)
	users.GET("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Get)
	users.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Update)
	users.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.User.Delete)

	// Client personas
	personas := protected.Group("/personas")
	personas.GET("", h.Persona.List)
	personas.GET("/:id", h.Persona.Get)
	personas.POST("", middleware.RequireRole(domain.RoleAdmin), h.Persona.Create)
	personas.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Persona.Update)
	personas.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Persona.Delete)

	// Simulation sessions
	simulations := protected.Group("/simulations")
	simulations.POST("", h.Simulation.Start)
	simulations.GET("", h.Simulation.List)
	simulations.GET("/:id", h.Simulation.Get)
	simulations.POST("/:id/messages", h.Simulation.SendMessage)
	simulations.POST("/:id/messages/stream", h.Simulation.StreamMessage)
	simulations.POST("/:id/abandon", h.Simulation.Abandon)
	simulations.GET("/:id/evaluation", h.Simulation.GetEvaluation)

	// Quizzes
	quizzes := protected.Group("/quizzes")
	quizzes.GET("", h.Quiz.List)
	quizzes.GET("/:id", h.Quiz.Get)
	quizzes.POST("/:id/attempts", h.Quiz.Submit)
	quizzes.GET("/:id/attempts", h.Quiz.ListAttempts)
	quizzes.POST("", middleware.RequireRole(domain.RoleAdmin), h.Quiz.Create)
	quizzes.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Quiz.Update)
	quizzes.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Quiz.Delete)

	// Flashcard decks and cards
	decks := protected.Group("/decks")
	decks.GET("", h.Flashcard.ListDecks)
	decks.GET("/:id", h.Flashcard.GetDeck)
	decks.GET("/:id/cards", h.Flashcard.ListCards)
	decks.POST("", middleware.RequireRole(domain.RoleAdmin), h.Flashcard.CreateDeck)
	decks.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Flashcard.UpdateDeck)
	decks.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Flashcard.DeleteDeck)
	decks.POST("/:id/cards", middleware.RequireRole(domain.RoleAdmin), h.Flashcard.CreateCard)

	cards := protected.Group("/cards")
	cards.POST("/:id/reviews", h.Flashcard.ReviewCard)
	cards.PUT("/:id", middleware.RequireRole(domain.RoleAdmin), h.Flashcard.UpdateCard)
	cards.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), h.Flashcard.DeleteCard)

	// Admin reporting
	stats := protected.Group("/stats")
	stats.Use(middleware.RequireRole(domain.RoleAdmin))
	stats.GET("/trainees", h.Stats.TraineeSummary)
	stats.GET("/outcomes", h.Stats.OutcomeSeries)
	stats.GET("/quizzes", h.Stats.QuizPerformance)
	stats.GET("/evaluations/export", h.Stats.ExportEvaluations)

	return r
}
