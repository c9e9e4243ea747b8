package main

import (
	"fmt"
	"log"

	"vendasim/internal/config"
	"vendasim/internal/email/noop"
	"vendasim/internal/email/ses"
	"vendasim/internal/handler"
	"vendasim/internal/llm"
	"vendasim/internal/llm/claude"
	"vendasim/internal/llm/gemini"
	"vendasim/internal/llm/openai"
	"vendasim/internal/port"
	"vendasim/internal/repository/postgres"
	"vendasim/internal/router"
	"vendasim/internal/service"
	s3storage "vendasim/internal/storage/s3"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	personaRepo := postgres.NewPersonaRepo(db)
	sessionRepo := postgres.NewSessionRepo(db)
	evalRepo := postgres.NewEvaluationRepo(db)
	quizRepo := postgres.NewQuizRepo(db)
	flashcardRepo := postgres.NewFlashcardRepo(db)
	statsRepo := postgres.NewStatsRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	emailSender, err := newEmailSender(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize email sender: %w", err)
	}

	// Initialize chat model chain
	registerModelProviders()
	model, err := llm.NewChain(&cfg.LLM)
	if err != nil {
		return fmt.Errorf("failed to initialize chat model: %w", err)
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	passwordResetSvc := service.NewPasswordResetService(userRepo, emailSender, cfg.JWT)
	userSvc := service.NewUserService(userRepo, emailSender)
	personaSvc := service.NewPersonaService(personaRepo)
	simulationSvc := service.NewSimulationService(sessionRepo, personaRepo, evalRepo, model, s3Client, cfg.S3)
	quizSvc := service.NewQuizService(quizRepo)
	flashcardSvc := service.NewFlashcardService(flashcardRepo)
	statsSvc := service.NewStatsService(statsRepo, evalRepo)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins, router.Handlers{
		Auth:       handler.NewAuthHandler(authSvc, passwordResetSvc),
		User:       handler.NewUserHandler(userSvc),
		Persona:    handler.NewPersonaHandler(personaSvc),
		Simulation: handler.NewSimulationHandler(simulationSvc, cfg.Chat),
		Quiz:       handler.NewQuizHandler(quizSvc),
		Flashcard:  handler.NewFlashcardHandler(flashcardSvc),
		Stats:      handler.NewStatsHandler(statsSvc),
		Health:     handler.NewHealthHandler(db),
	})

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

// registerModelProviders wires the provider factories into the llm registry.
// Registration lives here rather than in provider init functions because the
// providers themselves import the llm package for its error types.
func registerModelProviders() {
	llm.RegisterProvider("claude", func(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
		return claude.NewModel(cfg), nil
	})
	llm.RegisterProvider("openai", func(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
		return openai.NewModel(cfg), nil
	})
	llm.RegisterProvider("gemini", func(cfg *config.LLMProviderConfig) (port.ChatModel, error) {
		return gemini.NewModel(cfg), nil
	})
}

func newEmailSender(cfg *config.Config) (port.EmailSender, error) {
	switch cfg.Email.Provider {
	case "ses":
		return ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
	default:
		return noop.NewNoopSender(cfg.Email.FrontendURL), nil
	}
}
