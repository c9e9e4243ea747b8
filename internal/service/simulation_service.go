package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"vendasim/internal/chat"
	"vendasim/internal/config"
	"vendasim/internal/domain"
	"vendasim/internal/evaluation"
	"vendasim/internal/llm"
	"vendasim/internal/port"
)

// SendMessageInput is the DTO for a trainee turn.
type SendMessageInput struct {
	Content string `json:"content" binding:"required"`
}

// TurnResult is the outcome of processing one trainee turn. Exactly one of
// Chunks or Evaluation is populated: Chunks when the client persona replied
// in character, Evaluation when the reply was a final report and the session
// has been completed.
type TurnResult struct {
	Chunks     []string           `json:"chunks,omitempty"`
	Evaluation *evaluation.Result `json:"evaluation,omitempty"`
	ModelUsed  string             `json:"model_used,omitempty"`
}

// SessionDetail bundles a session with its message history.
type SessionDetail struct {
	Session  *domain.SimulationSession  `json:"session"`
	Messages []domain.SimulationMessage `json:"messages"`
}

// SimulationService defines the simulation lifecycle contract.
type SimulationService interface {
	Start(ctx context.Context, userID, personaID uuid.UUID) (*domain.SimulationSession, error)
	SendMessage(ctx context.Context, userID, sessionID uuid.UUID, input SendMessageInput) (*TurnResult, error)
	Get(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*SessionDetail, error)
	List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.SimulationSession, int, error)
	Abandon(ctx context.Context, userID, sessionID uuid.UUID) error
	GetEvaluation(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Evaluation, error)
}

type simulationService struct {
	sessionRepo port.SessionRepository
	personaRepo port.PersonaRepository
	evalRepo    port.EvaluationRepository
	model       port.ChatModel
	storage     port.ObjectStorage
	s3cfg       config.S3Config
}

// NewSimulationService creates a new SimulationService implementation.
func NewSimulationService(
	sessionRepo port.SessionRepository,
	personaRepo port.PersonaRepository,
	evalRepo port.EvaluationRepository,
	model port.ChatModel,
	storage port.ObjectStorage,
	s3cfg config.S3Config,
) SimulationService {
	return &simulationService{
		sessionRepo: sessionRepo,
		personaRepo: personaRepo,
		evalRepo:    evalRepo,
		model:       model,
		storage:     storage,
		s3cfg:       s3cfg,
	}
}

func (s *simulationService) Start(ctx context.Context, userID, personaID uuid.UUID) (*domain.SimulationSession, error) {
	persona, err := s.personaRepo.GetByID(ctx, personaID)
	if err != nil {
		return nil, err
	}
	if !persona.IsActive {
		return nil, domain.ErrPersonaInactive
	}

	session := &domain.SimulationSession{
		UserID:    userID,
		PersonaID: personaID,
		Status:    domain.SessionStatusActive,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *simulationService) SendMessage(ctx context.Context, userID, sessionID uuid.UUID, input SendMessageInput) (*TurnResult, error) {
	content := strings.TrimSpace(input.Content)
	if content == "" {
		return nil, domain.ErrEmptyMessage
	}

	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != domain.SessionStatusActive {
		return nil, domain.ErrSessionCompleted
	}

	persona, err := s.personaRepo.GetByID(ctx, session.PersonaID)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.AppendMessage(ctx, &domain.SimulationMessage{
		SessionID: sessionID,
		Sender:    domain.SenderTrainee,
		Content:   content,
	}); err != nil {
		return nil, err
	}

	history, err := s.sessionRepo.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	out, err := s.model.Complete(ctx, llm.BuildSimulationPrompt(persona), toChatMessages(history))
	if err != nil {
		return nil, fmt.Errorf("simulation.SendMessage: %w", err)
	}

	if err := s.sessionRepo.AppendMessage(ctx, &domain.SimulationMessage{
		SessionID: sessionID,
		Sender:    domain.SenderClient,
		Content:   out.Text,
	}); err != nil {
		return nil, err
	}

	if evaluation.HasOutcomeHeader(out.Text) {
		result := evaluation.Parse(out.Text)
		s.completeSession(ctx, session, result, out)
		return &TurnResult{Evaluation: result, ModelUsed: out.Model}, nil
	}

	return &TurnResult{Chunks: chat.Split(out.Text), ModelUsed: out.Model}, nil
}

// completeSession persists the evaluation, closes the session and archives
// the transcript. The parsed result is already in the caller's hands, so
// persistence problems are logged and swallowed rather than failing the turn.
func (s *simulationService) completeSession(ctx context.Context, session *domain.SimulationSession, result *evaluation.Result, out *port.ChatResult) {
	structured, err := json.Marshal(result)
	if err != nil {
		log.Printf("WARNING: simulation: marshaling evaluation for session %s: %v", session.ID, err)
		structured = nil
	}

	eval := &domain.Evaluation{
		SessionID:      session.ID,
		UserID:         session.UserID,
		Outcome:        domain.SessionOutcome(result.Outcome),
		BossConvinced:  result.BossConvinced,
		Acolhimento:    result.Ratings.Acolhimento,
		Clareza:        result.Ratings.Clareza,
		Argumentacao:   result.Ratings.Argumentacao,
		Fechamento:     result.Ratings.Fechamento,
		StructuredData: structured,
		RawText:        out.Text,
	}
	if err := s.evalRepo.Create(ctx, eval); err != nil {
		log.Printf("WARNING: simulation: persisting evaluation for session %s: %v", session.ID, err)
	}

	now := time.Now().UTC()
	outcome := domain.SessionOutcome(result.Outcome)
	session.Status = domain.SessionStatusCompleted
	session.Outcome = &outcome
	session.ModelUsed = out.Model
	session.CompletedAt = &now
	session.ArchiveKey = s.archiveTranscript(ctx, session, eval)
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		log.Printf("WARNING: simulation: closing session %s: %v", session.ID, err)
	}
}

// archiveTranscript uploads the full session transcript to object storage and
// returns the object key, or empty string when archival was not possible.
func (s *simulationService) archiveTranscript(ctx context.Context, session *domain.SimulationSession, eval *domain.Evaluation) string {
	messages, err := s.sessionRepo.ListMessages(ctx, session.ID)
	if err != nil {
		log.Printf("WARNING: simulation: loading transcript for session %s: %v", session.ID, err)
		return ""
	}

	payload, err := json.Marshal(struct {
		Session    *domain.SimulationSession  `json:"session"`
		Messages   []domain.SimulationMessage `json:"messages"`
		Evaluation *domain.Evaluation         `json:"evaluation"`
	}{session, messages, eval})
	if err != nil {
		log.Printf("WARNING: simulation: marshaling transcript for session %s: %v", session.ID, err)
		return ""
	}

	key := fmt.Sprintf("transcripts/%s/%s.json", session.UserID, session.ID)
	_, err = s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        bytes.NewReader(payload),
		ContentType: "application/json",
		Size:        int64(len(payload)),
	})
	if err != nil {
		log.Printf("WARNING: simulation: archiving transcript for session %s: %v", session.ID, err)
		return ""
	}
	return key
}

func (s *simulationService) Get(ctx context.Context, userID uuid.UUID, sessionID uuid.UUID) (*SessionDetail, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	messages, err := s.sessionRepo.ListMessages(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &SessionDetail{Session: session, Messages: messages}, nil
}

func (s *simulationService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.SimulationSession, int, error) {
	return s.sessionRepo.ListByUser(ctx, userID, offset, limit)
}

func (s *simulationService) Abandon(ctx context.Context, userID, sessionID uuid.UUID) error {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return err
	}
	if session.Status != domain.SessionStatusActive {
		return domain.ErrSessionCompleted
	}

	now := time.Now().UTC()
	session.Status = domain.SessionStatusAbandoned
	session.CompletedAt = &now
	return s.sessionRepo.Update(ctx, session)
}

// transcriptURLExpirySecs bounds how long a transcript link stays valid.
const transcriptURLExpirySecs = 900

func (s *simulationService) GetEvaluation(ctx context.Context, userID, sessionID uuid.UUID) (*domain.Evaluation, error) {
	session, err := s.ownedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	eval, err := s.evalRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.ArchiveKey != "" {
		url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, session.ArchiveKey, transcriptURLExpirySecs)
		if err != nil {
			log.Printf("WARNING: simulation: presigning transcript for session %s: %v", session.ID, err)
		} else {
			eval.TranscriptURL = url
		}
	}
	return eval, nil
}

func (s *simulationService) ownedSession(ctx context.Context, userID, sessionID uuid.UUID) (*domain.SimulationSession, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return session, nil
}

func toChatMessages(history []domain.SimulationMessage) []port.ChatMessage {
	messages := make([]port.ChatMessage, 0, len(history))
	for _, m := range history {
		role := port.RoleUser
		if m.Sender == domain.SenderClient {
			role = port.RoleAssistant
		}
		messages = append(messages, port.ChatMessage{Role: role, Content: m.Content})
	}
	return messages
}
