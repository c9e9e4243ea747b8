package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"vendasim/internal/domain"
	"vendasim/internal/port"
)

// QuizQuestionInput is one question in a quiz creation request.
type QuizQuestionInput struct {
	Prompt       string   `json:"prompt" binding:"required"`
	Options      []string `json:"options" binding:"required,min=2"`
	CorrectIndex int      `json:"correct_index"`
}

// CreateQuizInput is the DTO for creating a quiz with its questions.
type CreateQuizInput struct {
	Title       string              `json:"title" binding:"required"`
	Description string              `json:"description"`
	Questions   []QuizQuestionInput `json:"questions" binding:"required,min=1,dive"`
}

// UpdateQuizInput is the DTO for updating quiz metadata.
type UpdateQuizInput struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

// SubmitQuizInput carries a trainee's answers, one selected index per
// question in position order.
type SubmitQuizInput struct {
	Answers []int `json:"answers" binding:"required"`
}

// QuizDetail bundles a quiz with its questions. Correct answers are stripped
// from the question JSON, so the detail is safe to hand to trainees.
type QuizDetail struct {
	Quiz      *domain.Quiz          `json:"quiz"`
	Questions []domain.QuizQuestion `json:"questions"`
}

// QuizService defines the quiz contract.
type QuizService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreateQuizInput) (*domain.Quiz, error)
	Get(ctx context.Context, quizID uuid.UUID) (*QuizDetail, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Quiz, int, error)
	Update(ctx context.Context, quizID uuid.UUID, input UpdateQuizInput) (*domain.Quiz, error)
	Delete(ctx context.Context, quizID uuid.UUID) error
	Submit(ctx context.Context, userID, quizID uuid.UUID, input SubmitQuizInput) (*domain.QuizAttempt, error)
	ListAttempts(ctx context.Context, userID, quizID uuid.UUID) ([]domain.QuizAttempt, error)
}

type quizService struct {
	repo port.QuizRepository
}

// NewQuizService creates a new QuizService implementation.
func NewQuizService(repo port.QuizRepository) QuizService {
	return &quizService{repo: repo}
}

func (s *quizService) Create(ctx context.Context, createdBy uuid.UUID, input CreateQuizInput) (*domain.Quiz, error) {
	quiz := &domain.Quiz{
		Title:       input.Title,
		Description: input.Description,
		IsActive:    true,
		CreatedBy:   createdBy,
	}

	questions := make([]domain.QuizQuestion, 0, len(input.Questions))
	for i, q := range input.Questions {
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
			return nil, fmt.Errorf("question %d: correct_index out of range", i+1)
		}
		options, err := json.Marshal(q.Options)
		if err != nil {
			return nil, fmt.Errorf("question %d: marshaling options: %w", i+1, err)
		}
		questions = append(questions, domain.QuizQuestion{
			Prompt:       q.Prompt,
			Options:      options,
			CorrectIndex: q.CorrectIndex,
		})
	}

	if err := s.repo.Create(ctx, quiz, questions); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) Get(ctx context.Context, quizID uuid.UUID) (*QuizDetail, error) {
	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	questions, err := s.repo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	return &QuizDetail{Quiz: quiz, Questions: questions}, nil
}

func (s *quizService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Quiz, int, error) {
	return s.repo.List(ctx, activeOnly, offset, limit)
}

func (s *quizService) Update(ctx context.Context, quizID uuid.UUID, input UpdateQuizInput) (*domain.Quiz, error) {
	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		quiz.Title = *input.Title
	}
	if input.Description != nil {
		quiz.Description = *input.Description
	}
	if input.IsActive != nil {
		quiz.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *quizService) Delete(ctx context.Context, quizID uuid.UUID) error {
	return s.repo.Delete(ctx, quizID)
}

// Submit scores an attempt server-side; the client never sees correct
// indices, so the score cannot be forged.
func (s *quizService) Submit(ctx context.Context, userID, quizID uuid.UUID, input SubmitQuizInput) (*domain.QuizAttempt, error) {
	quiz, err := s.repo.GetByID(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if !quiz.IsActive {
		return nil, domain.ErrNotFound
	}

	questions, err := s.repo.ListQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(input.Answers) != len(questions) {
		return nil, domain.ErrAnswerCountInvalid
	}

	correct := 0
	for i, q := range questions {
		if input.Answers[i] == q.CorrectIndex {
			correct++
		}
	}

	answers, err := json.Marshal(input.Answers)
	if err != nil {
		return nil, fmt.Errorf("marshaling answers: %w", err)
	}

	attempt := &domain.QuizAttempt{
		QuizID:  quizID,
		UserID:  userID,
		Score:   float64(correct) / float64(len(questions)) * 100,
		Correct: correct,
		Total:   len(questions),
		Answers: answers,
	}
	if err := s.repo.CreateAttempt(ctx, attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

func (s *quizService) ListAttempts(ctx context.Context, userID, quizID uuid.UUID) ([]domain.QuizAttempt, error) {
	return s.repo.ListAttempts(ctx, quizID, userID)
}
