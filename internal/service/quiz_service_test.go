package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vendasim/internal/domain"
	"vendasim/internal/service"
	"vendasim/mocks"
)

func optionsJSON(t *testing.T, opts ...string) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(opts)
	require.NoError(t, err)
	return raw
}

func TestQuizService_Create(t *testing.T) {
	repo := new(mocks.MockQuizRepo)
	svc := service.NewQuizService(repo)
	adminID := uuid.New()

	repo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Quiz"), mock.AnythingOfType("[]domain.QuizQuestion")).
		Run(func(args mock.Arguments) {
			questions := args.Get(2).([]domain.QuizQuestion)
			require.Len(t, questions, 1)
			assert.Equal(t, 1, questions[0].CorrectIndex)
		}).
		Return(nil)

	quiz, err := svc.Create(context.Background(), adminID, service.CreateQuizInput{
		Title: "Contorno de objeções",
		Questions: []service.QuizQuestionInput{
			{Prompt: "Qual a melhor resposta para 'está caro'?", Options: []string{"Desconto imediato", "Explorar o valor percebido"}, CorrectIndex: 1},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "Contorno de objeções", quiz.Title)
	assert.True(t, quiz.IsActive)
	repo.AssertExpectations(t)
}

func TestQuizService_Create_CorrectIndexOutOfRange(t *testing.T) {
	repo := new(mocks.MockQuizRepo)
	svc := service.NewQuizService(repo)

	quiz, err := svc.Create(context.Background(), uuid.New(), service.CreateQuizInput{
		Title: "Quiz inválido",
		Questions: []service.QuizQuestionInput{
			{Prompt: "Pergunta", Options: []string{"A", "B"}, CorrectIndex: 2},
		},
	})

	assert.Nil(t, quiz)
	assert.ErrorContains(t, err, "correct_index out of range")
	repo.AssertNotCalled(t, "Create")
}

func TestQuizService_Submit_Scoring(t *testing.T) {
	repo := new(mocks.MockQuizRepo)
	svc := service.NewQuizService(repo)
	quizID := uuid.New()
	userID := uuid.New()

	quiz := &domain.Quiz{ID: quizID, Title: "Teste", IsActive: true}
	questions := []domain.QuizQuestion{
		{ID: uuid.New(), QuizID: quizID, Options: optionsJSON(t, "A", "B"), CorrectIndex: 0, Position: 1},
		{ID: uuid.New(), QuizID: quizID, Options: optionsJSON(t, "A", "B", "C"), CorrectIndex: 2, Position: 2},
		{ID: uuid.New(), QuizID: quizID, Options: optionsJSON(t, "A", "B"), CorrectIndex: 1, Position: 3},
		{ID: uuid.New(), QuizID: quizID, Options: optionsJSON(t, "A", "B"), CorrectIndex: 0, Position: 4},
	}

	repo.On("GetByID", mock.Anything, quizID).Return(quiz, nil)
	repo.On("ListQuestions", mock.Anything, quizID).Return(questions, nil)
	repo.On("CreateAttempt", mock.Anything, mock.AnythingOfType("*domain.QuizAttempt")).Return(nil)

	attempt, err := svc.Submit(context.Background(), userID, quizID, service.SubmitQuizInput{
		Answers: []int{0, 2, 0, 0},
	})

	require.NoError(t, err)
	assert.Equal(t, 3, attempt.Correct)
	assert.Equal(t, 4, attempt.Total)
	assert.Equal(t, 75.0, attempt.Score)
	repo.AssertExpectations(t)
}

func TestQuizService_Submit_AnswerCountMismatch(t *testing.T) {
	repo := new(mocks.MockQuizRepo)
	svc := service.NewQuizService(repo)
	quizID := uuid.New()

	quiz := &domain.Quiz{ID: quizID, IsActive: true}
	questions := []domain.QuizQuestion{
		{ID: uuid.New(), QuizID: quizID, Options: optionsJSON(t, "A", "B"), CorrectIndex: 0, Position: 1},
		{ID: uuid.New(), QuizID: quizID, Options: optionsJSON(t, "A", "B"), CorrectIndex: 1, Position: 2},
	}

	repo.On("GetByID", mock.Anything, quizID).Return(quiz, nil)
	repo.On("ListQuestions", mock.Anything, quizID).Return(questions, nil)

	attempt, err := svc.Submit(context.Background(), uuid.New(), quizID, service.SubmitQuizInput{
		Answers: []int{0},
	})

	assert.Nil(t, attempt)
	assert.ErrorIs(t, err, domain.ErrAnswerCountInvalid)
	repo.AssertNotCalled(t, "CreateAttempt")
}

func TestQuizService_Submit_InactiveQuiz(t *testing.T) {
	repo := new(mocks.MockQuizRepo)
	svc := service.NewQuizService(repo)
	quizID := uuid.New()

	repo.On("GetByID", mock.Anything, quizID).Return(&domain.Quiz{ID: quizID, IsActive: false}, nil)

	attempt, err := svc.Submit(context.Background(), uuid.New(), quizID, service.SubmitQuizInput{
		Answers: []int{0},
	})

	assert.Nil(t, attempt)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
