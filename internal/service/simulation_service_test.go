package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"vendasim/internal/config"
	"vendasim/internal/domain"
	"vendasim/internal/port"
	"vendasim/internal/service"
	"vendasim/mocks"
)

const finalReport = `Ah, entendi... então vou deixar para depois.

❌ SIMULAÇÃO ENCERRADA: VENDA NÃO REALIZADA
📉 RESUMO RÁPIDO
O cliente encerrou sem fechar a matrícula.
🚨 1. PRINCIPAIS ERROS QUE ATRAPALHARAM A VENDA
Erro 1 – Falta de escuta ativa
Você interrompeu o cliente durante a descoberta.
✅ 2. PONTO POSITIVO DO ATENDIMENTO
Você manteve um tom cordial.
🔍 3. NOTAS GERAIS DO ATENDIMENTO
Acolhimento 4.0
Clareza 3.0
Argumentação 2.0
Fechamento 1.5
🏁 7. RESUMO FINAL
Faltou conduzir o fechamento. Continue treinando para evoluir.`

type simFixture struct {
	sessionRepo *mocks.MockSessionRepo
	personaRepo *mocks.MockPersonaRepo
	evalRepo    *mocks.MockEvaluationRepo
	model       *mocks.MockChatModel
	storage     *mocks.MockObjectStorage
	svc         service.SimulationService
}

func newSimFixture() *simFixture {
	f := &simFixture{
		sessionRepo: new(mocks.MockSessionRepo),
		personaRepo: new(mocks.MockPersonaRepo),
		evalRepo:    new(mocks.MockEvaluationRepo),
		model:       new(mocks.MockChatModel),
		storage:     new(mocks.MockObjectStorage),
	}
	f.svc = service.NewSimulationService(
		f.sessionRepo, f.personaRepo, f.evalRepo, f.model, f.storage,
		config.S3Config{Bucket: "test-transcripts"},
	)
	return f
}

func testPersona() *domain.Persona {
	return &domain.Persona{
		ID:            uuid.New(),
		Name:          "Mariana Souza",
		Course:        "Técnico em Enfermagem",
		LifeSituation: "Trabalha em dois empregos",
		Seeks:         "Estabilidade financeira",
		Fear:          "Não conseguir conciliar estudo e trabalho",
		Behavior:      "Desconfiada e objetiva",
		Difficulty:    domain.DifficultyMedium,
		IsActive:      true,
	}
}

func TestSimulationService_Start(t *testing.T) {
	f := newSimFixture()
	persona := testPersona()
	userID := uuid.New()

	f.personaRepo.On("GetByID", mock.Anything, persona.ID).Return(persona, nil)
	f.sessionRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SimulationSession")).Return(nil)

	session, err := f.svc.Start(context.Background(), userID, persona.ID)

	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, domain.SessionStatusActive, session.Status)
	f.sessionRepo.AssertExpectations(t)
}

func TestSimulationService_Start_InactivePersona(t *testing.T) {
	f := newSimFixture()
	persona := testPersona()
	persona.IsActive = false

	f.personaRepo.On("GetByID", mock.Anything, persona.ID).Return(persona, nil)

	session, err := f.svc.Start(context.Background(), uuid.New(), persona.ID)

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrPersonaInactive)
}

func TestSimulationService_SendMessage_ChatReply(t *testing.T) {
	f := newSimFixture()
	persona := testPersona()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:        uuid.New(),
		UserID:    userID,
		PersonaID: persona.ID,
		Status:    domain.SessionStatusActive,
	}

	reply := "Oi! Tudo bem sim.\n\nMas me conta, quanto custa esse curso?"

	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.personaRepo.On("GetByID", mock.Anything, persona.ID).Return(persona, nil)
	f.sessionRepo.On("AppendMessage", mock.Anything, mock.AnythingOfType("*domain.SimulationMessage")).Return(nil)
	f.sessionRepo.On("ListMessages", mock.Anything, session.ID).Return([]domain.SimulationMessage{
		{Sender: domain.SenderTrainee, Content: "Olá, tudo bem?", Seq: 1},
	}, nil)
	f.model.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&port.ChatResult{Text: reply, Model: "claude-sonnet-4-20250514"}, nil)

	result, err := f.svc.SendMessage(context.Background(), userID, session.ID, service.SendMessageInput{
		Content: "Olá, tudo bem?",
	})

	require.NoError(t, err)
	assert.Nil(t, result.Evaluation)
	assert.Equal(t, []string{"Oi! Tudo bem sim.", "Mas me conta, quanto custa esse curso?"}, result.Chunks)
	assert.Equal(t, "claude-sonnet-4-20250514", result.ModelUsed)
	// Trainee message in, client reply out.
	f.sessionRepo.AssertNumberOfCalls(t, "AppendMessage", 2)
}

func TestSimulationService_SendMessage_FinalReport(t *testing.T) {
	f := newSimFixture()
	persona := testPersona()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:        uuid.New(),
		UserID:    userID,
		PersonaID: persona.ID,
		Status:    domain.SessionStatusActive,
	}

	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.personaRepo.On("GetByID", mock.Anything, persona.ID).Return(persona, nil)
	f.sessionRepo.On("AppendMessage", mock.Anything, mock.AnythingOfType("*domain.SimulationMessage")).Return(nil)
	f.sessionRepo.On("ListMessages", mock.Anything, session.ID).Return([]domain.SimulationMessage{
		{Sender: domain.SenderTrainee, Content: "Vou deixar você pensar então.", Seq: 1},
	}, nil)
	f.model.On("Complete", mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Return(&port.ChatResult{Text: finalReport, Model: "gpt-4o"}, nil)
	f.evalRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Evaluation")).Return(nil)
	f.storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return(&port.UploadOutput{Location: "s3://test-transcripts/x"}, nil)
	f.sessionRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.SimulationSession")).Return(nil)

	result, err := f.svc.SendMessage(context.Background(), userID, session.ID, service.SendMessageInput{
		Content: "Vou deixar você pensar então.",
	})

	require.NoError(t, err)
	assert.Nil(t, result.Chunks)
	require.NotNil(t, result.Evaluation)
	assert.Equal(t, "venda_nao_realizada", string(result.Evaluation.Outcome))
	assert.Equal(t, "gpt-4o", result.ModelUsed)

	assert.Equal(t, domain.SessionStatusCompleted, session.Status)
	require.NotNil(t, session.Outcome)
	assert.Equal(t, domain.OutcomeSaleLost, *session.Outcome)
	assert.Equal(t, "gpt-4o", session.ModelUsed)
	assert.NotNil(t, session.CompletedAt)

	f.evalRepo.AssertExpectations(t)
	f.storage.AssertExpectations(t)
	f.sessionRepo.AssertExpectations(t)
}

func TestSimulationService_SendMessage_PersistenceFailureStillReturnsEvaluation(t *testing.T) {
	f := newSimFixture()
	persona := testPersona()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:        uuid.New(),
		UserID:    userID,
		PersonaID: persona.ID,
		Status:    domain.SessionStatusActive,
	}

	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.personaRepo.On("GetByID", mock.Anything, persona.ID).Return(persona, nil)
	f.sessionRepo.On("AppendMessage", mock.Anything, mock.Anything).Return(nil)
	f.sessionRepo.On("ListMessages", mock.Anything, session.ID).Return([]domain.SimulationMessage{}, nil)
	f.model.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(&port.ChatResult{Text: finalReport, Model: "gpt-4o"}, nil)
	f.evalRepo.On("Create", mock.Anything, mock.Anything).Return(assert.AnError)
	f.storage.On("Upload", mock.Anything, mock.Anything).Return(nil, assert.AnError)
	f.sessionRepo.On("Update", mock.Anything, mock.Anything).Return(assert.AnError)

	result, err := f.svc.SendMessage(context.Background(), userID, session.ID, service.SendMessageInput{
		Content: "Tchau.",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Evaluation)
}

func TestSimulationService_SendMessage_EmptyContent(t *testing.T) {
	f := newSimFixture()

	result, err := f.svc.SendMessage(context.Background(), uuid.New(), uuid.New(), service.SendMessageInput{
		Content: "   \n\t ",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrEmptyMessage)
}

func TestSimulationService_SendMessage_NotOwner(t *testing.T) {
	f := newSimFixture()
	session := &domain.SimulationSession{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Status: domain.SessionStatusActive,
	}
	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	result, err := f.svc.SendMessage(context.Background(), uuid.New(), session.ID, service.SendMessageInput{
		Content: "Olá",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestSimulationService_SendMessage_CompletedSession(t *testing.T) {
	f := newSimFixture()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.SessionStatusCompleted,
	}
	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	result, err := f.svc.SendMessage(context.Background(), userID, session.ID, service.SendMessageInput{
		Content: "Olá",
	})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrSessionCompleted)
}

func TestSimulationService_Abandon(t *testing.T) {
	f := newSimFixture()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.SessionStatusActive,
	}
	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.sessionRepo.On("Update", mock.Anything, session).Return(nil)

	err := f.svc.Abandon(context.Background(), userID, session.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusAbandoned, session.Status)
	assert.NotNil(t, session.CompletedAt)
}

func TestSimulationService_Abandon_AlreadyCompleted(t *testing.T) {
	f := newSimFixture()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.SessionStatusCompleted,
	}
	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)

	err := f.svc.Abandon(context.Background(), userID, session.ID)

	assert.ErrorIs(t, err, domain.ErrSessionCompleted)
}

func TestSimulationService_GetEvaluation_IncludesTranscriptURL(t *testing.T) {
	f := newSimFixture()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:         uuid.New(),
		UserID:     userID,
		Status:     domain.SessionStatusCompleted,
		ArchiveKey: "transcripts/abc/def.json",
	}
	eval := &domain.Evaluation{SessionID: session.ID, UserID: userID, Outcome: domain.OutcomeSaleClosed}

	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.evalRepo.On("GetBySessionID", mock.Anything, session.ID).Return(eval, nil)
	f.storage.On("GetPresignedURL", mock.Anything, "test-transcripts", session.ArchiveKey, mock.AnythingOfType("int64")).
		Return("https://s3.test/signed", nil)

	got, err := f.svc.GetEvaluation(context.Background(), userID, session.ID)

	require.NoError(t, err)
	assert.Equal(t, "https://s3.test/signed", got.TranscriptURL)
	f.storage.AssertExpectations(t)
}

func TestSimulationService_GetEvaluation_PresignFailureStillReturnsEvaluation(t *testing.T) {
	f := newSimFixture()
	userID := uuid.New()
	session := &domain.SimulationSession{
		ID:         uuid.New(),
		UserID:     userID,
		Status:     domain.SessionStatusCompleted,
		ArchiveKey: "transcripts/abc/def.json",
	}
	eval := &domain.Evaluation{SessionID: session.ID, UserID: userID, Outcome: domain.OutcomeSaleLost}

	f.sessionRepo.On("GetByID", mock.Anything, session.ID).Return(session, nil)
	f.evalRepo.On("GetBySessionID", mock.Anything, session.ID).Return(eval, nil)
	f.storage.On("GetPresignedURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", assert.AnError)

	got, err := f.svc.GetEvaluation(context.Background(), userID, session.ID)

	require.NoError(t, err)
	assert.Empty(t, got.TranscriptURL)
}
