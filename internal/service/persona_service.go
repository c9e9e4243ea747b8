package service

import (
	"context"

	"github.com/google/uuid"

	"vendasim/internal/domain"
	"vendasim/internal/port"
)

// CreatePersonaInput is the DTO for creating a persona.
type CreatePersonaInput struct {
	Name          string                   `json:"name" binding:"required"`
	Course        string                   `json:"course" binding:"required"`
	LifeSituation string                   `json:"life_situation" binding:"required"`
	Seeks         string                   `json:"seeks" binding:"required"`
	Fear          string                   `json:"fear" binding:"required"`
	Behavior      string                   `json:"behavior" binding:"required"`
	Difficulty    domain.PersonaDifficulty `json:"difficulty" binding:"required"`
	IsBoss        bool                     `json:"is_boss"`
}

// UpdatePersonaInput is the DTO for updating a persona.
type UpdatePersonaInput struct {
	Name          *string                   `json:"name"`
	Course        *string                   `json:"course"`
	LifeSituation *string                   `json:"life_situation"`
	Seeks         *string                   `json:"seeks"`
	Fear          *string                   `json:"fear"`
	Behavior      *string                   `json:"behavior"`
	Difficulty    *domain.PersonaDifficulty `json:"difficulty"`
	IsBoss        *bool                     `json:"is_boss"`
	IsActive      *bool                     `json:"is_active"`
}

// PersonaService defines the persona management contract.
type PersonaService interface {
	Create(ctx context.Context, createdBy uuid.UUID, input CreatePersonaInput) (*domain.Persona, error)
	GetByID(ctx context.Context, personaID uuid.UUID) (*domain.Persona, error)
	List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Persona, int, error)
	Update(ctx context.Context, personaID uuid.UUID, input UpdatePersonaInput) (*domain.Persona, error)
	Delete(ctx context.Context, personaID uuid.UUID) error
}

type personaService struct {
	repo port.PersonaRepository
}

// NewPersonaService creates a new PersonaService implementation.
func NewPersonaService(repo port.PersonaRepository) PersonaService {
	return &personaService{repo: repo}
}

func (s *personaService) Create(ctx context.Context, createdBy uuid.UUID, input CreatePersonaInput) (*domain.Persona, error) {
	persona := &domain.Persona{
		Name:          input.Name,
		Course:        input.Course,
		LifeSituation: input.LifeSituation,
		Seeks:         input.Seeks,
		Fear:          input.Fear,
		Behavior:      input.Behavior,
		Difficulty:    input.Difficulty,
		IsBoss:        input.IsBoss,
		IsActive:      true,
		CreatedBy:     createdBy,
	}
	if persona.IsBoss {
		persona.Difficulty = domain.DifficultyBoss
	}

	if err := s.repo.Create(ctx, persona); err != nil {
		return nil, err
	}
	return persona, nil
}

func (s *personaService) GetByID(ctx context.Context, personaID uuid.UUID) (*domain.Persona, error) {
	return s.repo.GetByID(ctx, personaID)
}

func (s *personaService) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Persona, int, error) {
	return s.repo.List(ctx, activeOnly, offset, limit)
}

func (s *personaService) Update(ctx context.Context, personaID uuid.UUID, input UpdatePersonaInput) (*domain.Persona, error) {
	persona, err := s.repo.GetByID(ctx, personaID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		persona.Name = *input.Name
	}
	if input.Course != nil {
		persona.Course = *input.Course
	}
	if input.LifeSituation != nil {
		persona.LifeSituation = *input.LifeSituation
	}
	if input.Seeks != nil {
		persona.Seeks = *input.Seeks
	}
	if input.Fear != nil {
		persona.Fear = *input.Fear
	}
	if input.Behavior != nil {
		persona.Behavior = *input.Behavior
	}
	if input.Difficulty != nil {
		persona.Difficulty = *input.Difficulty
	}
	if input.IsBoss != nil {
		persona.IsBoss = *input.IsBoss
	}
	if input.IsActive != nil {
		persona.IsActive = *input.IsActive
	}

	if err := s.repo.Update(ctx, persona); err != nil {
		return nil, err
	}
	return persona, nil
}

func (s *personaService) Delete(ctx context.Context, personaID uuid.UUID) error {
	return s.repo.Delete(ctx, personaID)
}
