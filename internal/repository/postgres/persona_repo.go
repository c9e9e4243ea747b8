package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"vendasim/internal/domain"
	"vendasim/internal/port"
)

type personaRepo struct {
	db *sqlx.DB
}

// NewPersonaRepo creates a new PostgreSQL-backed PersonaRepository.
func NewPersonaRepo(db *sqlx.DB) port.PersonaRepository {
	return &personaRepo{db: db}
}

func (r *personaRepo) Create(ctx context.Context, persona *domain.Persona) error {
	persona.ID = uuid.New()
	now := time.Now().UTC()
	persona.CreatedAt = now
	persona.UpdatedAt = now

	query := `INSERT INTO personas (id, name, course, life_situation, seeks, fear, behavior,
		difficulty, is_boss, is_active, created_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.ExecContext(ctx, query,
		persona.ID, persona.Name, persona.Course, persona.LifeSituation, persona.Seeks,
		persona.Fear, persona.Behavior, persona.Difficulty, persona.IsBoss,
		persona.IsActive, persona.CreatedBy, persona.CreatedAt, persona.UpdatedAt)
	if err != nil {
		return fmt.Errorf("personaRepo.Create: %w", err)
	}
	return nil
}

func (r *personaRepo) GetByID(ctx context.Context, personaID uuid.UUID) (*domain.Persona, error) {
	var persona domain.Persona
	err := r.db.GetContext(ctx, &persona, "SELECT * FROM personas WHERE id = $1", personaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("personaRepo.GetByID: %w", err)
	}
	return &persona, nil
}

func (r *personaRepo) List(ctx context.Context, activeOnly bool, offset, limit int) ([]domain.Persona, int, error) {
	where := ""
	if activeOnly {
		where = "WHERE is_active"
	}

	var total int
	err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM personas "+where)
	if err != nil {
		return nil, 0, fmt.Errorf("personaRepo.List count: %w", err)
	}

	var personas []domain.Persona
	err = r.db.SelectContext(ctx, &personas,
		"SELECT * FROM personas "+where+" ORDER BY difficulty, name LIMIT $1 OFFSET $2",
		limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("personaRepo.List: %w", err)
	}
	return personas, total, nil
}

func (r *personaRepo) Update(ctx context.Context, persona *domain.Persona) error {
	persona.UpdatedAt = time.Now().UTC()
	query := `UPDATE personas SET name = $1, course = $2, life_situation = $3, seeks = $4,
		fear = $5, behavior = $6, difficulty = $7, is_boss = $8, is_active = $9, updated_at = $10
		WHERE id = $11`
	result, err := r.db.ExecContext(ctx, query,
		persona.Name, persona.Course, persona.LifeSituation, persona.Seeks, persona.Fear,
		persona.Behavior, persona.Difficulty, persona.IsBoss, persona.IsActive,
		persona.UpdatedAt, persona.ID)
	if err != nil {
		return fmt.Errorf("personaRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *personaRepo) Delete(ctx context.Context, personaID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM personas WHERE id = $1", personaID)
	if err != nil {
		return fmt.Errorf("personaRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
