package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"talktrack/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{
		DB: db,
	}
}

const sessionColumns = `id, name, alternate_names, level, session_type, abstract, summary, goals,
		elevator_pitch, retired, materials_url, target_audience, primary_technology,
		additional_technology, equipment_notes`

func scanSession(row scanner) (*domain.Session, error) {
	s := &domain.Session{}
	err := row.Scan(
		&s.ID, &s.Name, pq.Array(&s.AlternateNames), &s.Level, &s.SessionType, &s.Abstract, &s.Summary, &s.Goals,
		&s.ElevatorPitch, &s.Retired, &s.MaterialsURL, pq.Array(&s.TargetAudience), &s.PrimaryTechnology,
		&s.AdditionalTechnology, &s.EquipmentNotes,
	)
	if err != nil {
		return nil, err
	}
	if s.AlternateNames == nil {
		s.AlternateNames = []string{}
	}
	if s.TargetAudience == nil {
		s.TargetAudience = []string{}
	}
	return s, nil
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.Session) error {
	query := `
		INSERT INTO talk_sessions (id, name, alternate_names, level, session_type, abstract, summary, goals,
			elevator_pitch, retired, materials_url, target_audience, primary_technology,
			additional_technology, equipment_notes)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		s.ID, s.Name, pq.Array(nonNil(s.AlternateNames)), s.Level, s.SessionType, s.Abstract, s.Summary, s.Goals,
		s.ElevatorPitch, s.Retired, s.MaterialsURL, pq.Array(nonNil(s.TargetAudience)), s.PrimaryTechnology,
		s.AdditionalTechnology, s.EquipmentNotes,
	).Scan(&s.ID)
}

func (r *sessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM talk_sessions WHERE id = $1`
	s, err := scanSession(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) List(ctx context.Context) ([]*domain.Session, error) {
	return listSessions(ctx, r.DB)
}

func listSessions(ctx context.Context, q queryer) ([]*domain.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM talk_sessions ORDER BY created_at, id`
	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sessions := make([]*domain.Session, 0)
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

func (r *sessionRepository) Update(ctx context.Context, s *domain.Session) error {
	query := `
		UPDATE talk_sessions SET name = $2, alternate_names = $3, level = $4, session_type = $5,
			abstract = $6, summary = $7, goals = $8, elevator_pitch = $9, retired = $10,
			materials_url = $11, target_audience = $12, primary_technology = $13,
			additional_technology = $14, equipment_notes = $15
		WHERE id = $1
	`
	res, err := r.DB.ExecContext(ctx, query,
		s.ID, s.Name, pq.Array(nonNil(s.AlternateNames)), s.Level, s.SessionType,
		s.Abstract, s.Summary, s.Goals, s.ElevatorPitch, s.Retired,
		s.MaterialsURL, pq.Array(nonNil(s.TargetAudience)), s.PrimaryTechnology,
		s.AdditionalTechnology, s.EquipmentNotes,
	)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

// Delete removes the session; its submissions go with it through ON DELETE CASCADE.
func (r *sessionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM talk_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
