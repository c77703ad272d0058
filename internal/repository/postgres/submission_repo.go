package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"talktrack/internal/domain"
)

type submissionRepository struct {
	DB *sql.DB
}

func NewSubmissionRepository(db *sql.DB) domain.SubmissionRepository {
	return &submissionRepository{
		DB: db,
	}
}

const submissionColumns = `id, session_id, event_id, state, name_used, notes`

func scanSubmission(row scanner) (*domain.Submission, error) {
	s := &domain.Submission{}
	var state string
	if err := row.Scan(&s.ID, &s.SessionID, &s.EventID, &state, &s.NameUsed, &s.Notes); err != nil {
		return nil, err
	}
	s.State = domain.SubmissionState(state)
	return s, nil
}

func (r *submissionRepository) Create(ctx context.Context, s *domain.Submission) error {
	query := `
		INSERT INTO submissions (id, session_id, event_id, state, name_used, notes)
		VALUES (COALESCE(NULLIF($1, ''), gen_random_uuid()::text), $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query, s.ID, s.SessionID, s.EventID, string(s.State), s.NameUsed, s.Notes).Scan(&s.ID)
	if isUniqueViolation(err) {
		return domain.ErrConflict
	}
	return err
}

func (r *submissionRepository) GetByID(ctx context.Context, id string) (*domain.Submission, error) {
	query := `SELECT ` + submissionColumns + ` FROM submissions WHERE id = $1`
	s, err := scanSubmission(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *submissionRepository) List(ctx context.Context, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	return listSubmissions(ctx, r.DB, filter)
}

func listSubmissions(ctx context.Context, q queryer, filter domain.SubmissionFilter) ([]*domain.Submission, error) {
	var where []string
	var args []any
	if filter.EventID != "" {
		args = append(args, filter.EventID)
		where = append(where, "event_id = $"+strconv.Itoa(len(args)))
	}
	if filter.SessionID != "" {
		args = append(args, filter.SessionID)
		where = append(where, "session_id = $"+strconv.Itoa(len(args)))
	}
	query := `SELECT ` + submissionColumns + ` FROM submissions`
	if len(where) > 0 {
		query += ` WHERE ` + strings.Join(where, " AND ")
	}
	query += ` ORDER BY created_at, id`

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	subs := make([]*domain.Submission, 0)
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, rows.Err()
}

func (r *submissionRepository) Update(ctx context.Context, s *domain.Submission) error {
	query := `UPDATE submissions SET state = $2, name_used = $3, notes = $4 WHERE id = $1`
	res, err := r.DB.ExecContext(ctx, query, s.ID, string(s.State), s.NameUsed, s.Notes)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *submissionRepository) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM submissions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}
