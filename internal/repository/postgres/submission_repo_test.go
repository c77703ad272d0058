package postgres

import (
	"context"
	"database/sql"
	"testing"

	"talktrack/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var submissionRowColumns = []string{"id", "session_id", "event_id", "state", "name_used", "notes"}

func TestSubmissionRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr error
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO submissions`).
					WithArgs("", "s-1", "ev-1", "submitted", "Go at scale", "").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("sub-1"))
			},
			wantID: "sub-1",
		},
		{
			name: "duplicate pair",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO submissions`).
					WillReturnError(&pq.Error{Code: "23505"})
			},
			wantErr: domain.ErrConflict,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO submissions`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: sql.ErrConnDone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSubmissionRepository(db)
			sub := domain.NewSubmission("s-1", "ev-1", "Go at scale")
			err = repo.Create(ctx, sub)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, sub.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmissionRepository_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		filter domain.SubmissionFilter
		mock   func(mock sqlmock.Sqlmock)
	}{
		{
			name:   "no filter",
			filter: domain.SubmissionFilter{},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM submissions ORDER BY created_at, id`).
					WithArgs().
					WillReturnRows(sqlmock.NewRows(submissionRowColumns).AddRow("sub-1", "s-1", "ev-1", "selected", "Go", ""))
			},
		},
		{
			name:   "by event and session",
			filter: domain.SubmissionFilter{EventID: "ev-1", SessionID: "s-1"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT .* FROM submissions WHERE event_id = \$1 AND session_id = \$2`).
					WithArgs("ev-1", "s-1").
					WillReturnRows(sqlmock.NewRows(submissionRowColumns).AddRow("sub-1", "s-1", "ev-1", "selected", "Go", ""))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSubmissionRepository(db)
			subs, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			require.Len(t, subs, 1)
			require.Equal(t, domain.StateSelected, subs[0].State)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSubmissionRepository_GetByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM submissions WHERE id = \$1`).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err = NewSubmissionRepository(db).GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
