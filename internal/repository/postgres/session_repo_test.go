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

var sessionRowColumns = []string{
	"id", "name", "alternate_names", "level", "session_type", "abstract", "summary", "goals",
	"elevator_pitch", "retired", "materials_url", "target_audience", "primary_technology",
	"additional_technology", "equipment_notes",
}

func TestSessionRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		session *domain.Session
		mock    func(mock sqlmock.Sqlmock)
		wantID  string
		wantErr bool
	}{
		{
			name:    "success",
			session: domain.NewSession("Go at scale", "300"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO talk_sessions`).
					WithArgs("", "Go at scale", sqlmock.AnyArg(), "300", domain.DefaultSessionType, "", "", "",
						"", false, "", sqlmock.AnyArg(), "", "", "").
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s-1"))
			},
			wantID: "s-1",
		},
		{
			name:    "db error",
			session: domain.NewSession("Broken", "100"),
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO talk_sessions`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSessionRepository(db)
			err = repo.Create(ctx, tt.session)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.session.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSessionRepository_List(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT .* FROM talk_sessions ORDER BY created_at, id`).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns).
			AddRow("s-1", "Go at scale", "{Scaling Go}", "300", domain.DefaultSessionType, "", "", "",
				"", false, "", "{developers,devops}", "Go", "", "").
			AddRow("s-2", "Intro", "{}", "100", "Keynote", "", "", "",
				"", true, "", "{}", "", "", ""))

	repo := NewSessionRepository(db)
	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, []string{"Scaling Go"}, sessions[0].AlternateNames)
	require.Equal(t, []string{"developers", "devops"}, sessions[0].TargetAudience)
	require.NotNil(t, sessions[1].AlternateNames)
	require.Empty(t, sessions[1].AlternateNames)
	require.True(t, sessions[1].Retired)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepository_Update(t *testing.T) {
	ctx := context.Background()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	s := domain.NewSession("Go at scale", "300")
	s.ID = "s-1"
	s.TargetAudience = []string{"developers"}
	mock.ExpectExec(`UPDATE talk_sessions SET`).
		WithArgs("s-1", "Go at scale", pq.Array([]string{}), "300", domain.DefaultSessionType,
			"", "", "", "", false,
			"", pq.Array([]string{"developers"}), "",
			"", "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewSessionRepository(db)
	require.NoError(t, repo.Update(ctx, s))
	require.NoError(t, mock.ExpectationsWereMet())
}
