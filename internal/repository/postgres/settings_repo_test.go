package postgres

import (
	"context"
	"database/sql"
	"testing"

	"talktrack/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepository_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		mock func(mock sqlmock.Sqlmock)
		want domain.Settings
	}{
		{
			name: "no row yields defaults",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM settings WHERE id = 1`).WillReturnError(sql.ErrNoRows)
			},
			want: domain.DefaultSettings(),
		},
		{
			name: "partial row layered over defaults",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT data FROM settings WHERE id = 1`).
					WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"maxEventsPerMonth":2,"dateFormat":"bogus"}`)))
			},
			want: func() domain.Settings {
				s := domain.DefaultSettings()
				s.MaxEventsPerMonth = 2
				return s
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			got, err := NewSettingsRepository(db).Get(ctx)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSettingsRepository_Save(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO settings \(id, data\) VALUES \(1, \$1\)`).
		WithArgs(sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewSettingsRepository(db).Save(context.Background(), domain.DefaultSettings()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotReader_Snapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT .* FROM events`).
		WillReturnRows(sqlmock.NewRows(eventRowColumns).AddRow(
			"ev-1", "GopherCon", "", "", false, "2026-06-01", "", "", "", "", `[]`, `[]`, false, false, false, ""))
	mock.ExpectQuery(`SELECT .* FROM talk_sessions`).
		WillReturnRows(sqlmock.NewRows(sessionRowColumns))
	mock.ExpectQuery(`SELECT .* FROM submissions`).
		WillReturnRows(sqlmock.NewRows(submissionRowColumns))
	mock.ExpectCommit()

	snap, err := NewSnapshotReader(db).Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, snap.Events, 1)
	require.Empty(t, snap.Sessions)
	require.NotNil(t, snap.Submissions)
	require.NoError(t, mock.ExpectationsWereMet())
}
