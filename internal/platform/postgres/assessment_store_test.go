package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulsecheck-app/pulsecheck-api/internal/domain"
	"github.com/pulsecheck-app/pulsecheck-api/internal/store"
)

const assessmentColumnsQuery = "SELECT id, user_id, occurred_at, mood, stress, workload, notes"

func newAssessmentStoreForTest(t *testing.T) (*AssessmentStore, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAssessmentStore(db, nil), mock, db
}

func newTestAssessment(t *testing.T) *domain.Assessment {
	t.Helper()
	occurredAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	a, err := domain.NewAssessment(uuid.New(), occurredAt, 3, 4, 2, "semana corrida")
	require.NoError(t, err)
	return a
}

func assessmentRows(assessments ...*domain.Assessment) *sqlmock.Rows {
	rows := sqlmock.NewRows(
		[]string{"id", "user_id", "occurred_at", "mood", "stress", "workload", "notes"})
	for _, a := range assessments {
		rows.AddRow(a.ID.String(), a.UserID.String(), a.OccurredAt,
			a.Mood, a.Stress, a.Workload, a.Notes)
	}
	return rows
}

func TestAssessmentStoreCreate(t *testing.T) {
	t.Parallel()
	s, mock, _ := newAssessmentStoreForTest(t)
	a := newTestAssessment(t)

	mock.ExpectExec("INSERT INTO assessments").
		WithArgs(a.ID, a.UserID, a.OccurredAt, a.Mood, a.Stress, a.Workload, a.Notes).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Create(context.Background(), a))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentStoreCreateUnknownUser(t *testing.T) {
	t.Parallel()
	s, mock, _ := newAssessmentStoreForTest(t)
	a := newTestAssessment(t)

	mock.ExpectExec("INSERT INTO assessments").
		WillReturnError(&pgconn.PgError{Code: pgForeignKeyViolationCode})

	err := s.Create(context.Background(), a)
	require.ErrorIs(t, err, store.ErrInvalidEntity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentStoreGetByID(t *testing.T) {
	t.Parallel()
	s, mock, _ := newAssessmentStoreForTest(t)
	a := newTestAssessment(t)

	mock.ExpectQuery(assessmentColumnsQuery).
		WithArgs(a.ID).
		WillReturnRows(assessmentRows(a))

	got, err := s.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, got.ID)
	assert.Equal(t, a.UserID, got.UserID)
	assert.Equal(t, time.UTC, got.OccurredAt.Location())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentStoreGetByIDNotFound(t *testing.T) {
	t.Parallel()
	s, mock, _ := newAssessmentStoreForTest(t)
	id := uuid.New()

	mock.ExpectQuery(assessmentColumnsQuery).
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetByID(context.Background(), id)
	require.ErrorIs(t, err, store.ErrAssessmentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentStoreListByUserSince(t *testing.T) {
	t.Parallel()
	s, mock, _ := newAssessmentStoreForTest(t)
	a := newTestAssessment(t)
	since := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(assessmentColumnsQuery).
		WithArgs(a.UserID, since, until).
		WillReturnRows(assessmentRows(a))

	got, err := s.ListByUserSince(context.Background(), a.UserID, since, until)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, a.ID, got[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentStoreListByMonth(t *testing.T) {
	t.Parallel()
	s, mock, _ := newAssessmentStoreForTest(t)
	first := newTestAssessment(t)
	second := newTestAssessment(t)
	second.OccurredAt = first.OccurredAt.AddDate(0, 0, 5)

	// The month boundary is the half-open UTC interval
	// [startOfMonth, startOfNextMonth).
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(assessmentColumnsQuery).
		WithArgs(start, end).
		WillReturnRows(assessmentRows(first, second))

	got, err := s.ListByMonth(context.Background(), 2025, 3)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, first.ID, got[0].ID)
	assert.Equal(t, second.ID, got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAssessmentStoreWithTx(t *testing.T) {
	t.Parallel()
	s, mock, db := newAssessmentStoreForTest(t)
	a := newTestAssessment(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO assessments").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := store.RunInTransaction(context.Background(), db,
		func(ctx context.Context, tx *sql.Tx) error {
			return s.WithTx(tx).Create(ctx, a)
		})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
