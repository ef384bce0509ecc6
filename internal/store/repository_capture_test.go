package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/migrations"
	"github.com/MKhiriev/go-eas-suite/models"
)

func newTestCaptureRepo(t *testing.T) (*captureRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	l := logger.Nop()
	repo := &captureRepository{
		DB: &DB{
			DB:                 db,
			dialect:            migrations.DialectPostgres,
			errorClassificator: NewPostgresErrorClassifier(),
			logger:             l,
		},
		logger: l,
	}
	return repo, mock, db
}

func testCapture() models.Capture {
	return models.Capture{
		RunID:         "run-1",
		Protocol:      "MS-ASCMD",
		RequirementID: "R1",
		Verdict:       models.VerdictPassed,
		CapturedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func expectInsert(mock sqlmock.Sqlmock) *sqlmock.ExpectedExec {
	return mock.ExpectExec("INSERT INTO captures").
		WithArgs("run-1", "", "MS-ASCMD", "R1", "", "passed", "", sqlmock.AnyArg())
}

func TestCaptureRepository_Save(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	expectInsert(mock).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), testCapture()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptureRepository_Save_Duplicate(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	expectInsert(mock).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Save(context.Background(), testCapture())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCapture)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptureRepository_Save_RetriesOnce(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	expectInsert(mock).WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	expectInsert(mock).WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), testCapture()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptureRepository_Save_RetryableTwice(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	expectInsert(mock).WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})
	expectInsert(mock).WillReturnError(&pgconn.PgError{Code: pgerrcode.DeadlockDetected})

	err := repo.Save(context.Background(), testCapture())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCaptureRepository_Save_NoRowsAffected(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	expectInsert(mock).WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Save(context.Background(), testCapture())
	assert.ErrorIs(t, err, ErrCaptureNotSaved)
}

func TestCaptureRepository_ListByRun(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	at := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	rows := sqlmock.NewRows(captureColumns).
		AddRow("run-1", "nightly", "MS-ASCMD", "R1", "d1", "passed", "", at).
		AddRow("run-1", "nightly", "MS-ASCMD", "R2", "d2", "skipped", "no 16.1", at.Add(time.Second))

	mock.ExpectQuery("SELECT (.+) FROM captures WHERE run_id = \\$1").
		WithArgs("run-1").
		WillReturnRows(rows)

	got, err := repo.ListByRun(context.Background(), "run-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "R1", got[0].RequirementID)
	assert.Equal(t, models.VerdictSkipped, got[1].Verdict)
	assert.Equal(t, "no 16.1", got[1].Detail)
	assert.Equal(t, at, got[0].CapturedAt)
}

func TestCaptureRepository_ListByRun_QueryError(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT").WillReturnError(errors.New("boom"))

	_, err := repo.ListByRun(context.Background(), "run-1")
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestCaptureRepository_ListByRun_ScanError(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"run_id"}).AddRow("run-1")
	mock.ExpectQuery("SELECT").WillReturnRows(rows)

	_, err := repo.ListByRun(context.Background(), "run-1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestCaptureRepository_Summarize(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"verdict", "count"}).
		AddRow("passed", 3).
		AddRow("failed", 1).
		AddRow("skipped", 2)
	mock.ExpectQuery("SELECT verdict, COUNT\\(\\*\\) FROM captures").
		WithArgs("run-1").
		WillReturnRows(rows)

	got, err := repo.Summarize(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, models.CaptureSummary{RunID: "run-1", Passed: 3, Failed: 1, Skipped: 2}, got)
	assert.Equal(t, 6, got.Total())
}

func TestCaptureRepository_QuestionPlaceholders(t *testing.T) {
	repo, mock, db := newTestCaptureRepo(t)
	defer db.Close()
	repo.DB.dialect = migrations.DialectSQLite

	mock.ExpectQuery("WHERE run_id = \\?").
		WithArgs("run-9").
		WillReturnRows(sqlmock.NewRows([]string{"verdict", "count"}))

	got, err := repo.Summarize(context.Background(), "run-9")
	require.NoError(t, err)
	assert.Zero(t, got.Total())
}
