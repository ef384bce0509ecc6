package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
	"github.com/MKhiriev/go-eas-suite/models"
)

// captureRepository is the database/sql implementation of
// [CaptureRepository], shared by PostgreSQL and SQLite.
type captureRepository struct {
	*DB
	logger *logger.Logger
}

// NewCaptureRepository constructs a [CaptureRepository] over db.
func NewCaptureRepository(db *DB, log *logger.Logger) CaptureRepository {
	return &captureRepository{
		DB:     db,
		logger: log,
	}
}

// Save inserts one capture. A retryable driver error is retried once.
func (r *captureRepository) Save(ctx context.Context, capture models.Capture) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSaveCaptureQuery(r.placeholders(), capture)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	for attempt := 0; ; attempt++ {
		err = r.insert(ctx, query, args)
		if err == nil {
			return nil
		}

		switch r.classify(err) {
		case Duplicate:
			return fmt.Errorf("%w: %s/%s", ErrDuplicateCapture, capture.RunID, capture.RequirementID)
		case Retryable:
			if attempt == 0 {
				log.Warn().Err(err).
					Str("func", "captureRepository.Save").
					Str("requirement", capture.RequirementID).
					Msg("retrying capture insert")
				continue
			}
		}

		log.Err(err).
			Str("func", "captureRepository.Save").
			Str("run_id", capture.RunID).
			Str("requirement", capture.RequirementID).
			Msg("failed to save capture")
		return err
	}
}

func (r *captureRepository) insert(ctx context.Context, query string, args []any) error {
	result, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrCaptureNotSaved
	}
	return nil
}

// ListByRun returns the captures of runID.
func (r *captureRepository) ListByRun(ctx context.Context, runID string) ([]models.Capture, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListCapturesQuery(r.placeholders(), runID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "captureRepository.ListByRun").
			Str("run_id", runID).
			Msg("failed to execute query for listing captures")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	captures := make([]models.Capture, 0, 16)
	for rows.Next() {
		var (
			c       models.Capture
			verdict string
		)
		if err = rows.Scan(
			&c.RunID,
			&c.RunLabel,
			&c.Protocol,
			&c.RequirementID,
			&c.Description,
			&verdict,
			&c.Detail,
			&c.CapturedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		c.Verdict = models.Verdict(verdict)
		captures = append(captures, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return captures, nil
}

// Summarize counts the verdicts of runID.
func (r *captureRepository) Summarize(ctx context.Context, runID string) (models.CaptureSummary, error) {
	summary := models.CaptureSummary{RunID: runID}

	query, args, err := buildSummarizeQuery(r.placeholders(), runID)
	if err != nil {
		return summary, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "captureRepository.Summarize").
			Str("run_id", runID).
			Msg("failed to execute summary query")
		return summary, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			verdict string
			count   int
		)
		if err = rows.Scan(&verdict, &count); err != nil {
			return summary, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		summary.Add(models.Verdict(verdict), count)
	}
	if err = rows.Err(); err != nil {
		return summary, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return summary, nil
}

func (r *captureRepository) classify(err error) ErrorClassification {
	if r.errorClassificator == nil {
		return NonRetryable
	}
	return r.errorClassificator.Classify(err)
}
