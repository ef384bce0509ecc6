package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-eas-suite/models"
)

const capturesTable = "captures"

var captureColumns = []string{
	"run_id",
	"run_label",
	"protocol",
	"requirement_id",
	"description",
	"verdict",
	"detail",
	"captured_at",
}

func buildSaveCaptureQuery(format sq.PlaceholderFormat, c models.Capture) (string, []any, error) {
	return sq.Insert(capturesTable).
		Columns(captureColumns...).
		Values(
			c.RunID,
			c.RunLabel,
			c.Protocol,
			c.RequirementID,
			c.Description,
			string(c.Verdict),
			c.Detail,
			c.CapturedAt.UTC(),
		).
		PlaceholderFormat(format).
		ToSql()
}

func buildListCapturesQuery(format sq.PlaceholderFormat, runID string) (string, []any, error) {
	return sq.Select(captureColumns...).
		From(capturesTable).
		Where(sq.Eq{"run_id": runID}).
		OrderBy("captured_at", "requirement_id").
		PlaceholderFormat(format).
		ToSql()
}

func buildSummarizeQuery(format sq.PlaceholderFormat, runID string) (string, []any, error) {
	return sq.Select("verdict", "COUNT(*)").
		From(capturesTable).
		Where(sq.Eq{"run_id": runID}).
		GroupBy("verdict").
		PlaceholderFormat(format).
		ToSql()
}
