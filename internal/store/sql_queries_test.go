// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-eas-suite/models"
)

func Test_buildSaveCaptureQuery(t *testing.T) {
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.FixedZone("X", 3600))
	c := models.Capture{
		RunID:         "run-1",
		RunLabel:      "nightly",
		Protocol:      "MS-ASCMD",
		RequirementID: "R100",
		Description:   "FolderSync status",
		Verdict:       models.VerdictPassed,
		Detail:        "ok",
		CapturedAt:    at,
	}

	tests := []struct {
		name        string
		format      sq.PlaceholderFormat
		placeholder string
	}{
		{name: "postgres", format: sq.Dollar, placeholder: "$8"},
		{name: "sqlite", format: sq.Question, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSaveCaptureQuery(tt.format, c)
			require.NoError(t, err)

			q := strings.ToLower(query)
			assert.True(t, strings.HasPrefix(q, "insert into captures"))
			for _, col := range captureColumns {
				assert.Contains(t, q, col)
			}
			assert.Contains(t, query, tt.placeholder)

			require.Len(t, args, len(captureColumns))
			assert.Equal(t, "run-1", args[0])
			assert.Equal(t, "passed", args[5])
			assert.Equal(t, at.UTC(), args[7])
		})
	}
}

func Test_buildListCapturesQuery(t *testing.T) {
	query, args, err := buildListCapturesQuery(sq.Dollar, "run-1")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from captures")
	assert.Contains(t, q, "where run_id = $1")
	assert.Contains(t, q, "order by captured_at, requirement_id")
	assert.Equal(t, []any{"run-1"}, args)
}

func Test_buildSummarizeQuery(t *testing.T) {
	query, args, err := buildSummarizeQuery(sq.Question, "run-2")
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "count(*)")
	assert.Contains(t, q, "where run_id = ?")
	assert.Contains(t, q, "group by verdict")
	assert.Equal(t, []any{"run-2"}, args)
}
