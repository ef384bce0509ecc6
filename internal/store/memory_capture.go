package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/MKhiriev/go-eas-suite/models"
)

type captureKey struct {
	runID         string
	requirementID string
}

// memoryCaptureRepository keeps captures in process memory. It backs runs
// started without a capture DSN.
type memoryCaptureRepository struct {
	mu       sync.RWMutex
	captures map[captureKey]models.Capture
}

// NewMemoryCaptureRepository constructs an empty in-memory
// [CaptureRepository].
func NewMemoryCaptureRepository() CaptureRepository {
	return &memoryCaptureRepository{
		captures: make(map[captureKey]models.Capture),
	}
}

func (m *memoryCaptureRepository) Save(_ context.Context, capture models.Capture) error {
	key := captureKey{runID: capture.RunID, requirementID: capture.RequirementID}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.captures[key]; ok {
		return fmt.Errorf("%w: %s/%s", ErrDuplicateCapture, capture.RunID, capture.RequirementID)
	}
	m.captures[key] = capture
	return nil
}

func (m *memoryCaptureRepository) ListByRun(_ context.Context, runID string) ([]models.Capture, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	captures := make([]models.Capture, 0, len(m.captures))
	for key, c := range m.captures {
		if key.runID == runID {
			captures = append(captures, c)
		}
	}
	sort.Slice(captures, func(i, j int) bool {
		if !captures[i].CapturedAt.Equal(captures[j].CapturedAt) {
			return captures[i].CapturedAt.Before(captures[j].CapturedAt)
		}
		return captures[i].RequirementID < captures[j].RequirementID
	})
	return captures, nil
}

func (m *memoryCaptureRepository) Summarize(_ context.Context, runID string) (models.CaptureSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summary := models.CaptureSummary{RunID: runID}
	for key, c := range m.captures {
		if key.runID == runID {
			summary.Add(c.Verdict, 1)
		}
	}
	return summary, nil
}
