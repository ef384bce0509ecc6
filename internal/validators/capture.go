package validators

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-eas-suite/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldRunID targets the run a capture belongs to.
	FieldRunID = "run_id"

	// FieldProtocol targets the protocol document name, e.g. MS-ASCMD.
	FieldProtocol = "protocol"

	// FieldRequirementID targets the requirement identifier.
	FieldRequirementID = "requirement_id"

	// FieldVerdict targets the recorded verdict.
	FieldVerdict = "verdict"

	// FieldCapturedAt targets the capture timestamp.
	FieldCapturedAt = "captured_at"
)

// maxIDLength matches the width of the identifier columns of the captures
// table.
const maxIDLength = 128

var allowedVerdicts = []models.Verdict{
	models.VerdictPassed,
	models.VerdictFailed,
	models.VerdictSkipped,
}

// CaptureValidator implements Validator for models.Requirement and
// models.Capture, in value and pointer form.
type CaptureValidator struct{}

func NewCaptureValidator() Validator {
	return &CaptureValidator{}
}

func (v *CaptureValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Requirement:
		return v.validateRequirement(ctx, value, fields...)
	case *models.Requirement:
		return v.validateRequirement(ctx, *value, fields...)

	case models.Capture:
		return v.validateCapture(ctx, value, fields...)
	case *models.Capture:
		return v.validateCapture(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CaptureValidator) validateRequirement(_ context.Context, req models.Requirement, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldProtocol, FieldRequirementID}
	}

	for _, f := range fields {
		switch f {
		case FieldProtocol:
			if err := checkIdentifier(req.Protocol, ErrEmptyProtocol); err != nil {
				return err
			}
		case FieldRequirementID:
			if err := checkIdentifier(req.ID, ErrInvalidRequirement); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

func (v *CaptureValidator) validateCapture(ctx context.Context, c models.Capture, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldRunID, FieldProtocol, FieldRequirementID, FieldVerdict, FieldCapturedAt}
	}

	for _, f := range fields {
		switch f {
		case FieldRunID:
			if err := checkIdentifier(c.RunID, ErrEmptyRunID); err != nil {
				return err
			}
		case FieldProtocol, FieldRequirementID:
			req := models.Requirement{Protocol: c.Protocol, ID: c.RequirementID}
			if err := v.validateRequirement(ctx, req, f); err != nil {
				return err
			}
		case FieldVerdict:
			if !slices.Contains(allowedVerdicts, c.Verdict) {
				return fmt.Errorf("%w: %q", ErrInvalidVerdict, c.Verdict)
			}
		case FieldCapturedAt:
			if c.CapturedAt.IsZero() {
				return ErrEmptyCapturedAt
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

// checkIdentifier rejects empty, overlong or whitespace-padded values.
func checkIdentifier(s string, sentinel error) error {
	if s == "" {
		return sentinel
	}
	if len(s) > maxIDLength || strings.TrimSpace(s) != s {
		return fmt.Errorf("%w: %q", sentinel, s)
	}
	return nil
}
