// Package metrics has the prometheus metrics of the ActiveSync client and the
// requirement capture sink.
package metrics

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MKhiriev/go-eas-suite/internal/logger"
)

var (
	metricCommand = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eassuite_command_duration_seconds",
			Help:    "ActiveSync HTTP exchanges with the system under test.",
			Buckets: []float64{0.01, 0.05, 0.100, 0.5, 1, 5, 10, 20, 30},
		},
		[]string{
			"command",
			"method",
			"code",
			"result",
		},
	)

	metricCapture = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eassuite_requirement_captures_total",
			Help: "Requirement captures recorded, by protocol and verdict.",
		},
		[]string{
			"protocol",
			"verdict",
		},
	)
)

// Result classifies the outcome of an HTTP exchange.
func Result(statusCode int, err error) string {
	switch {
	case err == nil:
		switch statusCode / 100 {
		case 2:
			return "ok"
		case 4:
			return "usererror"
		case 5:
			return "servererror"
		default:
			return "other"
		}
	case errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "error"
	}
}

// CommandObserve tracks the result of one ActiveSync exchange in a metric,
// and logs it at debug level.
func CommandObserve(ctx context.Context, command, method string, statusCode int, err error, start time.Time) {
	result := Result(statusCode, err)
	elapsed := time.Since(start)
	metricCommand.WithLabelValues(command, method, strconv.Itoa(statusCode), result).Observe(elapsed.Seconds())

	logger.FromContext(ctx).Debug().
		Err(err).
		Str("command", command).
		Str("method", method).
		Int("code", statusCode).
		Str("result", result).
		Dur("duration", elapsed).
		Msg("activesync exchange")
}

// CaptureObserve counts one requirement capture.
func CaptureObserve(protocol, verdict string) {
	metricCapture.WithLabelValues(protocol, verdict).Inc()
}
