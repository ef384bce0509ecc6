// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"

	"github.com/MKhiriev/go-eas-suite/internal/store"
)

// unreachableHints are driver messages that mean the database could not be
// reached or opened at all.
var unreachableHints = []string{
	"connection refused",
	"no such host",
	"network is unreachable",
	"unable to open database file",
}

// humanizeStoreError turns a capture store error into a one-line status for
// the browser footer.
func humanizeStoreError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || errors.As(err, &netErr) {
		return "capture database is unreachable"
	}
	if errors.Is(err, store.ErrScanningRows) {
		return "capture rows are unreadable: " + err.Error()
	}

	s := strings.ToLower(err.Error())
	for _, hint := range unreachableHints {
		if strings.Contains(s, hint) {
			return "capture database is unreachable"
		}
	}

	return err.Error()
}
