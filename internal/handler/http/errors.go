// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-eas-suite/internal/app"
)

var (
	// ErrNoReplyScripted is returned in the body of a 501 when a command has
	// nothing queued.
	ErrNoReplyScripted = errors.New(app.MsgNoReplyScripted)

	// ErrUnauthorized is returned when the credentials do not match.
	ErrUnauthorized = errors.New("invalid credentials")
)
