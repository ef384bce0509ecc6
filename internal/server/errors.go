// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoHandler = errors.New("stub server: no handler to serve")

	// ErrBind is returned when the listen address cannot be bound.
	ErrBind = errors.New("stub server: cannot bind listen address")
)
