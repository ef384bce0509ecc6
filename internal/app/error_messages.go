// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the message strings the loopback ActiveSync server
// writes into error response bodies and logs.
//
// The stub answers protocol mistakes of the client under test with plain
// text bodies. Keeping the wording in one place lets tests and log queries
// match on it.
package app

const (
	// MsgInvalidQuery is returned when neither the plain nor the compact
	// query string form can be parsed.
	MsgInvalidQuery = "invalid activesync query"

	// MsgInvalidBody is returned when a WBXML request body does not decode.
	MsgInvalidBody = "invalid request body"

	// MsgNoReplyScripted is returned when the script holds no reply for the
	// command.
	MsgNoReplyScripted = "no reply scripted for command"

	// MsgMissingEmailAddress is returned when an autodiscover request has
	// no EMailAddress.
	MsgMissingEmailAddress = "missing EMailAddress"

	// MsgInternalServerError is returned when a scripted reply cannot be
	// encoded.
	MsgInternalServerError = "internal server error"
)
