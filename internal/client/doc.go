// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the conformance run application.
//
// It wires the ActiveSync client, the capture storage, the capture service
// and the smoke runner into a single process lifecycle, and prints the run
// report when the scenarios are done.
package client
