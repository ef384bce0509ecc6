// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" v1.2.0 ", "2026-05-01", "abc123\n")

	assert.Equal(t, "v1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-05-01", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "v1.2.0 (abc123)", info.String())
}

func TestAppBuildInfo_StringMissingParts(t *testing.T) {
	assert.Equal(t, "N/A (N/A)", NewAppBuildInfo("", "", "").String())
	assert.Equal(t, "v1 (N/A)", NewAppBuildInfo("v1", "", "  ").String())
}
