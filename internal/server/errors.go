// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrServerExited is returned by Run when the server exits without
	// being asked to.
	ErrServerExited = errors.New("appium server exited unexpectedly")
)
