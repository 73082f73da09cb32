// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

var (
	// ErrAlreadyStarted is returned by Start on an instance that was already
	// started.
	ErrAlreadyStarted = errors.New("this instance has already been configured")

	// ErrBuildingAPI is returned when the API factory fails.
	ErrBuildingAPI = errors.New("error building api server")

	// ErrBuildingDashboard is returned when the dashboard factory fails.
	ErrBuildingDashboard = errors.New("error building dashboard")
)
