// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// ErrInvalidWebhookBody is returned when an incoming webhook body cannot be
// decoded.
var ErrInvalidWebhookBody = errors.New("invalid webhook body")

// Error codes reported in webhook error bodies when the failure happened
// before the cloud function ran.
const (
	codeInvalidJSON    = 107
	codeInternalServer = 1
)
