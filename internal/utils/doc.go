// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP handlers and the
// adapters: JSON response writing, the resty client wrapper and trace id
// generation.
package utils
