// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter builds the backend adapter descriptors handed to the API
// server (AWS credentials, cache, file storage, push, email, OAuth) and the
// client used to invoke cloud functions over the REST API.
//
// [Configure] derives every descriptor from the resolved configuration.
// Descriptors are plain values; connecting to the backing services is left
// to the API server that consumes them.
//
// The cloud function runner ([CloudFunctionRunner]) calls
// POST {serverURL}/functions/{name} with the application id and master key
// headers. Failures reported by the server are returned as [*CloudError] so
// callers can relay the original error body.
package adapter
