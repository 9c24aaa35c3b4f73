// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request has no "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("Authentication credentials were not provided.")

	// ErrNoRefreshCookie is returned by the refresh handler when the refresh
	// cookie is missing.
	ErrNoRefreshCookie = errors.New("No valid refresh token found.")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("JSON parse error")

	// ErrInvalidID is returned when the {id} path segment is not a number.
	ErrInvalidID = errors.New("invalid id")
)
