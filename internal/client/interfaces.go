// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-stock-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run executes the command named by args[0] and blocks until it is done.
	Run(ctx context.Context, args []string) error
}

// LoginPrompter asks the user for credentials interactively and logs in.
type LoginPrompter interface {
	PromptLogin(ctx context.Context, username string) (models.LocalSession, error)
}
