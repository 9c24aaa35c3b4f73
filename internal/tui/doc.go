// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui holds the interactive terminal pieces of the client: the
// login prompt (Bubble Tea) and the lipgloss styles and clipboard helper
// used by the command output.
package tui
