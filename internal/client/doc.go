// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the stock-keeper command line application.
//
// One run of the binary executes one command. The persisted session is
// restored first, protected commands are guarded by a token check and run
// with the background session keeper, and the possibly refreshed session is
// saved back before the process exits.
package client
