// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's access token and coordinates token
// refresh between concurrent requests.
//
// A [Manager] is the single owner of the token. It tracks the session state
// (Anonymous, Authenticated, Refreshing) and admits callers that observed an
// authentication failure through [Manager.BeginRefresh]:
//
//   - the first caller becomes the refresh leader and receives a [Ticket];
//   - callers arriving while a refresh is in flight are queued and resumed in
//     FIFO order once the leader reports the outcome;
//   - callers whose failed request carried an older token than the one now
//     held are told to resend with the current token.
//
// The leader reports the outcome with [Ticket.Complete] or [Ticket.Fail].
// Login and logout supersede a refresh that is still in flight.
package session
