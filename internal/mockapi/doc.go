// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mockapi is an in-memory rendition of the inventory backend used
// for local development and end-to-end tests of the client.
//
// It keeps demo users with bcrypt-hashed passwords, issues HS256 access
// tokens and rotating opaque refresh tokens, and serves seeded catalogs,
// products, clients and stock movements. The HTTP surface lives in
// internal/handler/http.
package mockapi
