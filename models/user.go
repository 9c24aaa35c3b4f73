// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Credentials is the body of the login request.
type Credentials struct {
	// Username is the account name (4..32 characters on the backend).
	Username string `json:"username"`

	// Password is sent as-is over TLS; it is never persisted by the client.
	Password string `json:"password"`
}

// LoginResponse is returned by the login endpoint. Besides the access token
// it carries the profile fields the client keeps next to the session.
type LoginResponse struct {
	Access   string `json:"access"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
}

// RefreshResponse is returned by the token refresh endpoint. The refresh
// proof itself travels as a cookie, so only the new access token is here.
type RefreshResponse struct {
	Access string `json:"access"`
}

// UserRole is the role stored in the user profile.
type UserRole string

const (
	RoleAdmin    UserRole = "admin"
	RoleOperator UserRole = "operativo"
	RoleReadOnly UserRole = "consulta"
)

// UserProfile holds role and contact data attached to a backend user.
type UserProfile struct {
	ID       int64    `json:"id"`
	Role     UserRole `json:"rol"`
	Phone    *string  `json:"telefono"`
	Avatar   *string  `json:"avatar"`
	Branches []int64  `json:"sucursales"`
}

// User is a backend account as embedded in movements and user catalogs.
type User struct {
	ID       int64        `json:"id"`
	Username string       `json:"username"`
	Email    string       `json:"email"`
	Profile  *UserProfile `json:"profile"`
}

// SessionCookie is a persisted cookie of the backend session (the refresh
// proof). Only name and value survive, the jar re-scopes them to the API host.
type SessionCookie struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// LocalSession is the session snapshot kept in the local store between runs
// of the client.
type LocalSession struct {
	AccessToken string
	Username    string
	Email       string
	Avatar      string
	Cookies     []SessionCookie
	UpdatedAt   time.Time
}
