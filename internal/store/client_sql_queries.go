// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-stock-keeper/models"
)

const (
	sessionTable       = "session"
	sessionCookieTable = "session_cookies"

	// the session table holds at most this one row
	sessionRowID = 1
)

// sqlite takes "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildReplaceSessionQuery(session models.LocalSession) (string, []any, error) {
	return sqlite.
		Replace(sessionTable).
		Columns("id", "access_token", "username", "email", "avatar", "updated_at").
		Values(sessionRowID, session.AccessToken, session.Username, session.Email, session.Avatar, session.UpdatedAt).
		ToSql()
}

func buildSelectSessionQuery() (string, []any, error) {
	return sqlite.
		Select("access_token", "username", "email", "avatar", "updated_at").
		From(sessionTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func buildDeleteSessionQuery() (string, []any, error) {
	return sqlite.Delete(sessionTable).ToSql()
}

// buildInsertCookiesQuery inserts all cookies with one statement. Callers
// skip it for an empty slice, squirrel refuses an INSERT without values.
func buildInsertCookiesQuery(cookies []models.SessionCookie) (string, []any, error) {
	insert := sqlite.Insert(sessionCookieTable).Columns("name", "value")
	for _, c := range cookies {
		insert = insert.Values(c.Name, c.Value)
	}
	return insert.ToSql()
}

func buildSelectCookiesQuery() (string, []any, error) {
	return sqlite.
		Select("name", "value").
		From(sessionCookieTable).
		OrderBy("name").
		ToSql()
}

func buildDeleteCookiesQuery() (string, []any, error) {
	return sqlite.Delete(sessionCookieTable).ToSql()
}
