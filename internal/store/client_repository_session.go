package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/logger"
	"github.com/MKhiriev/go-stock-keeper/models"
)

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localSessionRepository) SaveSession(ctx context.Context, session models.LocalSession) error {
	log := logger.FromContext(ctx)

	statements := make([]func() (string, []any, error), 0, 3)
	statements = append(statements,
		func() (string, []any, error) { return buildReplaceSessionQuery(session) },
		buildDeleteCookiesQuery,
	)
	if len(session.Cookies) > 0 {
		statements = append(statements, func() (string, []any, error) { return buildInsertCookiesQuery(session.Cookies) })
	}

	if err := l.inTx(ctx, statements...); err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.SaveSession").
			Str("username", session.Username).
			Msg("failed to save local session")
		return fmt.Errorf("failed to save local session: %w", err)
	}

	return nil
}

func (l *localSessionRepository) LoadSession(ctx context.Context) (models.LocalSession, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectSessionQuery()
	if err != nil {
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.LocalSession
	err = l.DB.QueryRowContext(ctx, query, args...).Scan(
		&session.AccessToken,
		&session.Username,
		&session.Email,
		&session.Avatar,
		&session.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to scan local session row")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	cookies, err := l.loadCookies(ctx)
	if err != nil {
		log.Err(err).
			Str("func", "localSessionRepository.LoadSession").
			Msg("failed to load session cookies")
		return models.LocalSession{}, err
	}
	session.Cookies = cookies

	return session, nil
}

func (l *localSessionRepository) loadCookies(ctx context.Context) ([]models.SessionCookie, error) {
	query, args, err := buildSelectCookiesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var cookies []models.SessionCookie
	for rows.Next() {
		var c models.SessionCookie
		if err = rows.Scan(&c.Name, &c.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		cookies = append(cookies, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return cookies, nil
}

func (l *localSessionRepository) ClearSession(ctx context.Context) error {
	if err := l.inTx(ctx, buildDeleteCookiesQuery, buildDeleteSessionQuery); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localSessionRepository.ClearSession").
			Msg("failed to clear local session")
		return fmt.Errorf("failed to clear local session: %w", err)
	}

	return nil
}

// inTx builds and executes statements in one transaction, in order.
func (l *localSessionRepository) inTx(ctx context.Context, statements ...func() (string, []any, error)) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, build := range statements {
		query, args, err := build()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
