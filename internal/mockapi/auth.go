package mockapi

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
	"github.com/MKhiriev/go-stock-keeper/models"
)

func (b *memoryBackend) Login(ctx context.Context, credentials models.Credentials) (models.LoginResponse, string, error) {
	b.mu.RLock()
	acc, ok := b.accounts[strings.TrimSpace(credentials.Username)]
	b.mu.RUnlock()
	if !ok {
		return models.LoginResponse{}, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(credentials.Password)); err != nil {
		return models.LoginResponse{}, "", ErrInvalidCredentials
	}

	access, err := b.issueAccess(acc.user.ID)
	if err != nil {
		return models.LoginResponse{}, "", err
	}

	refreshID := b.openRefresh(acc.user.ID)
	b.logger.Debug().Str("username", acc.user.Username).Msg("user logged in")

	return models.LoginResponse{
		Access:   access,
		Username: acc.user.Username,
		Email:    acc.user.Email,
		Avatar:   acc.avatar,
	}, refreshID, nil
}

func (b *memoryBackend) Refresh(ctx context.Context, refreshID string) (models.RefreshResponse, string, error) {
	b.mu.Lock()
	current, ok := b.refresh[refreshID]
	if ok {
		delete(b.refresh, refreshID)
	}
	b.mu.Unlock()

	if !ok || !b.now().Before(current.expires) {
		return models.RefreshResponse{}, "", ErrInvalidRefresh
	}

	access, err := b.issueAccess(current.userID)
	if err != nil {
		return models.RefreshResponse{}, "", err
	}

	return models.RefreshResponse{Access: access}, b.openRefresh(current.userID), nil
}

func (b *memoryBackend) Logout(ctx context.Context, refreshID string) {
	b.mu.Lock()
	delete(b.refresh, refreshID)
	b.mu.Unlock()
}

func (b *memoryBackend) Authenticate(ctx context.Context, accessToken string) (int64, error) {
	token, err := utils.ValidateAndParseJWTToken(accessToken, b.auth.TokenSignKey, b.auth.TokenIssuer)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if _, ok := b.userByID(token.UserID); !ok {
		return 0, ErrInvalidToken
	}

	return token.UserID, nil
}

func (b *memoryBackend) issueAccess(userID int64) (string, error) {
	token, err := utils.GenerateJWTToken(b.auth.TokenIssuer, userID, b.auth.TokenDuration, b.auth.TokenSignKey)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}
	return token.SignedString, nil
}

func (b *memoryBackend) openRefresh(userID int64) string {
	id := b.ids.Generate()

	b.mu.Lock()
	b.refresh[id] = refreshSession{userID: userID, expires: b.now().Add(b.auth.RefreshDuration)}
	b.mu.Unlock()

	return id
}

// userByID looks the account up by id. Callers hold mu.
func (b *memoryBackend) userByID(id int64) (models.User, bool) {
	for _, acc := range b.accounts {
		if acc.user.ID == id {
			return acc.user, true
		}
	}
	return models.User{}, false
}

func (b *memoryBackend) Users(ctx context.Context) []models.User {
	b.mu.RLock()
	defer b.mu.RUnlock()

	users := make([]models.User, 0, len(b.accounts))
	for _, acc := range b.accounts {
		users = append(users, acc.user)
	}
	slices.SortFunc(users, func(a, b models.User) int { return cmp.Compare(a.ID, b.ID) })
	return users
}
