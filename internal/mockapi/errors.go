package mockapi

import "errors"

var (
	ErrInvalidCredentials = errors.New("No active account found with the given credentials")
	ErrInvalidToken       = errors.New("Given token not valid for any token type")
	ErrInvalidRefresh     = errors.New("Token is invalid or expired")

	ErrNotFound          = errors.New("No encontrado.")
	ErrInvalidData       = errors.New("invalid data")
	ErrInsufficientStock = errors.New("insufficient stock")
)
