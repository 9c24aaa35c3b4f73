package service

import "errors"

var (
	ErrEmptyCredentials = errors.New("username and password are required")
	ErrWrongCredentials = errors.New("wrong username or password")

	ErrNoLocalSession = errors.New("no saved session, please log in")
	ErrLoginRequired  = errors.New("session expired, please log in again")
	ErrForbidden      = errors.New("not allowed for this user")
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrMovementNotFound  = errors.New("movement not found")
	ErrVariableNotFound  = errors.New("system variable not found")
	ErrClientNotFound    = errors.New("client not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrEquipmentNotFound = errors.New("equipment not found")

	ErrEmptyName = errors.New("name is required")

	ErrNoProductForCode = errors.New("no product found with this code")
	ErrEmptySKU         = errors.New("empty product code")
	ErrInvalidQuantity  = errors.New("quantity must be positive")
	ErrNoItems          = errors.New("movement has no items")
)
