package client

import (
	"errors"

	"github.com/MKhiriev/go-stock-keeper/internal/service"
)

var (
	ErrUsage          = errors.New("invalid usage")
	ErrUnknownCommand = errors.New("unknown command")
	ErrInvalidItem    = errors.New("item must be SKU=QUANTITY")
)

// Exit codes of the binary.
const (
	ExitOK            = 0
	ExitFailure       = 1
	ExitLoginRequired = 2
	ExitUsage         = 64
)

// ExitCode maps the error returned by Run to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, service.ErrLoginRequired):
		return ExitLoginRequired
	case errors.Is(err, ErrUsage), errors.Is(err, ErrUnknownCommand), errors.Is(err, ErrInvalidItem):
		return ExitUsage
	}
	return ExitFailure
}
