// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-stock-keeper/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. notFound is the error for a 404 of the resource at hand.
// The original error stays in the chain.
func mapAdapterError(err error, notFound error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrSessionExpired), errors.Is(err, adapter.ErrLoggedOut):
		return fmt.Errorf("%w: %w", ErrLoginRequired, err)

	case errors.Is(err, adapter.ErrForbidden):
		return fmt.Errorf("%w: %w", ErrForbidden, err)

	case errors.Is(err, adapter.ErrNotFound) && notFound != nil:
		return fmt.Errorf("%w: %w", notFound, err)
	}

	return err
}
