// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-stock-keeper/internal/utils"
)

// methodNotAllowed answers a known path requested with an unsupported method.
// The body follows the backend's {"detail": ...} convention so the client
// surfaces a readable message instead of chi's plain-text default.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, http.StatusMethodNotAllowed, fmt.Sprintf("Método %q no permitido.", r.Method))
}

// notFound answers unknown paths.
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteDetail(w, http.StatusNotFound, "No encontrado.")
}
