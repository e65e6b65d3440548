// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/court-fund/internal/logger"
	"github.com/MKhiriev/court-fund/internal/utils"
)

// adminAccessDeniedMessage is the message of every 403 written by requireAdmin.
const adminAccessDeniedMessage = "Bạn không có quyền truy cập"

// requireAdmin lets a request through only when the identity stored by the
// auth middleware carries the admin role.
//
// For an admin it calls next and writes nothing itself. Any other caller,
// including one without an identity, receives 403 Forbidden with the body
//
//	{"message":"Bạn không có quyền truy cập"}
//
// and next is not called.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := utils.GetIdentityFromContext(r.Context())
		if !ok || !identity.IsAdmin() {
			logger.FromRequest(r).Warn().
				Bool("has_identity", ok).
				Int64("user_id", identity.UserID).
				Str("role", string(identity.Role)).
				Str("uri", r.RequestURI).
				Msg("admin access denied")
			if h.metrics != nil {
				h.metrics.denied.Inc()
			}

			utils.WriteMessage(w, adminAccessDeniedMessage, http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
