// Package middleware holds the router-level HTTP middleware.
package middleware

import (
	"net/http"

	"github.com/agendalivre/booking-service/internal/api/handlers"
)

// ManagerIDHeader carries the authenticated manager's id on protected
// routes. It is issued by the login endpoint.
const ManagerIDHeader = "X-Manager-ID"

// Auth rejects requests without a manager id header. Identity is
// established by the login flow; this only gates the manager surface.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(ManagerIDHeader) == "" {
			handlers.RespondUnauthorized(w, "missing "+ManagerIDHeader+" header")
			return
		}
		next.ServeHTTP(w, r)
	})
}
