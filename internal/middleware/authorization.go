package middleware

import (
	"net/http"

	"bean-market/internal/domain"

	"go.uber.org/zap"
)

// RequireBuyer middleware ensures the user has the buyer role. Cart
// and checkout routes sit behind it; the services re-check the role
// themselves rather than trusting the transport layer.
func RequireBuyer(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole([]string{domain.RoleBuyer}, logger)
}

// RequireSeller middleware ensures the user has the seller role
func RequireSeller(logger *zap.Logger) func(http.Handler) http.Handler {
	return RequireRole([]string{domain.RoleSeller}, logger)
}

// RequireRole middleware ensures the user has one of the specified roles
func RequireRole(allowedRoles []string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := GetUserRole(r.Context())
			if !ok {
				logger.Warn("Role not found in context")
				respondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			// Check if user's role is in allowed roles
			allowed := false
			for _, allowedRole := range allowedRoles {
				if role == allowedRole {
					allowed = true
					break
				}
			}

			if !allowed {
				logger.Warn("User role not authorized",
					zap.String("role", role),
					zap.Strings("allowed_roles", allowedRoles),
				)
				respondWithError(w, http.StatusForbidden, "insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
