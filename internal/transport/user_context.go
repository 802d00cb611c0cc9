package transport

import (
	"errors"
	"net/http"

	"bean-market/internal/domain"
	"bean-market/internal/middleware"
	"bean-market/internal/service"

	"github.com/google/uuid"
)

var errNoAuthenticatedUser = errors.New("no authenticated user in request context")

// actingUser resolves the authenticated user for a request from the
// claims the auth middleware placed in the context.
func actingUser(r *http.Request, userService service.UserService) (*domain.User, error) {
	userIDStr, ok := middleware.GetUserID(r.Context())
	if !ok {
		return nil, errNoAuthenticatedUser
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil, errNoAuthenticatedUser
	}

	return userService.GetUserByID(r.Context(), userID)
}
