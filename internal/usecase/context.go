package usecase

import (
	"context"

	"clinicdesk/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFrom extracts the acting staff user from the request context, nil
// when the call is unauthenticated (tests, internal tooling).
func actorFrom(ctx context.Context) *uuid.UUID {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil
	}
	return &userID
}

func actorIDFrom(ctx context.Context) (uuid.UUID, bool) {
	return middleware.GetUserIDFromContext(ctx)
}
