package api

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

type keyType string

const userIDKey keyType = "userID"

// ctxWithUserID adds the authenticated actor's id to the context
func ctxWithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// ctxGetUserID retrieves the authenticated actor's id from the context.
// It is only present on requests that passed the auth middleware.
func ctxGetUserID(ctx context.Context) (uuid.UUID, error) {
	value := ctx.Value(userIDKey)
	if value == nil {
		return uuid.Nil, errors.New("no user id in context")
	}
	id, ok := value.(uuid.UUID)
	if !ok {
		return uuid.Nil, errors.New("user id in context has wrong type")
	}
	return id, nil
}
