package auth

import (
	"context"
	"errors"
	"fmt"
)

type ctxKey int

const userCtxKey ctxKey = iota + 1

var ErrNoUser = errors.New("no user ID in context")

// ContextWithUser returns a new context containing the authenticated player's ID.
//
//nolint:ireturn // returning context.Context is intentional: it's the standard context type
func ContextWithUser(baseCtx context.Context, userID string) context.Context {
	return context.WithValue(baseCtx, userCtxKey, userID)
}

// UserFromContext extracts the player ID stored by RequireToken.
func UserFromContext(ctx context.Context) (string, error) {
	val := ctx.Value(userCtxKey)
	if val == nil {
		return "", ErrNoUser
	}

	userID, ok := val.(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("%w: got %T", ErrNoUser, val)
	}

	return userID, nil
}
