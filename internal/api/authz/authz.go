package authz

import (
	"context"
	"errors"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// RoleUser is the role given to self-registered accounts.
const RoleUser = "user"

// AuthUser is the principal attached to an authenticated request.
type AuthUser struct {
	ID   int64
	Role string
}

type userContextKey struct{}

func ContextWithUser(ctx context.Context, user *AuthUser) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext retrieves the AuthUser stored in ctx.
// It returns nil if ctx is nil, if no user is stored, or if the stored value has a different type.
func UserFromContext(ctx context.Context) *AuthUser {
	if ctx == nil {
		return nil
	}

	user, ok := ctx.Value(userContextKey{}).(*AuthUser)
	if !ok {
		return nil
	}

	return user
}

// RequireUser returns ErrUnauthenticated unless ctx carries a principal.
func RequireUser(ctx context.Context) (*AuthUser, error) {
	user := UserFromContext(ctx)
	if user == nil {
		return nil, ErrUnauthenticated
	}
	return user, nil
}
