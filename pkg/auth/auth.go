package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v4"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleAdmin = "admin"
	RoleUser  = "user"
)

// JWTKey signs and verifies access tokens. Overridable via JWT_KEY env.
var JWTKey = []byte("campus-library-secret")

type Claims struct {
	Profile struct {
		Account string `json:"account"`
		Name    string `json:"name"`
		Role    string `json:"role"`
	} `json:"profile"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	accountKey ctxKey = iota + 1
	roleKey
)

func SetAuthContext(ctx context.Context, account, role string) context.Context {
	ctx = context.WithValue(ctx, accountKey, account)
	return context.WithValue(ctx, roleKey, role)
}

func Account(ctx context.Context) string {
	account, _ := ctx.Value(accountKey).(string)
	return account
}

func Role(ctx context.Context) string {
	role, _ := ctx.Value(roleKey).(string)
	return role
}

func IsAdmin(ctx context.Context) bool {
	return Role(ctx) == RoleAdmin
}
