package jwt

import (
	"context"
	"errors"

	"github.com/InfElineas/Control-de-Asistencia/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
)

// ErrNoClaims is returned when the context carries no verified token.
var ErrNoClaims = errors.New("no token claims in context")

// Claims is the decoded identity of the authenticated caller.
type Claims struct {
	UserID       string
	Email        string
	DepartmentID *string
	Role         user.Role
}

// ClaimsFromContext extracts the verified access-token claims placed on the
// request context by the jwtauth verifier.
func ClaimsFromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, ErrNoClaims
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return Claims{}, ErrNoClaims
	}

	roleStr, _ := claims["role"].(string)
	role, ok := user.ParseRole(roleStr)
	if !ok {
		return Claims{}, ErrNoClaims
	}

	c := Claims{
		UserID: userID,
		Role:   role,
	}
	if email, ok := claims["email"].(string); ok {
		c.Email = email
	}
	if deptID, ok := claims["department_id"].(string); ok && deptID != "" {
		c.DepartmentID = &deptID
	}

	return c, nil
}
