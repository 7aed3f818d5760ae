// Package auth implements the stateless credential core: bcrypt password
// hashing, signed access/refresh tokens, and the authenticated principal
// carried through a request.
package auth

import (
	"github.com/gin-gonic/gin"

	"spendtrack/internal/models"
)

const principalKey = "principal"

// Principal identifies an authenticated user for the duration of one
// request. It is passed explicitly; no state is shared across requests.
type Principal struct {
	UserID uint
	Email  string
	Roles  models.RoleList
}

// PrincipalFromUser builds a principal from a stored user record.
func PrincipalFromUser(user *models.User) *Principal {
	return &Principal{
		UserID: user.ID,
		Email:  user.Email,
		Roles:  user.Roles,
	}
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role models.Role) bool {
	return p.Roles.Has(role)
}

// SetPrincipal attaches the principal to the Gin context for the current request.
func SetPrincipal(c *gin.Context, p *Principal) {
	c.Set(principalKey, p)
}

// ClearPrincipal removes the principal from the Gin context.
func ClearPrincipal(c *gin.Context) {
	c.Set(principalKey, (*Principal)(nil))
}

// GetPrincipal returns the principal attached to the Gin context, or false
// if the request is unauthenticated.
func GetPrincipal(c *gin.Context) (*Principal, bool) {
	v, exists := c.Get(principalKey)
	if !exists {
		return nil, false
	}
	p, ok := v.(*Principal)
	if !ok || p == nil {
		return nil, false
	}
	return p, true
}
