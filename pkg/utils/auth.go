package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/oasis/internal/authz"
	"github.com/linskybing/oasis/internal/domain/user"
	"github.com/linskybing/oasis/pkg/types"
)

const ClaimsKey = "claims"

var ErrNoClaims = errors.New("user claims not found in context")

func claimsFrom(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get(ClaimsKey)
	if !exists {
		return nil, ErrNoClaims
	}
	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}
	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := claimsFrom(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

var GetUserNameFromContext = func(c *gin.Context) (string, error) {
	claims, err := claimsFrom(c)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

// IdentityFromContext returns the caller established by the JWT middleware,
// or nil for anonymous requests.
var IdentityFromContext = func(c *gin.Context) *authz.Identity {
	claims, err := claimsFrom(c)
	if err != nil {
		return nil
	}
	return &authz.Identity{
		UserID:      claims.UserID,
		Username:    claims.Username,
		Role:        user.Role(claims.Role),
		IsSuperuser: claims.IsSuperuser,
	}
}
