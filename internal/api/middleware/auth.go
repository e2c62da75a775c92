package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/issuehub/issuehub/internal/api/response"
	"github.com/issuehub/issuehub/internal/domain/user"
	"github.com/issuehub/issuehub/internal/repository"
	"github.com/issuehub/issuehub/pkg/types"
)

const currentUserKey = "currentUser"

type Auth struct {
	repos *repository.Repos
}

func NewAuth(repos *repository.Repos) *Auth {
	return &Auth{repos: repos}
}

// ResolveUser turns the verified token subject into a user row and
// stores it in the context. A subject with no matching user is treated
// the same as a bad token.
func (a *Auth) ResolveUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := c.MustGet("claims").(*types.Claims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token claims"})
			return
		}

		u, err := a.repos.User.GetUserByEmail(claims.Email())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Could not validate credentials"})
			return
		}

		c.Set(currentUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the authenticated user stored by ResolveUser.
func CurrentUser(c *gin.Context) user.User {
	return c.MustGet(currentUserKey).(user.User)
}
