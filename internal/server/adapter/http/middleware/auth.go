package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/masrafi-000/mytaskmanager/internal/server/core/domain"
	"github.com/masrafi-000/mytaskmanager/internal/server/core/ports"
	"github.com/masrafi-000/mytaskmanager/pkg/apierrors"
)

const userKey = "user"

// AuthMiddleware resolves the bearer token and stores the authenticated
// user on the context; requests without a valid token are rejected.
func AuthMiddleware(auth ports.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if header == "" || token == header {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		user, err := auth.UserFromToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgUnauthorized, lang),
			)
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

func GetUser(c *gin.Context) domain.User {
	if value, exists := c.Get(userKey); exists {
		if user, ok := value.(domain.User); ok {
			return user
		}
	}
	return domain.User{}
}
