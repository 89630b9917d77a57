package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"flock/internal/authz"
	"flock/pkg/utils"
)

const actingUserKey = "acting_user"

// JWTAuthMiddleware validates the bearer token and stores the resolved
// ActingUser on the request. Absence of a valid session stops here; no
// downstream code ever sees an anonymous actor.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token subject")
			c.Abort()
			return
		}
		role, ok := authz.ParseRole(claims.Role)
		if !ok {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid token role")
			c.Abort()
			return
		}

		actor := authz.ActingUser{ID: userID, Role: role}
		if claims.CampID != "" {
			if campID, err := uuid.Parse(claims.CampID); err == nil {
				actor.CampID = &campID
			}
		}

		c.Set(actingUserKey, actor)
		c.Next()
	}
}

// ActingUserFrom pulls the authenticated actor set by JWTAuthMiddleware.
func ActingUserFrom(c *gin.Context) (authz.ActingUser, bool) {
	v, ok := c.Get(actingUserKey)
	if !ok {
		return authz.ActingUser{}, false
	}
	actor, ok := v.(authz.ActingUser)
	return actor, ok
}

// RequireRole gates a route group to a single staff role.
func RequireRole(required authz.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActingUserFrom(c)
		if !ok || actor.Role != required {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}
		c.Next()
	}
}
