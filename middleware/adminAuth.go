package middleware

import (
	"net/http"

	userRepo "staffstream/database/repository/user"
	"staffstream/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// HRAuthMiddleware allows only users flagged as HR admins. It must run
// after JWTAuthMiddleware.
func HRAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := c.Get("userID")
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "No token, authorization denied"})
			return
		}

		usr, err := users.GetByIDWithProjection(userID.(string), bson.M{"id": 1, "isAdmin": 1})
		if err != nil || usr == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, utils.ErrorResponse{Message: "Token is not valid"})
			return
		}
		if !usr.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, utils.ErrorResponse{Message: "Access denied. Admin only."})
			return
		}

		c.Set("isAdmin", true)
		c.Next()
	}
}
